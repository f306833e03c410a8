package model

import "time"

// AccountStatus describes where a merchant account is in its onboarding
// lifecycle as tracked locally.
type AccountStatus string

const (
	// AccountStatusPending — account created, no verification data submitted yet.
	AccountStatusPending AccountStatus = "PENDING"
	// AccountStatusOnboarding — business profile update sent, hosted onboarding in progress.
	AccountStatusOnboarding AccountStatus = "ONBOARDING"
	// AccountStatusRestricted — details submitted but charges still disabled.
	AccountStatusRestricted AccountStatus = "RESTRICTED"
	// AccountStatusComplete — charges and payouts enabled.
	AccountStatusComplete AccountStatus = "COMPLETE"
)

// MerchantAccount mirrors the connected account owned by the payments
// platform. Only identity and capability flags are stored locally; the
// platform remains the source of truth.
type MerchantAccount struct {
	AccountID        string
	UserID           int64
	BusinessName     string
	Status           AccountStatus
	ChargesEnabled   bool
	PayoutsEnabled   bool
	DetailsSubmitted bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AccountCapabilities is the verification state reported by the payments
// platform for a connected account.
type AccountCapabilities struct {
	AccountID        string
	ChargesEnabled   bool
	PayoutsEnabled   bool
	DetailsSubmitted bool
}

// DeriveStatus maps platform capability flags to the local lifecycle status.
func DeriveStatus(caps *AccountCapabilities, current AccountStatus) AccountStatus {
	switch {
	case caps.ChargesEnabled && caps.PayoutsEnabled:
		return AccountStatusComplete
	case caps.DetailsSubmitted:
		return AccountStatusRestricted
	default:
		return current
	}
}

// BusinessProfile carries merchant-facing profile fields sent on update.
type BusinessProfile struct {
	Name string
	MCC  string
	URL  string
}

// Person holds the individual KYC fields the platform verifies.
type Person struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	DOB       Date
	Address   Address
	SSNLast4  string
}

// Date is a plain calendar date, used for date-of-birth fields.
type Date struct {
	Day   int
	Month int
	Year  int
}

// Address is a postal address in platform wire field granularity.
type Address struct {
	Line1      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// TOSAcceptance records terms-of-service agreement on behalf of the merchant.
type TOSAcceptance struct {
	Date time.Time
	IP   string
}

// AccountParams is the update payload sent to the payments platform.
// Only non-zero fields are transmitted; BusinessName is always set.
type AccountParams struct {
	BusinessName    string
	BusinessType    string
	BusinessProfile *BusinessProfile
	Individual      *Person
	TOSAcceptance   *TOSAcceptance
}
