package usecase

import (
	"time"

	"github.com/sellerdesk/merchanthub/internal/domain/model"
)

// applyDemoVerification fills the update payload with fixed placeholder
// identity data accepted by the payments platform's test-mode
// verification rules, so demo merchants never see real KYC prompts.
func applyDemoVerification(params *model.AccountParams, email string) {
	params.BusinessType = "individual"
	params.BusinessProfile = &model.BusinessProfile{
		MCC: "5734",
		URL: "https://accessible.stripe.com",
	}
	params.Individual = &model.Person{
		FirstName: "Jenny",
		LastName:  "Rosen",
		Email:     email,
		Phone:     "0000000000",
		DOB:       model.Date{Day: 1, Month: 1, Year: 1901},
		Address: model.Address{
			Line1:      "address_full_match",
			City:       "South San Francisco",
			State:      "CA",
			PostalCode: "94080",
			Country:    "US",
		},
		SSNLast4: "0000",
	}
	params.TOSAcceptance = &model.TOSAcceptance{
		Date: time.Now(),
		IP:   "127.0.0.1",
	}
}
