package model

import "testing"

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name    string
		caps    AccountCapabilities
		current AccountStatus
		want    AccountStatus
	}{
		{
			"charges and payouts enabled",
			AccountCapabilities{ChargesEnabled: true, PayoutsEnabled: true},
			AccountStatusOnboarding,
			AccountStatusComplete,
		},
		{
			"complete overrides details flag",
			AccountCapabilities{ChargesEnabled: true, PayoutsEnabled: true, DetailsSubmitted: true},
			AccountStatusPending,
			AccountStatusComplete,
		},
		{
			"details submitted only",
			AccountCapabilities{DetailsSubmitted: true},
			AccountStatusOnboarding,
			AccountStatusRestricted,
		},
		{
			"charges without payouts keeps current",
			AccountCapabilities{ChargesEnabled: true},
			AccountStatusOnboarding,
			AccountStatusOnboarding,
		},
		{
			"nothing reported keeps current",
			AccountCapabilities{},
			AccountStatusPending,
			AccountStatusPending,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveStatus(&tc.caps, tc.current); got != tc.want {
				t.Fatalf("unexpected status: got %s, want %s", got, tc.want)
			}
		})
	}
}
