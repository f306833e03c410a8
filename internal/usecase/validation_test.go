package usecase

import (
	"reflect"
	"strings"
	"testing"

	"github.com/sellerdesk/merchanthub/internal/test"
)

func TestValidateBusinessName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"valid", "Acme Widgets", nil},
		{"empty", "", []string{"business name is required"}},
		{"max length", test.RandomASCIIString(255, 255), nil},
		{"too long", strings.Repeat("a", 256), []string{"business name must be at most 255 characters"}},
		{"multibyte within limit", strings.Repeat("я", 255), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateBusinessName(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unexpected messages: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"valid", "merchant@example.com", nil},
		{"empty", "", []string{"email is required"}},
		{"no at sign", "merchant.example.com", []string{"email must be a valid email address"}},
		{"no domain", "merchant@", []string{"email must be a valid email address"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateEmail(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unexpected messages: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"valid", "Abcdefg1", nil},
		{
			"short without digit and upper",
			"abc",
			[]string{
				"password must be at least 8 characters",
				"password must contain at least one digit",
				"password must contain at least one uppercase letter",
			},
		},
		{"missing digit", "Abcdefgh", []string{"password must contain at least one digit"}},
		{"missing lowercase", "ABCDEFG1", []string{"password must contain at least one lowercase letter"}},
		{"missing uppercase", "abcdefg1", []string{"password must contain at least one uppercase letter"}},
		{
			"empty",
			"",
			[]string{
				"password must be at least 8 characters",
				"password must contain at least one digit",
				"password must contain at least one lowercase letter",
				"password must contain at least one uppercase letter",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidatePassword(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unexpected messages: got %v, want %v", got, tc.want)
			}
		})
	}
}
