package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainErrors "github.com/sellerdesk/merchanthub/internal/domain/errors"
	"github.com/sellerdesk/merchanthub/internal/test"
)

func newAuthUseCaseForTest(demoMode bool) (*AuthUseCase, *test.UserRepositoryStub, *test.AccountRepositoryStub, *test.PaymentsGatewayStub) {
	users := test.NewUserRepositoryStub()
	accounts := test.NewAccountRepositoryStub()
	platform := &test.PaymentsGatewayStub{}
	uc := NewAuthUseCase(users, accounts, platform, test.HasherStub{}, test.StrategyStub{}, demoMode)
	return uc, users, accounts, platform
}

func TestAuthUseCase_RegisterSuccess(t *testing.T) {
	uc, users, accounts, platform := newAuthUseCaseForTest(false)

	usr, token, err := uc.Register(context.Background(), "merchant@example.com", "Abcdefg1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("expected session token")
	}
	if usr.AccountID != "acct_test" {
		t.Fatalf("unexpected account id: %q", usr.AccountID)
	}
	if len(platform.CreateCalls) != 1 || platform.CreateCalls[0] != "merchant@example.com" {
		t.Fatalf("unexpected account provisioning calls: %v", platform.CreateCalls)
	}
	stored, err := users.GetByEmail(context.Background(), "merchant@example.com")
	if err != nil {
		t.Fatalf("get stored user: %v", err)
	}
	if stored.AccountID != "acct_test" {
		t.Fatalf("expected linked account on stored user, got %q", stored.AccountID)
	}
	account, err := accounts.GetByUser(context.Background(), usr.ID)
	if err != nil {
		t.Fatalf("get merchant account: %v", err)
	}
	if account.AccountID != "acct_test" {
		t.Fatalf("unexpected merchant account id: %q", account.AccountID)
	}
}

func TestAuthUseCase_RegisterTrimsEmail(t *testing.T) {
	uc, users, _, _ := newAuthUseCaseForTest(false)

	if _, _, err := uc.Register(context.Background(), "  merchant@example.com  ", "Abcdefg1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := users.GetByEmail(context.Background(), "merchant@example.com"); err != nil {
		t.Fatalf("expected user stored under trimmed email: %v", err)
	}
}

func TestAuthUseCase_RegisterCollectsAllValidationErrors(t *testing.T) {
	uc, _, _, platform := newAuthUseCaseForTest(false)

	_, _, err := uc.Register(context.Background(), "not-an-email", "abc")
	ve, ok := domainErrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	want := []string{
		"email must be a valid email address",
		"password must be at least 8 characters",
		"password must contain at least one digit",
		"password must contain at least one uppercase letter",
	}
	if len(ve.Messages) != len(want) {
		t.Fatalf("unexpected message count: got %v", ve.Messages)
	}
	for i, msg := range want {
		if ve.Messages[i] != msg {
			t.Fatalf("unexpected message at %d: got %q, want %q", i, ve.Messages[i], msg)
		}
	}
	if len(platform.CreateCalls) != 0 {
		t.Fatalf("expected no provisioning on validation failure, got %v", platform.CreateCalls)
	}
}

func TestAuthUseCase_RegisterDuplicate(t *testing.T) {
	uc, _, _, _ := newAuthUseCaseForTest(false)

	if _, _, err := uc.Register(context.Background(), "merchant@example.com", "Abcdefg1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := uc.Register(context.Background(), "merchant@example.com", "Abcdefg1")
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCase_RegisterProvisioningFailure(t *testing.T) {
	uc, _, _, platform := newAuthUseCaseForTest(false)
	platform.CreateAccountFn = func(context.Context, string) (string, error) {
		return "", errors.New("platform unavailable")
	}

	_, _, err := uc.Register(context.Background(), "merchant@example.com", "Abcdefg1")
	if err == nil || !strings.Contains(err.Error(), "provision connected account") {
		t.Fatalf("expected wrapped provisioning error, got %v", err)
	}
}

func TestAuthUseCase_AuthenticateSuccess(t *testing.T) {
	uc, _, _, _ := newAuthUseCaseForTest(false)

	if _, _, err := uc.Register(context.Background(), "merchant@example.com", "Abcdefg1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	usr, token, err := uc.Authenticate(context.Background(), "merchant@example.com", "Abcdefg1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if token == "" {
		t.Fatal("expected session token")
	}
	if usr.Email != "merchant@example.com" {
		t.Fatalf("unexpected email: %q", usr.Email)
	}
}

func TestAuthUseCase_AuthenticateFailures(t *testing.T) {
	uc, _, _, _ := newAuthUseCaseForTest(false)

	if _, _, err := uc.Register(context.Background(), "merchant@example.com", "Abcdefg1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "Abcdefg1"},
		{"empty password", "merchant@example.com", ""},
		{"unknown user", "other@example.com", "Abcdefg1"},
		{"wrong password", "merchant@example.com", "Wrong1234"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := uc.Authenticate(context.Background(), tc.email, tc.password)
			if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthUseCase_ParseTokenEmpty(t *testing.T) {
	uc, _, _, _ := newAuthUseCaseForTest(false)
	if _, err := uc.ParseToken(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestAuthUseCase_DemoEmail(t *testing.T) {
	uc, _, _, _ := newAuthUseCaseForTest(true)
	email, err := uc.DemoEmail()
	if err != nil {
		t.Fatalf("demo email: %v", err)
	}
	if !strings.HasPrefix(email, "demo-") || !strings.HasSuffix(email, "@example.com") {
		t.Fatalf("unexpected demo email format: %q", email)
	}
	other, err := uc.DemoEmail()
	if err != nil {
		t.Fatalf("demo email: %v", err)
	}
	if other == email {
		t.Fatal("expected generated addresses to differ")
	}
}

func TestAuthUseCase_DemoEmailDisabled(t *testing.T) {
	uc, _, _, _ := newAuthUseCaseForTest(false)
	if _, err := uc.DemoEmail(); !errors.Is(err, domainErrors.ErrDemoDisabled) {
		t.Fatalf("expected ErrDemoDisabled, got %v", err)
	}
}
