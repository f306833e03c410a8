package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sellerdesk/merchanthub/internal/domain/model"
)

// ErrAccountNotFound indicates the payments platform doesn't know the account.
var ErrAccountNotFound = errors.New("account not found")

// TooManyRequestsError represents rate limiting signal from the payments platform.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// APIError carries the error body returned by the payments platform.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payments api: %s (status %d)", e.Message, e.StatusCode)
}

// Client exposes the payments platform operations the application depends on.
type Client interface {
	CreateAccount(ctx context.Context, email string) (string, error)
	UpdateAccount(ctx context.Context, accountID string, params *model.AccountParams) error
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	GetAccount(ctx context.Context, accountID string) (*model.AccountCapabilities, error)
}

// HTTPClient implements Client against the platform's form-encoded HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// accountResponse mirrors the JSON account object returned by the platform.
type accountResponse struct {
	ID               string `json:"id"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
	DetailsSubmitted bool   `json:"details_submitted"`
}

// linkResponse mirrors the hosted onboarding link object.
type linkResponse struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewHTTPClient creates an HTTP payments client with default timeout.
func NewHTTPClient(baseURL, apiKey string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse payments url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("payments url must be absolute")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("payments api key must not be empty")
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateAccount registers a new connected account and returns its identifier.
func (c *HTTPClient) CreateAccount(ctx context.Context, email string) (string, error) {
	form := url.Values{}
	form.Set("type", "custom")
	form.Set("email", email)
	form.Set("capabilities[card_payments][requested]", "true")
	form.Set("capabilities[transfers][requested]", "true")

	var account accountResponse
	if err := c.post(ctx, "/v1/accounts", form, &account); err != nil {
		return "", err
	}
	return account.ID, nil
}

// UpdateAccount pushes profile and verification fields to the connected account.
func (c *HTTPClient) UpdateAccount(ctx context.Context, accountID string, params *model.AccountParams) error {
	form := encodeAccountParams(params)
	return c.post(ctx, path.Join("/v1/accounts", accountID), form, &accountResponse{})
}

// CreateAccountLink requests a hosted onboarding URL for the account.
func (c *HTTPClient) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	form := url.Values{}
	form.Set("account", accountID)
	form.Set("refresh_url", refreshURL)
	form.Set("return_url", returnURL)
	form.Set("type", "account_onboarding")

	var link linkResponse
	if err := c.post(ctx, "/v1/account_links", form, &link); err != nil {
		return "", err
	}
	return link.URL, nil
}

// GetAccount fetches current verification capabilities for the account.
func (c *HTTPClient) GetAccount(ctx context.Context, accountID string) (*model.AccountCapabilities, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/accounts", accountID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	var account accountResponse
	if err := c.do(req, &account); err != nil {
		return nil, err
	}
	return &model.AccountCapabilities{
		AccountID:        account.ID,
		ChargesEnabled:   account.ChargesEnabled,
		PayoutsEnabled:   account.PayoutsEnabled,
		DetailsSubmitted: account.DetailsSubmitted,
	}, nil
}

func (c *HTTPClient) post(ctx context.Context, apiPath string, form url.Values, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, apiPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return json.Unmarshal(body, out)
	case resp.StatusCode == http.StatusNotFound:
		return ErrAccountNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return TooManyRequestsError{RetryAfter: retryAfter}
	default:
		body, _ := io.ReadAll(resp.Body)
		var apiErr errorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error.Message}
		}
		c.logger.Error("payments request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	}
}

// encodeAccountParams flattens the update payload into the platform's
// bracketed form fields. Zero-valued optional sections are omitted.
func encodeAccountParams(params *model.AccountParams) url.Values {
	form := url.Values{}
	form.Set("business_profile[name]", params.BusinessName)

	if params.BusinessType != "" {
		form.Set("business_type", params.BusinessType)
	}
	if p := params.BusinessProfile; p != nil {
		if p.MCC != "" {
			form.Set("business_profile[mcc]", p.MCC)
		}
		if p.URL != "" {
			form.Set("business_profile[url]", p.URL)
		}
	}
	if ind := params.Individual; ind != nil {
		form.Set("individual[first_name]", ind.FirstName)
		form.Set("individual[last_name]", ind.LastName)
		form.Set("individual[email]", ind.Email)
		form.Set("individual[phone]", ind.Phone)
		form.Set("individual[dob][day]", strconv.Itoa(ind.DOB.Day))
		form.Set("individual[dob][month]", strconv.Itoa(ind.DOB.Month))
		form.Set("individual[dob][year]", strconv.Itoa(ind.DOB.Year))
		form.Set("individual[address][line1]", ind.Address.Line1)
		form.Set("individual[address][city]", ind.Address.City)
		form.Set("individual[address][state]", ind.Address.State)
		form.Set("individual[address][postal_code]", ind.Address.PostalCode)
		form.Set("individual[address][country]", ind.Address.Country)
		form.Set("individual[ssn_last_4]", ind.SSNLast4)
	}
	if tos := params.TOSAcceptance; tos != nil {
		form.Set("tos_acceptance[date]", strconv.FormatInt(tos.Date.Unix(), 10))
		form.Set("tos_acceptance[ip]", tos.IP)
	}
	return form
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
