// Package cucuru talks to the Cucuru collections API that issues and manages CVUs.
package cucuru

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"linkpago/internal/domain/entities"
	"linkpago/internal/usecase/interfaces"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.cucuru.com/app/v1"

	headerAPIKey      = "X-Cucuru-Api-Key"
	headerCollectorID = "X-Cucuru-Collector-Id"

	maxErrorBody = 4 << 10

	mockCVUPrefix = "00000031"
	mockDigits    = "0123456789"
)

// ProviderError is returned for any non-2xx answer from Cucuru.
type ProviderError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("cucuru %s: status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// Client implements IAccountProvider over the Cucuru REST API.
//
// In mock mode no request leaves the process: CreateAccount returns a random 22 digit
// CVU and every other call succeeds.
type Client struct {
	baseURL    string
	httpClient *http.Client
	mock       bool
}

var _ interfaces.IAccountProvider = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration, mock bool) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if mock {
		zap.S().Warnf("[cucuru] mock mode enabled, no provider calls will be made")
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		mock:       mock,
	}
}

type createAccountRequest struct {
	CustomerID string `json:"customer_id"`
	ReadOnly   string `json:"read_only"`
}

type createAccountResponse struct {
	AccountNumber string `json:"account_number"`
}

type aliasRequest struct {
	AccountNumber string `json:"account_number"`
	Alias         string `json:"alias"`
}

type accountPolicyRequest struct {
	AccountNumber string `json:"account_number"`
	CustomerID    string `json:"customer_id"`
	ReadOnly      string `json:"read_only"`
	OnReceived    string `json:"on_received"`
}

type rejectRequest struct {
	CollectionID      string `json:"collection_id"`
	CustomerAccount   string `json:"customer_account"`
	CollectionAccount string `json:"collection_account"`
}

func (c *Client) CreateAccount(ctx context.Context, creds entities.ProviderCredentials, customerID string) (string, error) {
	if c.mock {
		suffix, err := gonanoid.Generate(mockDigits, 14)
		if err != nil {
			return "", err
		}
		cvu := mockCVUPrefix + suffix
		zap.S().Infof("[cucuru][mock] create account customer_id=%s cvu=%s", customerID, cvu)
		return cvu, nil
	}

	var out createAccountResponse
	err := c.do(ctx, "create_account", http.MethodPut, "/collection/accounts/account", creds,
		createAccountRequest{CustomerID: customerID, ReadOnly: "false"}, &out)
	if err != nil {
		return "", err
	}
	if out.AccountNumber == "" {
		return "", errors.New("cucuru create_account: response without account_number")
	}
	return out.AccountNumber, nil
}

func (c *Client) BindAlias(ctx context.Context, creds entities.ProviderCredentials, accountNumber, alias string) error {
	if c.mock {
		return nil
	}
	return c.do(ctx, "bind_alias", http.MethodPost, "/collection/accounts/account/alias", creds,
		aliasRequest{AccountNumber: accountNumber, Alias: alias}, nil)
}

func (c *Client) SetAccountPolicy(ctx context.Context, creds entities.ProviderCredentials, accountNumber, customerID string, policy entities.AccountPolicy) error {
	if c.mock {
		return nil
	}
	return c.do(ctx, "set_account_policy", http.MethodPost, "/collection/accounts/account", creds,
		accountPolicyRequest{
			AccountNumber: accountNumber,
			CustomerID:    customerID,
			ReadOnly:      strconv.FormatBool(policy.ReadOnly),
			OnReceived:    policy.OnReceived,
		}, nil)
}

func (c *Client) RejectCollection(ctx context.Context, creds entities.ProviderCredentials, collectionID, payerAccount, receivingAccount string) error {
	if c.mock {
		return nil
	}
	return c.do(ctx, "reject_collection", http.MethodPost, "/Collection/reject", creds,
		rejectRequest{CollectionID: collectionID, CustomerAccount: payerAccount, CollectionAccount: receivingAccount}, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, creds entities.ProviderCredentials, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cucuru %s: encode request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("cucuru %s: create request: %w", op, err)
	}
	req.Header.Set(headerAPIKey, creds.APIKey)
	req.Header.Set(headerCollectorID, creds.CollectorID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cucuru %s: %w", op, err)
	}
	defer resp.Body.Close()

	zap.S().Debugf("[cucuru] %s %s status=%d took=%s", method, path, resp.StatusCode, time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ProviderError{Operation: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cucuru %s: decode response: %w", op, err)
	}
	return nil
}
