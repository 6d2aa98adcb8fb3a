// Package exchangerate implements the rate converter against the
// Exchange Rate API (exchangerate-api.com) pair-conversion endpoint.
package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trackmint/transaction_tracker/internal/apperrors"
	"github.com/trackmint/transaction_tracker/internal/core/domain"
	portssvc "github.com/trackmint/transaction_tracker/internal/core/ports/services"
)

// DefaultBaseURL is the production endpoint of the Exchange Rate API.
const DefaultBaseURL = "https://v6.exchangerate-api.com/v6"

// DefaultTimeout bounds a conversion request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// apiErrorMessages translates the provider's structured error codes to
// user-facing messages. Codes outside this table fall through to a
// generic "Currency API error: <code>" message.
var apiErrorMessages = map[string]string{
	"unsupported-code":  "Currency code not supported",
	"malformed-request": "Invalid currency conversion request",
	"invalid-key":       "Invalid API key",
	"inactive-account":  "Currency API account is inactive",
	"quota-reached":     "Currency API quota exceeded",
}

// Client calls the external pair-conversion endpoint. One invocation
// makes exactly one HTTP request; there are no retries and no caching.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ portssvc.RateConverter = (*Client)(nil)

// NewClient creates a rate-API client. An empty baseURL selects the
// production endpoint; a non-positive timeout selects the default.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// pairResponse is the wire shape of the pair-conversion endpoint. A
// pointer distinguishes a missing conversion_result from a zero one.
type pairResponse struct {
	Result           string           `json:"result"`
	ErrorType        string           `json:"error-type"`
	ConversionResult *decimal.Decimal `json:"conversion_result"`
}

// Convert converts amountUnits (integer scale units) from one currency
// to another. The amount travels as an exact decimal in major units;
// the provider's decimal result is scaled back and truncated toward
// zero, matching the stored unit representation. Every failure returns
// a *apperrors.ConversionError carrying the internal detail.
func (c *Client) Convert(ctx context.Context, amountUnits int64, fromCurrency, toCurrency string) (int64, error) {
	amount := decimal.New(amountUnits, -domain.UnitExponent)
	url := fmt.Sprintf("%s/%s/pair/%s/%s/%s", c.baseURL, c.apiKey, fromCurrency, toCurrency, amount.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, apperrors.NewConversionError(fmt.Sprintf("failed to build currency API request: %v", err))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return 0, apperrors.NewConversionError("currency conversion request timed out")
		}
		return 0, apperrors.NewConversionError(fmt.Sprintf("failed to connect to currency API: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, apperrors.NewConversionError(fmt.Sprintf("currency API returned error: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, apperrors.NewConversionError(fmt.Sprintf("failed to parse currency API response: %v", err))
	}

	var parsed pairResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, apperrors.NewConversionError(fmt.Sprintf("failed to parse currency API response: %v", err))
	}

	if parsed.Result == "error" {
		return 0, apperrors.NewConversionError(translateAPIError(parsed.ErrorType))
	}

	if parsed.ConversionResult == nil {
		return 0, apperrors.NewConversionError("invalid response from currency API")
	}

	// Truncation toward zero is deliberate; it mirrors the scale-unit
	// conversion applied when amounts enter the system. A result too
	// large for int64 would wrap, so it is rejected instead.
	units := parsed.ConversionResult.Shift(domain.UnitExponent).BigInt()
	if !units.IsInt64() {
		return 0, apperrors.NewConversionError("currency conversion result out of range")
	}
	return units.Int64(), nil
}

func translateAPIError(errorType string) string {
	if errorType == "" {
		errorType = "unknown"
	}
	if msg, ok := apiErrorMessages[errorType]; ok {
		return msg
	}
	return fmt.Sprintf("Currency API error: %s", errorType)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
