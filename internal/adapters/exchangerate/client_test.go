package exchangerate_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackmint/transaction_tracker/internal/adapters/exchangerate"
	"github.com/trackmint/transaction_tracker/internal/apperrors"
)

const testAPIKey = "test-api-key"

func newTestClient(t *testing.T, handler http.HandlerFunc) *exchangerate.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return exchangerate.NewClient(server.URL, testAPIKey, 2*time.Second)
}

func TestConvert_Success(t *testing.T) {
	var requestedPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		fmt.Fprint(w, `{"result":"success","conversion_result":85.0}`)
	})

	// 100.00 USD in scale units.
	units, err := client.Convert(context.Background(), 1_000_000, "USD", "EUR")

	require.NoError(t, err)
	assert.Equal(t, int64(850_000), units)
	// The amount travels as a plain decimal in major units.
	assert.Equal(t, "/"+testAPIKey+"/pair/USD/EUR/100", requestedPath)
}

func TestConvert_FractionalAmountInURL(t *testing.T) {
	var requestedPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		fmt.Fprint(w, `{"result":"success","conversion_result":9.34}`)
	})

	// 10.99 USD in scale units.
	_, err := client.Convert(context.Background(), 109_900, "USD", "EUR")

	require.NoError(t, err)
	assert.Equal(t, "/"+testAPIKey+"/pair/USD/EUR/10.99", requestedPath)
}

func TestConvert_TruncatesTowardZero(t *testing.T) {
	// The provider can return more precision than a scale unit holds;
	// the excess is dropped, never rounded up.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":"success","conversion_result":85.00009}`)
	})

	units, err := client.Convert(context.Background(), 1_000_000, "USD", "EUR")

	require.NoError(t, err)
	assert.Equal(t, int64(850_000), units)
}

func TestConvert_ResultBeyondInt64Range(t *testing.T) {
	// A provider result that overflows int64 once scaled must be
	// rejected, not stored wrapped.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":"success","conversion_result":10000000000000000000}`)
	})

	_, err := client.Convert(context.Background(), 1_000_000, "USD", "EUR")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConversionUnavailable))
	var convErr *apperrors.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "currency conversion result out of range", convErr.Detail)
}

func TestConvert_TranslatesKnownAPIErrors(t *testing.T) {
	testCases := []struct {
		errorType string
		expected  string
	}{
		{errorType: "unsupported-code", expected: "Currency code not supported"},
		{errorType: "malformed-request", expected: "Invalid currency conversion request"},
		{errorType: "invalid-key", expected: "Invalid API key"},
		{errorType: "inactive-account", expected: "Currency API account is inactive"},
		{errorType: "quota-reached", expected: "Currency API quota exceeded"},
	}

	for _, tc := range testCases {
		t.Run(tc.errorType, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `{"result":"error","error-type":%q}`, tc.errorType)
			})

			_, err := client.Convert(context.Background(), 1_000_000, "USD", "EUR")

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrConversionUnavailable))
			var convErr *apperrors.ConversionError
			require.True(t, errors.As(err, &convErr))
			assert.Equal(t, tc.expected, convErr.Detail)
		})
	}
}

func TestConvert_UnknownAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":"error","error-type":"foo-bar"}`)
	})

	_, err := client.Convert(context.Background(), 1_000_000, "USD", "EUR")

	require.Error(t, err)
	var convErr *apperrors.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "Currency API error: foo-bar", convErr.Detail)
}

func TestConvert_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Convert(context.Background(), 1_000_000, "USD", "EUR")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConversionUnavailable))
	var convErr *apperrors.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "currency API returned error: 500", convErr.Detail)
}

func TestConvert_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json at all`)
	})

	_, err := client.Convert(context.Background(), 1_000_000, "USD", "EUR")

	require.Error(t, err)
	var convErr *apperrors.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Contains(t, convErr.Detail, "failed to parse currency API response")
}

func TestConvert_MissingConversionResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":"success"}`)
	})

	_, err := client.Convert(context.Background(), 1_000_000, "USD", "EUR")

	require.Error(t, err)
	var convErr *apperrors.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "invalid response from currency API", convErr.Detail)
}

func TestConvert_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, `{"result":"success","conversion_result":85.0}`)
	}))
	t.Cleanup(server.Close)

	client := exchangerate.NewClient(server.URL, testAPIKey, 20*time.Millisecond)
	_, err := client.Convert(context.Background(), 1_000_000, "USD", "EUR")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConversionUnavailable))
	var convErr *apperrors.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "currency conversion request timed out", convErr.Detail)
}

func TestConvert_ConnectionFailure(t *testing.T) {
	// A server that is already shut down refuses the connection.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := exchangerate.NewClient(url, testAPIKey, 2*time.Second)
	_, err := client.Convert(context.Background(), 1_000_000, "USD", "EUR")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConversionUnavailable))
	var convErr *apperrors.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Contains(t, convErr.Detail, "failed to connect to currency API")
}
