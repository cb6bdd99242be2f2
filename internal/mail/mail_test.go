package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/hd-notes/internal/config"
	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSender_Send_Success(t *testing.T) {
	var got sendRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewHTTPSender(config.Mail{
		APIURL:         srv.URL,
		APIKey:         "test-api-key",
		FromEmail:      "noreply@hdnotes.app",
		FromName:       "HD Notes",
		RequestTimeout: 5 * time.Second,
	}, logger.NewLogger("test"))

	msg := NewOTPMessage("john@example.com", "John", "482913")
	err := sender.Send(context.Background(), msg)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-api-key", gotAuth)
	assert.Equal(t, "noreply@hdnotes.app", got.From.Email)
	require.Len(t, got.To, 1)
	assert.Equal(t, "john@example.com", got.To[0].Email)
	assert.Equal(t, "Your HD Notes verification code", got.Subject)
	assert.Contains(t, got.Text, "482913")
	assert.Contains(t, got.HTML, "482913")
	assert.Contains(t, got.Text, "valid for 5 minutes")
}

func TestHTTPSender_Send_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sender := NewHTTPSender(config.Mail{
		APIURL:    srv.URL,
		APIKey:    "bad-key",
		FromEmail: "noreply@hdnotes.app",
	}, logger.NewLogger("test"))

	err := sender.Send(context.Background(), NewOTPMessage("john@example.com", "John", "482913"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestNewHTTPSender_NoURLFallsBackToLogging(t *testing.T) {
	sender := NewHTTPSender(config.Mail{}, logger.NewLogger("test"))

	_, ok := sender.(*logSender)
	require.True(t, ok, "expected log-only sender when no API URL is configured")

	err := sender.Send(context.Background(), NewOTPMessage("john@example.com", "John", "482913"))
	assert.NoError(t, err)
}

func TestNewOTPMessage_BothBodiesCarryCode(t *testing.T) {
	msg := NewOTPMessage("jane@example.com", "Jane", "000042")

	assert.True(t, strings.Contains(msg.HTML, "000042"))
	assert.True(t, strings.Contains(msg.Text, "000042"))
	assert.Contains(t, msg.HTML, "Jane")
	assert.Equal(t, "jane@example.com", msg.ToEmail)
}
