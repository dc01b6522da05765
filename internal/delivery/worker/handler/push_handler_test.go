package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resumecoach/internal/domain/service"
	"resumecoach/internal/infra/metrics"
	"resumecoach/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(verify bool, validate tokenValidator) *PushHandler {
	return &PushHandler{
		verifyPushAuth: verify,
		validate:       validate,
		metrics:        metrics.New(prometheus.NewRegistry()),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func TestPushHandler_RecordsEvent(t *testing.T) {
	h := newTestPushHandler(false, nil)
	event := service.AnalysisEvent{UserID: uuid.NewString(), HasJobDescription: true, TipCount: 3}

	rec := servePush(h, pushBody(t, event, map[string]string{"event_type": pubsub.AnalysisCompletedEvent}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 1, testutil.ToFloat64(h.metrics.AnalysisEvents.WithLabelValues("true")), 0)
}

func TestPushHandler_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		body func(t *testing.T) string
	}{
		{name: "not json", body: func(*testing.T) string { return "{" }},
		{name: "bad base64", body: func(*testing.T) string { return `{"message":{"data":"%%%"}}` }},
		{name: "bad user id", body: func(t *testing.T) string {
			return pushBody(t, service.AnalysisEvent{UserID: "nope"}, nil)
		}},
		{name: "other event type", body: func(t *testing.T) string {
			return pushBody(t, service.AnalysisEvent{UserID: uuid.NewString()}, map[string]string{"event_type": "user.deleted"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestPushHandler(false, nil)

			rec := servePush(h, tt.body(t), nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	body := func(t *testing.T) string {
		return pushBody(t, service.AnalysisEvent{UserID: uuid.NewString()}, nil)
	}

	t.Run("missing token", func(t *testing.T) {
		h := newTestPushHandler(true, nil)

		assert.Equal(t, http.StatusUnauthorized, servePush(h, body(t), nil).Code)
	})

	t.Run("validator error", func(t *testing.T) {
		h := newTestPushHandler(true, func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("expired")
		})

		rec := servePush(h, body(t), map[string]string{echo.HeaderAuthorization: "Bearer tok"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h := newTestPushHandler(true, func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		})

		rec := servePush(h, body(t), map[string]string{echo.HeaderAuthorization: "Bearer tok"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid google token", func(t *testing.T) {
		var gotAudience string
		h := newTestPushHandler(true, func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		})

		rec := servePush(h, body(t), map[string]string{echo.HeaderAuthorization: "Bearer tok"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})
}
