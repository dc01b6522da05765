// Package handler contains the Pub/Sub push handlers of the events worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"resumecoach/config"
	deliverycontext "resumecoach/internal/delivery/context"
	"resumecoach/internal/domain/service"
	"resumecoach/internal/infra/metrics"
	"resumecoach/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// envLocal disables push authentication so the local HTTP publisher can deliver.
const envLocal = "local"

// tokenValidator checks a Google-signed OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes analysis.completed push messages
type PushHandler struct {
	verifyPushAuth bool
	validate       tokenValidator
	metrics        *metrics.Metrics
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push deliveries carry an OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != envLocal

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		metrics:        params.Metrics,
		logger:         params.Logger,
	}
}

// HandlePush acknowledges every well-formed delivery with 200. Malformed messages get 400
// so they land in the dead letter topic instead of being retried.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeAnalysisEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Rejecting analysis event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(c.Request().Context(), &pushMsg, event)
	ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
	logger := h.logger.With(slog.String("request_id", requestID))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

	h.metrics.RecordAnalysisEvent(event.HasJobDescription, event.TipCount)

	logger.Info("[Worker] Analysis completed",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("record_id", event.RecordID),
		slog.String("user_id", event.UserID),
		slog.Bool("has_job_description", event.HasJobDescription),
		slog.Int("tip_count", event.TipCount),
		slog.Int("feedback_length", event.FeedbackLength),
	)

	return c.NoContent(http.StatusOK)
}

func decodeAnalysisEvent(pushMsg *pubsub.PushMessage) (*service.AnalysisEvent, error) {
	if eventType := pushMsg.Message.Attributes["event_type"]; eventType != "" && eventType != pubsub.AnalysisCompletedEvent {
		return nil, errors.Errorf("unexpected event type %q", eventType)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.AnalysisEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse analysis event")
	}

	if _, err := uuid.Parse(event.UserID); err != nil {
		return nil, errors.Wrap(err, "invalid user_id")
	}
	if event.TipCount < 0 {
		return nil, errors.Errorf("invalid tip_count %d", event.TipCount)
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event payload, then the
// request's own ID, and finally generates one.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.AnalysisEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPushToken validates the OIDC token Pub/Sub attaches to push requests.
func (h *PushHandler) verifyPushToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
