package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"resumecoach/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAnalysisEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.AnalysisEvent{
		RequestID:         "req-1",
		RecordID:          "rec-1",
		UserID:            "user-1",
		HasJobDescription: true,
		TipCount:          3,
	}

	require.NoError(t, publisher.PublishAnalysisEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, AnalysisCompletedEvent, received.Message.Attributes["event_type"])
	assert.Equal(t, "rec-1", received.Message.Attributes["record_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.AnalysisEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishAnalysisEvent(context.Background(), &service.AnalysisEvent{UserID: "user-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestEventAttributes_OmitsEmptyIDs(t *testing.T) {
	attrs := eventAttributes(&service.AnalysisEvent{UserID: "user-1"})

	assert.Equal(t, map[string]string{
		"event_type": AnalysisCompletedEvent,
		"user_id":    "user-1",
	}, attrs)
}
