//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// receivedEvent is one settings-updated event as delivered to the stub sink.
type receivedEvent struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	UserID     string  `json:"user_id"`
	ActorID    *string `json:"actor_id"`
	OccurredAt string  `json:"occurred_at"`
	Changes    []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"changes"`
	rawActorID json.RawMessage
}

// webhookStub stands in for the notification sink. It records every event it
// accepts and can be told to answer with a failure status.
type webhookStub struct {
	mu         sync.Mutex
	server     *httptest.Server
	events     []receivedEvent
	failStatus int // 0 means accept
}

func newWebhookStub() *webhookStub {
	stub := &webhookStub{}
	stub.server = httptest.NewServer(http.HandlerFunc(stub.handle))
	return stub
}

func (s *webhookStub) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failStatus != 0 {
		w.WriteHeader(s.failStatus)
		return
	}

	var raw map[string]json.RawMessage
	var event receivedEvent
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&raw); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	full, _ := json.Marshal(raw)
	if err := json.Unmarshal(full, &event); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	event.rawActorID = raw["actor_id"]

	s.events = append(s.events, event)
	w.WriteHeader(http.StatusOK)
}

func (s *webhookStub) URL() string {
	return s.server.URL
}

func (s *webhookStub) Close() {
	s.server.Close()
}

// FailWith makes the sink answer every delivery with the given status until
// Reset is called.
func (s *webhookStub) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// Reset clears recorded events and restores acceptance.
func (s *webhookStub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = 0
	s.events = nil
}

// Events returns a copy of the accepted events.
func (s *webhookStub) Events() []receivedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]receivedEvent(nil), s.events...)
}

// Schema strings with special meaning to the stub remote validator.
const (
	schemaRejectPrefix = "reject:" // rejected with the message after the prefix
	schemaBoomMarker   = "boom"    // answered with HTTP 500
)

// schemaRemoteStub stands in for the remote schema-validation query. Stub
// behavior is keyed off the schema value itself so the suite needs no
// per-test reconfiguration.
type schemaRemoteStub struct {
	server *httptest.Server
}

func newSchemaRemoteStub() *schemaRemoteStub {
	stub := &schemaRemoteStub{}
	stub.server = httptest.NewServer(http.HandlerFunc(stub.handle))
	return stub
}

func (s *schemaRemoteStub) handle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Variables map[string]string `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	schema := req.Variables["schema"]
	w.Header().Set("Content-Type", "application/json")

	switch {
	case schema == schemaBoomMarker:
		w.WriteHeader(http.StatusInternalServerError)
	case strings.HasPrefix(schema, schemaRejectPrefix):
		message := strings.TrimPrefix(schema, schemaRejectPrefix)
		_, _ = fmt.Fprintf(w, `{"errors":[{"message":%q}]}`, message)
	default:
		_, _ = w.Write([]byte(`{"data":{"validateSchema":{"valid":true}}}`))
	}
}

func (s *schemaRemoteStub) URL() string {
	return s.server.URL
}

func (s *schemaRemoteStub) Close() {
	s.server.Close()
}
