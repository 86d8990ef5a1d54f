package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestWebhookManagerTrigger(t *testing.T) {
	var mu sync.Mutex
	var received []webhookPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload webhookPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("Expected JSON payload, got %v", err)
		}
		mu.Lock()
		received = append(received, payload)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	manager := NewWebhookManager(map[string][]string{
		"document.completed": {server.URL, server.URL},
	})

	manager.Trigger(context.Background(), "document.completed", "doc-1", map[string]string{"status": "completed"})

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 2 {
		t.Fatalf("Expected 2 deliveries, got %d", len(received))
	}
	if received[0].Event != "document.completed" {
		t.Errorf("Expected event document.completed, got %s", received[0].Event)
	}
	if received[0].DocumentID != "doc-1" {
		t.Errorf("Expected document_id doc-1, got %s", received[0].DocumentID)
	}
}

func TestWebhookManagerNoRegistration(t *testing.T) {
	manager := NewWebhookManager(nil)

	// No panic, no delivery attempt
	manager.Trigger(context.Background(), "document.completed", "doc-1", nil)
}

func TestWebhookManagerFailureSwallowed(t *testing.T) {
	manager := NewWebhookManager(map[string][]string{
		"document.failed": {"http://127.0.0.1:1/unreachable"},
	})

	// Delivery failure must not propagate
	manager.Trigger(context.Background(), "document.failed", "doc-1", nil)
}
