package service

import (
	"testing"
	"time"

	"github.com/Anjani2611/legal-doc-simplifier/model"
)

func newTestStore(maxDocuments int) *DocumentStore {
	return &DocumentStore{
		documents:    make(map[string]*model.Document),
		maxDocuments: maxDocuments,
	}
}

func TestDocumentStoreSaveAndGet(t *testing.T) {
	store := newTestStore(100)

	doc := &model.Document{
		ID:        "test-id-1",
		Filename:  "lease.pdf",
		Tenant:    "tenant1",
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
	}

	store.Save(doc)

	retrieved := store.Get("test-id-1")
	if retrieved == nil {
		t.Fatal("Expected to retrieve document")
	}
	if retrieved.Filename != "lease.pdf" {
		t.Errorf("Expected filename lease.pdf, got %s", retrieved.Filename)
	}

	if store.Get("non-existent") != nil {
		t.Error("Expected nil for non-existent document")
	}
}

func TestDocumentStoreGetByTenant(t *testing.T) {
	store := newTestStore(100)

	store.Save(&model.Document{ID: "1", Tenant: "tenant1", CreatedAt: time.Now()})
	store.Save(&model.Document{ID: "2", Tenant: "tenant1", CreatedAt: time.Now()})
	store.Save(&model.Document{ID: "3", Tenant: "tenant2", CreatedAt: time.Now()})

	if got := len(store.GetByTenant("tenant1")); got != 2 {
		t.Errorf("Expected 2 documents for tenant1, got %d", got)
	}
	if got := len(store.GetByTenant("tenant2")); got != 1 {
		t.Errorf("Expected 1 document for tenant2, got %d", got)
	}
	if got := len(store.GetByTenant("tenant3")); got != 0 {
		t.Errorf("Expected 0 documents for tenant3, got %d", got)
	}
}

func TestDocumentStoreDelete(t *testing.T) {
	store := newTestStore(100)

	store.Save(&model.Document{ID: "delete-me", CreatedAt: time.Now()})

	if store.Get("delete-me") == nil {
		t.Fatal("Expected document to exist before delete")
	}

	store.Delete("delete-me")

	if store.Get("delete-me") != nil {
		t.Error("Expected document to be deleted")
	}
}

func TestDocumentStoreUpdateStatus(t *testing.T) {
	store := newTestStore(100)

	store.Save(&model.Document{ID: "doc-1", Status: model.StatusPending, CreatedAt: time.Now()})

	store.UpdateStatus("doc-1", model.StatusFailed, "extraction error")

	doc := store.Get("doc-1")
	if doc.Status != model.StatusFailed {
		t.Errorf("Expected status failed, got %s", doc.Status)
	}
	if doc.ErrorMsg != "extraction error" {
		t.Errorf("Expected error message, got %q", doc.ErrorMsg)
	}
}

func TestDocumentStoreUpdateResult(t *testing.T) {
	store := newTestStore(100)

	store.Save(&model.Document{ID: "doc-1", Status: model.StatusProcessing, CreatedAt: time.Now()})

	result := &model.PipelineResult{Summary: "The buyer must pay within thirty days."}
	store.UpdateResult("doc-1", result)

	doc := store.Get("doc-1")
	if doc.Status != model.StatusCompleted {
		t.Errorf("Expected status completed, got %s", doc.Status)
	}
	if doc.Result == nil || doc.Result.Summary != result.Summary {
		t.Errorf("Expected result attached, got %+v", doc.Result)
	}
}

func TestDocumentStoreUpdateRisks(t *testing.T) {
	store := newTestStore(100)

	store.Save(&model.Document{ID: "doc-1", CreatedAt: time.Now()})

	store.UpdateRisks("doc-1", []model.RiskFinding{
		{RiskLevel: model.RiskHigh, RiskScore: 75, Description: "Termination without cause or notice provision"},
	})

	doc := store.Get("doc-1")
	if len(doc.Risks) != 1 || doc.Risks[0].RiskLevel != model.RiskHigh {
		t.Errorf("Expected 1 high risk finding, got %+v", doc.Risks)
	}
}

func TestDocumentStoreCleanup(t *testing.T) {
	store := newTestStore(3)

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"oldest", "older", "newer", "newest"} {
		store.Save(&model.Document{
			ID:        id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	if store.Count() != 3 {
		t.Fatalf("Expected 3 documents after cleanup, got %d", store.Count())
	}
	if store.Get("oldest") != nil {
		t.Error("Expected oldest document evicted")
	}
	if store.Get("newest") == nil {
		t.Error("Expected newest document kept")
	}
}

func TestDocumentStoreExpireOld(t *testing.T) {
	store := newTestStore(100)

	store.Save(&model.Document{ID: "ancient", CreatedAt: time.Now().Add(-48 * time.Hour)})
	store.Save(&model.Document{ID: "recent", CreatedAt: time.Now()})

	expired := store.ExpireOld(time.Now().Add(-24 * time.Hour))

	if len(expired) != 1 || expired[0].ID != "ancient" {
		t.Errorf("Expected ancient document expired, got %+v", expired)
	}
	if store.Get("ancient") != nil {
		t.Error("Expected expired document removed from store")
	}
	if store.Get("recent") == nil {
		t.Error("Expected recent document kept")
	}
}
