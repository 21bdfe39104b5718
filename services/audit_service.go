package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"PlateTrail/models"
	"PlateTrail/storage"
)

const auditWriteTimeout = 10 * time.Second

// AuditService writes a best-effort trace of mutating actions. Writes are
// dispatched on their own goroutine strictly after the primary mutation has
// been persisted; a failed audit write is logged and never reaches the caller.
type AuditService struct {
	Store storage.Store

	wg sync.WaitGroup
}

func NewAuditService(store storage.Store) *AuditService {
	return &AuditService{Store: store}
}

// Record emits one audit event. Skips silently when there is no authenticated
// actor. Details must never contain user-written comment text.
func (s *AuditService) Record(userID, action, collection, docID string, details map[string]interface{}) {
	if userID == "" {
		return
	}

	event := &models.AuditEvent{
		UserID:     userID,
		Action:     action,
		Collection: collection,
		DocID:      docID,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()

		if err := s.Store.AppendAudit(ctx, event); err != nil {
			slog.Warn("audit write failed",
				"action", action,
				"collection", collection,
				"docId", docID,
				"error", err)
		}
	}()
}

// Wait blocks until all in-flight audit writes have finished. Used on shutdown
// and in tests.
func (s *AuditService) Wait() {
	s.wg.Wait()
}
