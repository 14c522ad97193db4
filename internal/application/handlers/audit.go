package handlers

import (
	"context"

	"github.com/charnet/charnet/internal/domain/entities"
	"github.com/charnet/charnet/internal/domain/ports"
)

// AuditHandler exposes the snapshot's mutation trail.
type AuditHandler struct {
	store ports.SnapshotStore
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(store ports.SnapshotStore) *AuditHandler {
	return &AuditHandler{store: store}
}

// HandleList returns the most recent audit entries, newest first.
func (h *AuditHandler) HandleList(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	return h.store.ListAuditLog(ctx, limit)
}
