package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
)

// AuditLog is the append-only trail of accepted transitions. Appends happen
// after the owning transaction commits and are fire-and-forget from the
// orchestrator's perspective: a failed append is surfaced to the operator as
// a non-fatal error but never rolls back the committed state change.
type AuditLog interface {
	// Append writes one audit entry. Entries are never edited or removed.
	Append(ctx context.Context, entry *audit.Entry) error
}
