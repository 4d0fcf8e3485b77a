package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads an order's audit entries from the log
// table. An order with no entries yields an empty timeline, not an error; the
// transport layer decides whether the order itself exists.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for audit trail reads.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query. Entries come back oldest first so consumers can
// render the trail as a timeline without re-sorting.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			operator_id,
			action,
			detail,
			from_status,
			to_status,
			created_at
		FROM order_logs
		WHERE order_id = ?
		ORDER BY created_at ASC
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderHistoryQueryResponse
		var id, operatorID uuid.UUID
		var fromStatus sql.NullString

		err = rows.Scan(
			&id,
			&operatorID,
			&entry.Action,
			&entry.Detail,
			&fromStatus,
			&entry.ToStatus,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.OperatorID, err = kernel.UUIDFromBytes(operatorID[:]); err != nil {
			return nil, err
		}
		if fromStatus.Valid {
			entry.FromStatus = fromStatus.String
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
