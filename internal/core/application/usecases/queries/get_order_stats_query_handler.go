package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler counts orders per status.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for per-status counts.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the query. Statuses with no orders are absent from the
// result.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) ([]GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	buckets := make([]GetOrderStatsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bucket GetOrderStatsQueryResponse
		if err = rows.Scan(&bucket.Status, &bucket.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}
