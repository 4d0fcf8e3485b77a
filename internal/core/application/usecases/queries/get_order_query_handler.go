package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order row straight from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFound error when no order
// exists under the identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_no,
			customer_id,
			merchant_id,
			agent_id,
			product_name,
			quantity,
			total_price,
			shipping_address,
			receiver_name,
			receiver_phone,
			sender_address,
			remark,
			status,
			abnormal_reason,
			created_at,
			updated_at,
			confirmed_at,
			delivered_at,
			signed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var resp GetOrderQueryResponse
	var id, customerID, merchantID uuid.UUID
	var agentID uuid.NullUUID
	var confirmedAt, deliveredAt, signedAt sql.NullTime

	err := row.Scan(
		&id,
		&resp.OrderNo,
		&customerID,
		&merchantID,
		&agentID,
		&resp.ProductName,
		&resp.Quantity,
		&resp.TotalPrice,
		&resp.ShippingAddress,
		&resp.ReceiverName,
		&resp.ReceiverPhone,
		&resp.SenderAddress,
		&resp.Remark,
		&resp.Status,
		&resp.AbnormalReason,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&confirmedAt,
		&deliveredAt,
		&signedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return nil, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return nil, err
	}
	if resp.MerchantID, err = kernel.UUIDFromBytes(merchantID[:]); err != nil {
		return nil, err
	}
	if agentID.Valid {
		aid, aidErr := kernel.UUIDFromBytes(agentID.UUID[:])
		if aidErr != nil {
			return nil, aidErr
		}
		resp.AgentID = &aid
	}
	if confirmedAt.Valid {
		resp.ConfirmedAt = &confirmedAt.Time
	}
	if deliveredAt.Valid {
		resp.DeliveredAt = &deliveredAt.Time
	}
	if signedAt.Valid {
		resp.SignedAt = &signedAt.Time
	}

	return &resp, nil
}
