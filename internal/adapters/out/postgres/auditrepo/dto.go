// Package auditrepo persists the append-only audit trail. Entries are only
// ever inserted; the write path has no update or delete.
package auditrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure of one audit entry. FromStatus
// is null only for the creation entry.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	OperatorID uuid.UUID `gorm:"type:uuid"`
	Action     string    `gorm:"size:32"`
	Detail     string
	FromStatus *string `gorm:"size:16"`
	ToStatus   string  `gorm:"size:16"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "order_logs"
}

func fromDomain(entry *audit.Entry) EntryDTO {
	var fromStatus *string
	if from := entry.FromStatus(); from != nil {
		s := from.String()
		fromStatus = &s
	}

	return EntryDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    entry.OrderID().Bytes(),
		OperatorID: entry.OperatorID().Bytes(),
		Action:     entry.Action(),
		Detail:     entry.Detail(),
		FromStatus: fromStatus,
		ToStatus:   entry.ToStatus().String(),
		CreatedAt:  entry.CreatedAt(),
	}
}
