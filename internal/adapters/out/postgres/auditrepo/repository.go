package auditrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditLog implements AuditLog using GORM. Appends run on the base
// connection, never inside a transition's transaction: the trail records what
// already committed and must not be able to roll it back.
type GormAuditLog struct {
	db *gorm.DB
}

// NewGormAuditLog creates a new GORM audit log.
func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

// Append writes one audit entry.
func (l *GormAuditLog) Append(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return l.db.WithContext(ctx).Create(&dto).Error
}
