package audit

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

func (r *Recorder) Record(ctx context.Context, adminID, action, target, targetID string, details interface{}) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return err
	}

	entry := &OperationLog{
		AdminID:   adminID,
		Action:    action,
		Target:    target,
		TargetID:  targetID,
		Details:   string(detailsJSON),
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns one page of the audit trail, newest first.
func (r *Recorder) List(ctx context.Context, page, pageSize int) ([]OperationLog, int64, error) {
	var logs []OperationLog
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&OperationLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Order("created_at DESC").Order("id DESC").Offset(offset).Limit(pageSize).Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
