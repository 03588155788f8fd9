package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrFlowNotFound = errors.New("grant flow not found")

// Store keeps grant flows and their current key in the database.
type Store struct {
	db     *gorm.DB
	newKey func() string
	now    func() time.Time
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, newKey: uuid.NewString, now: time.Now}
}

// StartFlow opens a flow and issues its first key.
func (s *Store) StartFlow(ctx context.Context, adminID string) (GrantFlow, error) {
	if adminID == "" {
		return GrantFlow{}, fmt.Errorf("admin id is required")
	}
	key := s.newKey()
	issued := s.now()
	flow := GrantFlow{
		ID:             uuid.NewString(),
		AdminID:        adminID,
		IdempotencyKey: &key,
		KeyIssuedAt:    &issued,
	}
	if err := s.db.WithContext(ctx).Create(&flow).Error; err != nil {
		return GrantFlow{}, err
	}
	return flow, nil
}

// Current returns the flow's live key, issuing a new one when the previous
// key was discarded by a successful submission.
func (s *Store) Current(ctx context.Context, flowID, adminID string) (Key, error) {
	var key Key
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var flow GrantFlow
		if err := tx.Where("id = ? AND admin_id = ?", flowID, adminID).First(&flow).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFlowNotFound
			}
			return err
		}

		if flow.IdempotencyKey != nil && *flow.IdempotencyKey != "" {
			key = Key(*flow.IdempotencyKey)
			return nil
		}

		fresh := s.newKey()
		if err := tx.Model(&GrantFlow{}).
			Where("id = ?", flow.ID).
			Updates(map[string]interface{}{
				"idempotency_key": fresh,
				"key_issued_at":   s.now(),
			}).Error; err != nil {
			return err
		}
		key = Key(fresh)
		return nil
	})
	return key, err
}

// Discard retires key after a successful submission. A stale key (already
// rotated) is left alone.
func (s *Store) Discard(ctx context.Context, flowID string, key Key) error {
	return s.db.WithContext(ctx).
		Model(&GrantFlow{}).
		Where("id = ? AND idempotency_key = ?", flowID, string(key)).
		Updates(map[string]interface{}{
			"idempotency_key":  nil,
			"key_issued_at":    nil,
			"completed_grants": gorm.Expr("completed_grants + 1"),
		}).Error
}

// Retire removes the flow. Later submissions against it get ErrFlowNotFound.
func (s *Store) Retire(ctx context.Context, flowID string) error {
	return s.db.WithContext(ctx).Where("id = ?", flowID).Delete(&GrantFlow{}).Error
}
