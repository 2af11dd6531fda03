package chat

import (
	"context"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
)

type StatusRepository interface {
	// Append stores the row and reports whether it became the message's
	// current status. Rows older than the current status are kept in the
	// history but do not move the message.
	Append(ctx context.Context, row *dbsql.ChatMessageStatus) (applied bool, err error)
	ByMessage(ctx context.Context, messageID uint64) ([]dbsql.ChatMessageStatus, error)
	Latest(ctx context.Context, messageID uint64) (*dbsql.ChatMessageStatus, error)
}

type statusRepo struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepo{db: db}
}

func (r *statusRepo) Append(ctx context.Context, row *dbsql.ChatMessageStatus) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		res := tx.Model(&dbsql.ChatMessage{}).
			Where("id = ? AND (status_at IS NULL OR status_at <= ?)", row.MessageID, row.OccurredAt).
			Updates(map[string]interface{}{
				"status":    row.Status,
				"status_at": row.OccurredAt,
			})
		if res.Error != nil {
			return res.Error
		}
		applied = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

func (r *statusRepo) ByMessage(ctx context.Context, messageID uint64) ([]dbsql.ChatMessageStatus, error) {
	var rows []dbsql.ChatMessageStatus
	err := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("occurred_at, id").
		Find(&rows).Error
	return rows, err
}

func (r *statusRepo) Latest(ctx context.Context, messageID uint64) (*dbsql.ChatMessageStatus, error) {
	var row dbsql.ChatMessageStatus
	err := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("occurred_at DESC, id DESC").
		First(&row).Error
	if err != nil {
		return nil, common.NotFound(err)
	}
	return &row, nil
}
