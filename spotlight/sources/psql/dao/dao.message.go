// spotlight/sources/psql/dao/dao.message.go
package dao

import (
	"context"

	"spotlight/spotlight/sources/psql"
	"spotlight/spotlight/sources/psql/models"
)

type MessageDAO struct {
	DB *psql.Database
}

func NewMessageDAO(db *psql.Database) *MessageDAO {
	return &MessageDAO{DB: db}
}

// GetMessagesBySession returns the transcript oldest first.
func (dao *MessageDAO) GetMessagesBySession(ctx context.Context, sessionID string) ([]models.Message, error) {
	conn, err := dao.DB.Conn(ctx)
	if err != nil {
		return nil, err
	}
	messages := []models.Message{}
	err = conn.Where("session_id = ?", sessionID).
		Order("timestamp ASC").
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return messages, nil
}
