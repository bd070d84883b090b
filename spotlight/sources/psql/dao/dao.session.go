// spotlight/sources/psql/dao/dao.session.go
package dao

import (
	"context"
	"errors"

	"spotlight/spotlight/sources/psql"
	"spotlight/spotlight/sources/psql/models"
	"spotlight/spotlight/types"

	"gorm.io/gorm"
)

type SessionDAO struct {
	DB *psql.Database
}

func NewSessionDAO(db *psql.Database) *SessionDAO {
	return &SessionDAO{DB: db}
}

// ListSessions returns sessions newest-created first.
func (dao *SessionDAO) ListSessions(ctx context.Context, filter types.SessionFilter) ([]models.Session, error) {
	conn, err := dao.DB.Conn(ctx)
	if err != nil {
		return nil, err
	}
	q := conn.Model(&models.Session{})
	if filter.WorkshopID != "" {
		q = q.Where("workshop_id = ?", filter.WorkshopID)
	}
	if filter.Search != "" {
		q = nameContains(q, filter.Search)
	}
	sessions := []models.Session{}
	if err := q.Order("created DESC").Order("id ASC").Find(&sessions).Error; err != nil {
		return nil, storeErr(err)
	}
	return sessions, nil
}

// GetSessionBySessionID returns nil, nil when no session matches.
func (dao *SessionDAO) GetSessionBySessionID(ctx context.Context, sessionID string) (*models.Session, error) {
	conn, err := dao.DB.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var session models.Session
	err = conn.Where("session_id = ?", sessionID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &session, nil
}

func (dao *SessionDAO) CountSessions(ctx context.Context) (int64, error) {
	conn, err := dao.DB.Conn(ctx)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := conn.Model(&models.Session{}).Count(&n).Error; err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}
