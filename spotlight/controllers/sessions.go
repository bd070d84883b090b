// spotlight/controllers/sessions.go
package controllers

import (
	"context"

	"spotlight/spotlight/sources/psql/dao"
	"spotlight/spotlight/types"
	"spotlight/spotlight/utils/logging"

	"go.uber.org/zap"
)

type SessionsController struct {
	sessionDAO *dao.SessionDAO
	messageDAO *dao.MessageDAO
}

func NewSessionsController(sessionDAO *dao.SessionDAO, messageDAO *dao.MessageDAO) *SessionsController {
	return &SessionsController{sessionDAO: sessionDAO, messageDAO: messageDAO}
}

func (c *SessionsController) ListSessions(ctx context.Context, filter types.SessionFilter) (*types.SessionsResponse, error) {
	defer logging.LogDuration(ctx, "ListSessions")()
	logging.AppLogger.Info("Fetching all sessions for admin dashboard",
		zap.String("workshop_id", filter.WorkshopID),
		zap.String("search", filter.Search),
	)
	sessions, err := c.sessionDAO.ListSessions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &types.SessionsResponse{Sessions: sessions, Count: len(sessions)}, nil
}

// GetConversation returns a session with its full transcript in timestamp order.
func (c *SessionsController) GetConversation(ctx context.Context, sessionID string) (*types.ConversationResponse, error) {
	defer logging.LogDuration(ctx, "GetConversation")()
	if sessionID == "" {
		return nil, types.NewValidationError("Session ID is required")
	}
	logging.AppLogger.Info("Fetching conversation for session", zap.String("session_id", sessionID))

	session, err := c.sessionDAO.GetSessionBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, types.ErrSessionNotFound
	}
	messages, err := c.messageDAO.GetMessagesBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &types.ConversationResponse{
		Session:  *session,
		Messages: messages,
		Count:    len(messages),
	}, nil
}
