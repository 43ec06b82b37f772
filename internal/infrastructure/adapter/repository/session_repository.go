package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// SessionRepository implements persistence.SessionRepository using GORM
type SessionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSessionRepository creates a new SessionRepository instance
func NewSessionRepository(db *gorm.DB, logger coreport.Logger) *SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SessionRepository) entityToModel(session *entity.Session) model.Session {
	return model.Session{
		Token:     session.Token,
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}
}

func (r *SessionRepository) modelToEntity(sessionModel *model.Session) *entity.Session {
	return &entity.Session{
		Token:     sessionModel.Token,
		UserID:    sessionModel.UserID,
		CreatedAt: sessionModel.CreatedAt,
		ExpiresAt: sessionModel.ExpiresAt,
	}
}

// Create saves a new session
func (r *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionModel := r.entityToModel(session)
	result := r.db.WithContext(ctx).Create(&sessionModel)
	if result.Error != nil {
		r.logger.Error("Failed to create session", map[string]any{
			"user_id": session.UserID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Debug("Session created", map[string]any{
		"user_id":    session.UserID,
		"expires_at": session.ExpiresAt,
	})
	return nil
}

// GetByToken retrieves a session by its token
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*entity.Session, error) {
	var sessionModel model.Session
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&sessionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrInvalidSession
		}
		r.logger.Error("Failed to get session", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(&sessionModel), nil
}

// Delete removes a session by its token, succeeding even when no row matches
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.Session{})
	if result.Error != nil {
		r.logger.Error("Failed to delete session", map[string]any{
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// DeleteExpired removes all sessions that expired before the given time
func (r *SessionRepository) DeleteExpired(ctx context.Context, before time.Time) error {
	result := r.db.WithContext(ctx).Where("expires_at < ?", before).Delete(&model.Session{})
	if result.Error != nil {
		r.logger.Error("Failed to delete expired sessions", map[string]any{
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired sessions removed", map[string]any{
			"count": result.RowsAffected,
		})
	}
	return nil
}
