package repositories

import (
	"context"
	"errors"

	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/entities"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository lets front-end adapters address a session across
// requests. Each stored session still has exactly one caller at a time.
type SessionRepository interface {
	Save(ctx context.Context, session *entities.Session) error
	FindByID(ctx context.Context, id entities.SessionID) (*entities.Session, error)
}
