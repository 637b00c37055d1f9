package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/entities"
	domainrepos "github.com/arunmack789/Hair-Analysis-Report/internal/domain/repositories"
)

// MemorySessionRepository keeps live sessions addressable across front-end
// requests. Sessions are never persisted; discarding the process discards
// every conversation.
type MemorySessionRepository struct {
	sessions map[entities.SessionID]*entities.Session
	mu       sync.RWMutex
}

func NewMemorySessionRepository() domainrepos.SessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[entities.SessionID]*entities.Session),
	}
}

func (r *MemorySessionRepository) Save(ctx context.Context, session *entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID()] = session
	return nil
}

func (r *MemorySessionRepository) FindByID(ctx context.Context, id entities.SessionID) (*entities.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domainrepos.ErrSessionNotFound, id)
	}

	return session, nil
}
