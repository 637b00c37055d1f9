package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type SessionID string

// Session owns one conversation's ordered turn history together with the
// latest analysis and advice narratives. The history is append-only and grows
// for the session's lifetime; a later analysis or advice call overwrites the
// prior value rather than versioning it.
type Session struct {
	id        SessionID
	history   []*Turn
	analysis  string
	advice    string
	createdAt time.Time
}

func NewSession() *Session {
	return &Session{
		id:        SessionID(uuid.NewString()),
		createdAt: time.Now(),
	}
}

func (s *Session) ID() SessionID {
	return s.id
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// History returns the turns in call order. The slice is a copy so only the
// session itself can extend the history.
func (s *Session) History() []*Turn {
	return append([]*Turn(nil), s.history...)
}

func (s *Session) TurnCount() int {
	return len(s.history)
}

// Append records one completed exchange. Request and response land adjacently
// so the gateway always replays the full conversation in call order.
func (s *Session) Append(request, response *Turn) {
	s.history = append(s.history, request, response)
}

func (s *Session) Analysis() string {
	return s.analysis
}

func (s *Session) SetAnalysis(text string) {
	s.analysis = text
}

func (s *Session) Advice() string {
	return s.advice
}

func (s *Session) SetAdvice(text string) {
	s.advice = text
}

func (s *Session) HasAnalysis() bool {
	return s.analysis != ""
}

// AdviceWorthy reports whether the current analysis is confident enough to
// base advice on. The historical rule is literal: any narrative containing
// the substring "unclear" is not advice-worthy. Known to be fragile; kept for
// compatibility with existing front ends.
func (s *Session) AdviceWorthy() bool {
	if s.analysis == "" {
		return false
	}
	return !strings.Contains(strings.ToLower(s.analysis), "unclear")
}
