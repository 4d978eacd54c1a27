package conversation

import (
	"fmt"
	"strings"

	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/intent"
)

// Manager owns session lifecycle and the conversational framing around
// engine output.
type Manager struct {
	cfg   Config
	store SessionStore
	ids   domain.IDGenerator
	clock domain.Clock
}

func NewManager(cfg Config, store SessionStore, ids domain.IDGenerator, clock domain.Clock) *Manager {
	return &Manager{cfg: cfg, store: store, ids: ids, clock: clock}
}

// StartSession creates and registers an empty session.
func (m *Manager) StartSession(userID string) *domain.Session {
	now := m.clock.Now()
	s := &domain.Session{
		ID:           m.ids.NewID(),
		UserID:       userID,
		StartTime:    now,
		LastActivity: now,
	}
	m.store.Put(s)
	return s
}

// Resume fetches a live session by id.
func (m *Manager) Resume(sessionID string) (*domain.Session, bool) {
	return m.store.Get(sessionID)
}

// EndSession drops the session from the store. Persistence of its
// history is the caller's job before calling this.
func (m *Manager) EndSession(sessionID string) {
	m.store.Delete(sessionID)
}

// ComposeReply wraps the tactical body with conversational framing:
// a mindset-first validation when the intent calls for it, a reference
// to earlier conversation when there is meaningful history, and a
// consistency note when the user already follows a career path.
func (m *Manager) ComposeReply(s *domain.Session, p *domain.UserProfile, in domain.Intent, body string) string {
	var parts []string

	if note := m.mindsetOpening(in); note != "" {
		parts = append(parts, note)
	}
	if preamble := m.contextPreamble(s); preamble != "" {
		parts = append(parts, preamble)
	}
	if note := m.consistencyNote(p); note != "" {
		parts = append(parts, note)
	}
	if body != "" {
		parts = append(parts, body)
	}

	if len(parts) == 0 {
		return FallbackMessage
	}
	return EnsureActionable(strings.Join(parts, "\n\n"))
}

// mindsetOpening validates the user's emotional state before any
// tactical content.
func (m *Manager) mindsetOpening(in domain.Intent) string {
	if !intent.ShouldPrioritizeMindset(in) {
		return ""
	}

	opening := "What you're feeling is common at career crossroads, and it doesn't mean you're failing."
	if e := in.Entities.Emotional; e != nil && len(e.Indicators) > 0 {
		opening = fmt.Sprintf(
			"It sounds like you're dealing with %s right now — that's a completely understandable place to be.",
			e.Indicators[0])
	}
	return opening + " What part of this weighs on you most?"
}

// contextPreamble references prior conversation when at least one
// earlier assistant reply was substantial: strictly longer than the
// configured threshold.
func (m *Manager) contextPreamble(s *domain.Session) string {
	if s == nil {
		return ""
	}
	last, ok := s.LastAssistantMessage()
	if !ok || len(last.Content) <= m.cfg.MinContextChars {
		return ""
	}
	return "Based on our previous conversations, I've refined what I'd suggest next."
}

// consistencyNote keeps guidance stable for users already on a path: a
// recent profile update means circumstances changed and is called out;
// otherwise continuity is affirmed.
func (m *Manager) consistencyNote(p *domain.UserProfile) string {
	if p == nil || p.Career.CurrentPath == nil {
		return ""
	}
	cutoff := m.clock.Now().AddDate(0, 0, -m.cfg.RecentUpdateDays)
	if p.Progress.LastUpdated.After(cutoff) {
		return fmt.Sprintf(
			"I noticed your situation changed recently, so I've taken a fresh look rather than assuming the %s path still fits as-is.",
			p.Career.CurrentPath.Title)
	}
	return fmt.Sprintf("You're on the %s path, and what follows builds on that rather than changing course.",
		p.Career.CurrentPath.Title)
}
