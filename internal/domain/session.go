package domain

import "time"

type Message struct {
	ID        string
	Role      MessageRole
	Content   string
	Timestamp time.Time
}

type SessionContext struct {
	History        []Message
	CurrentIntent  *Intent
	ActiveTopics   []string
	PendingActions []string
}

type Session struct {
	ID           string
	UserID       string
	StartTime    time.Time
	LastActivity time.Time
	Context      SessionContext
}

// LastAssistantMessage returns the most recent assistant message, if any.
func (s *Session) LastAssistantMessage() (Message, bool) {
	for i := len(s.Context.History) - 1; i >= 0; i-- {
		if s.Context.History[i].Role == RoleAssistant {
			return s.Context.History[i], true
		}
	}
	return Message{}, false
}

// Append adds a message to the history and bumps LastActivity.
func (s *Session) Append(m Message) {
	s.Context.History = append(s.Context.History, m)
	if m.Timestamp.After(s.LastActivity) {
		s.LastActivity = m.Timestamp
	}
}
