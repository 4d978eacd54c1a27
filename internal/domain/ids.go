package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces opaque unique identifiers. Injected so engines stay
// deterministic under test.
type IDGenerator interface {
	NewID() string
}

// Clock abstracts wall-clock time for the same reason.
type Clock interface {
	Now() time.Time
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.New().String() }

type UTCClock struct{}

func (UTCClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns T. Test helper.
type FixedClock struct{ T time.Time }

func (c FixedClock) Now() time.Time { return c.T }

// SequenceIDs yields "prefix-1", "prefix-2", ... Test helper.
type SequenceIDs struct {
	Prefix string
	n      int
}

func (g *SequenceIDs) NewID() string {
	g.n++
	return g.Prefix + "-" + strconv.Itoa(g.n)
}
