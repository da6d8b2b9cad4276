package ident

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// InstanceIDs hands out ULIDs that tag each registry instance in logs and in
// the X-Registry-Instance response header. IDs from one generator sort in
// creation order.
type InstanceIDs struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

func NewInstanceIDs() *InstanceIDs {
	return &InstanceIDs{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

func (g *InstanceIDs) Next() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(g.now().UTC()), g.entropy)
	if err != nil {
		return "", fmt.Errorf("generate instance id: %w", err)
	}
	return id.String(), nil
}

var defaultIDs = NewInstanceIDs()

func NewInstanceID() (string, error) {
	return defaultIDs.Next()
}
