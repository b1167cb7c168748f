// Package ident provides unique identity generation for session-owned
// entities. The generator is injected rather than called through a
// package global so tests can pin ids deterministically.
package ident

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique string identities
type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

// NewUUIDGenerator creates a generator backed by random UUIDs
func NewUUIDGenerator() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// Sequential is a deterministic generator for tests: id-1, id-2, ...
type Sequential struct {
	n atomic.Int64
}

func (s *Sequential) NewID() string {
	return fmt.Sprintf("id-%d", s.n.Add(1))
}
