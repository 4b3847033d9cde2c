// Package naming supplies unique member names for one generation pass.
package naming

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Supplier returns a name that is unique among the names it has returned.
// seed is the content the name stands for; suppliers may ignore it.
type Supplier interface {
	Name(prefix, seed string) string
}

// Strategy names a Supplier implementation.
type Strategy string

const (
	StrategyCounter Strategy = "counter"
	StrategyHash    Strategy = "hash"
	StrategyUUID    Strategy = "uuid"
)

// New returns a fresh supplier for strategy. Empty selects the counter.
func New(strategy Strategy) (Supplier, error) {
	switch Strategy(strings.ToLower(string(strategy))) {
	case "", StrategyCounter:
		return &Counter{}, nil
	case StrategyHash:
		return NewHash(), nil
	case StrategyUUID:
		return NewUUID(), nil
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown naming strategy %q", strategy),
			"use one of: counter, hash, uuid",
		)
	}
}

// Counter appends a monotonic sequence number.
type Counter struct {
	n int
}

func (c *Counter) Name(prefix, _ string) string {
	c.n++
	return fmt.Sprintf("%s_%d", prefix, c.n)
}

// Hash derives the suffix from the seed so that the same input produces the
// same name across runs. A repeated prefix and seed gets a numeric suffix.
type Hash struct {
	seen map[string]int
}

func NewHash() *Hash {
	return &Hash{seen: make(map[string]int)}
}

func (h *Hash) Name(prefix, seed string) string {
	sum := sha1.Sum([]byte(prefix + "\x00" + seed))
	name := prefix + "_" + hex.EncodeToString(sum[:6])
	n := h.seen[name]
	h.seen[name] = n + 1
	if n > 0 {
		return fmt.Sprintf("%s_%d", name, n+1)
	}
	return name
}

// UUID uses random UUIDs; output differs on every run.
type UUID struct {
	seen map[string]bool
}

func NewUUID() *UUID {
	return &UUID{seen: make(map[string]bool)}
}

func (u *UUID) Name(prefix, _ string) string {
	for {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")
		name := prefix + "_" + id[:12]
		if !u.seen[name] {
			u.seen[name] = true
			return name
		}
	}
}
