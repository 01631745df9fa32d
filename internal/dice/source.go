package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Sides is the number of faces on every die this package rolls.
const Sides = 6

// Source produces independent, uniformly distributed die faces in [1, Sides].
type Source interface {
	Roll() int
}

// RollN draws n faces from src in order.
func RollN(src Source, n int) []int {
	faces := make([]int, n)
	for i := range faces {
		faces[i] = src.Roll()
	}
	return faces
}

// Rand is a Source backed by a seeded math/rand generator.
//
// Rand is not safe for concurrent use; each search owns its own Rand.
type Rand struct {
	seed int64
	rng  *rand.Rand
	pos  int64
}

// NewRand returns a Source seeded with seed. The same seed always yields the
// same sequence of faces.
func NewRand(seed int64) *Rand {
	return &Rand{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Roll returns the next face in [1, Sides].
func (r *Rand) Roll() int {
	r.pos++
	return r.rng.Intn(Sides) + 1
}

// Seed returns the seed the source was created with.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Position returns the number of faces drawn so far.
func (r *Rand) Position() int64 {
	return r.pos
}

// NewSeed generates a seed from crypto/rand for callers that did not ask for
// a reproducible run.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Scripted replays a fixed sequence of faces. It exists so tests and scenario
// files can pin every die.
//
// Thread-safety: Scripted is safe for concurrent use via internal mutex.
type Scripted struct {
	mu    sync.Mutex
	faces []int
	idx   int
}

// NewScripted creates a source that returns faces in order.
//
// Example:
//
//	src := NewScripted(6, 6, 6, 1)
//	src.Roll() // 6
//	src.Roll() // 6
//
// Roll panics once every face has been consumed. A script that runs dry means
// the caller drew more dice than it planned for, which is a test bug.
func NewScripted(faces ...int) *Scripted {
	return &Scripted{faces: faces}
}

// Roll returns the next scripted face.
func (s *Scripted) Roll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idx >= len(s.faces) {
		panic(ErrScriptExhausted)
	}
	face := s.faces[s.idx]
	s.idx++
	return face
}

// Remaining returns how many scripted faces have not been drawn yet.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.faces) - s.idx
}
