// Package progress persists per-level unlock, completion and best score
// records. The game only talks to the Store interface, so the simulation can
// run against an in-memory store in tests.
package progress

import (
	"errors"
	"log"
)

// ErrNotInitialized is returned by stores whose backing storage could not be opened.
var ErrNotInitialized = errors.New("progress store not initialized")

// Record is the saved state of one level.
type Record struct {
	Unlocked  bool `json:"unlocked"`
	Completed bool `json:"completed"`
	BestScore int  `json:"bestScore"`
}

// Progress maps level numbers (from 1) to their records.
type Progress map[int]Record

// Store loads and saves progress.
type Store interface {
	Load() (Progress, error)
	Save(Progress) error
}

// Defaults returns fresh progress for levelCount levels with only the first
// one unlocked.
func Defaults(levelCount int) Progress {
	p := make(Progress, levelCount)
	for n := 1; n <= levelCount; n++ {
		p[n] = Record{Unlocked: n == 1}
	}
	return p
}

// IsUnlocked reports whether level may be selected.
func (p Progress) IsUnlocked(level int) bool {
	return p[level].Unlocked
}

// Complete marks level as completed, keeps the higher score and unlocks the
// following level if there is one.
func (p Progress) Complete(level, score, levelCount int) {
	r := p[level]
	r.Unlocked = true
	r.Completed = true
	if score > r.BestScore {
		r.BestScore = score
	}
	p[level] = r

	if next := level + 1; next <= levelCount {
		nr := p[next]
		nr.Unlocked = true
		p[next] = nr
	}
}

// normalize drops records for levels that no longer exist and fills in any
// missing ones. The first level is always unlocked.
func (p Progress) normalize(levelCount int) Progress {
	out := Defaults(levelCount)
	for n, r := range p {
		if n < 1 || n > levelCount {
			continue
		}
		if r.BestScore < 0 {
			r.BestScore = 0
		}
		out[n] = r
	}
	if levelCount >= 1 {
		first := out[1]
		first.Unlocked = true
		out[1] = first
	}
	return out
}

// Load reads progress from store. Any failure falls back to the defaults.
func Load(store Store, levelCount int) Progress {
	if store == nil {
		return Defaults(levelCount)
	}
	p, err := store.Load()
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return Defaults(levelCount)
	}
	return p.normalize(levelCount)
}

// Save writes progress to store. Failures are logged and returned, never fatal.
func Save(store Store, p Progress) error {
	if store == nil {
		return nil
	}
	if err := store.Save(p); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}
