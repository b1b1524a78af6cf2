// Package save persists run records across sessions through gdata, which
// abstracts the platform's user-data directory. A nil manager degrades to
// memory-only operation so headless and test runs need no filesystem
package save

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SessionRecord is the persisted outcome of one run. The seed makes any
// recorded run replayable bit for bit
type SessionRecord struct {
	Seed        uint64 `yaml:"seed"`
	HighestWave int    `yaml:"highestWave"`
	TotalKills  int    `yaml:"totalKills"`
	PlayedAt    string `yaml:"playedAt"` // RFC 3339
}

const (
	sessionObject   = "sessions"
	bestProperty    = "best"
	lastProperty    = "last"
	maxRecordedWave = 1 << 20 // Sanity bound on loaded records
)

// Store loads and saves session records
type Store struct {
	manager *gdata.Manager
	best    *SessionRecord
	last    *SessionRecord
}

// NewStore opens the store over an optional gdata manager. Load failures
// are logged and treated as an empty history, never as a fatal error
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{manager: manager}
	if err := s.load(); err != nil {
		log.Printf("save: could not load session history: %v", err)
	}
	return s
}

func (s *Store) load() error {
	if s.manager == nil {
		return nil
	}

	var firstErr error
	if rec, err := s.loadRecord(bestProperty); err != nil {
		firstErr = err
	} else {
		s.best = rec
	}
	if rec, err := s.loadRecord(lastProperty); err != nil && firstErr == nil {
		firstErr = err
	} else if err == nil {
		s.last = rec
	}
	return firstErr
}

func (s *Store) loadRecord(prop string) (*SessionRecord, error) {
	if !s.manager.ObjectPropExists(sessionObject, prop) {
		return nil, nil
	}
	data, err := s.manager.LoadObjectProp(sessionObject, prop)
	if err != nil {
		return nil, fmt.Errorf("load %s record: %w", prop, err)
	}

	var rec SessionRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s record: %w", prop, err)
	}
	if rec.HighestWave < 0 || rec.HighestWave > maxRecordedWave {
		return nil, fmt.Errorf("decode %s record: implausible wave %d", prop, rec.HighestWave)
	}
	return &rec, nil
}

// Record stores the finished run as the latest session and promotes it to
// the best record when it reached a higher wave
func (s *Store) Record(seed uint64, highestWave, totalKills int) error {
	rec := &SessionRecord{
		Seed:        seed,
		HighestWave: highestWave,
		TotalKills:  totalKills,
		PlayedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	s.last = rec
	improved := s.best == nil || rec.HighestWave > s.best.HighestWave
	if improved {
		s.best = rec
	}

	if s.manager == nil {
		return nil
	}
	if err := s.saveRecord(lastProperty, rec); err != nil {
		return err
	}
	if improved {
		return s.saveRecord(bestProperty, rec)
	}
	return nil
}

func (s *Store) saveRecord(prop string, rec *SessionRecord) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", prop, err)
	}
	if err := s.manager.SaveObjectProp(sessionObject, prop, data); err != nil {
		return fmt.Errorf("save %s record: %w", prop, err)
	}
	return nil
}

// Best returns the highest-wave run on record, nil when none exists
func (s *Store) Best() *SessionRecord {
	return s.best
}

// Last returns the most recent run, nil when none exists
func (s *Store) Last() *SessionRecord {
	return s.last
}
