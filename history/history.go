// Package history keeps a bounded, most-recent-first log of successful
// extractions, persisted wholesale through a small key-value store.
package history

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gosom/google-maps-coordinates/extractor"
	"github.com/gosom/google-maps-coordinates/input"
)

// Key is the key-value store key holding the serialized history list.
const Key = "coordinatesHistory"

// MaxEntries caps the log; recording beyond it discards the oldest entry.
const MaxEntries = 10

// Entry is one successful extraction. Entries are immutable once created.
type Entry struct {
	ID          string                `json:"id"`
	Input       string                `json:"input"`
	Kind        input.Kind            `json:"kind"`
	Coordinates extractor.Coordinates `json:"coordinates"`
	PlaceName   string                `json:"placeName,omitempty"`
	CapturedAt  time.Time             `json:"capturedAt"`
}

// NewEntry stamps an entry with the capture time and an ID derived from it.
func NewEntry(raw string, kind input.Kind, coords extractor.Coordinates, placeName string) Entry {
	now := time.Now().UTC()

	return Entry{
		ID:          strconv.FormatInt(now.UnixNano(), 10),
		Input:       raw,
		Kind:        kind,
		Coordinates: coords,
		PlaceName:   placeName,
		CapturedAt:  now,
	}
}

// KV is the persistence boundary. Get reports absence via the boolean, not
// an error.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Store owns the in-memory list and mirrors every mutation to the KV.
type Store struct {
	mu      sync.RWMutex
	kv      KV
	entries []Entry
	logger  *zap.Logger
}

// NewStore loads any persisted history. Malformed or unreadable persisted
// data is logged and treated as an empty log.
func NewStore(ctx context.Context, kv KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	ans := Store{
		kv:     kv,
		logger: logger,
	}

	ans.load(ctx)

	return &ans
}

func (s *Store) load(ctx context.Context) {
	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		s.logger.Warn("failed to read persisted history", zap.Error(err))

		return
	}

	if !ok {
		return
	}

	var entries []Entry

	if err := json.Unmarshal(raw, &entries); err != nil {
		s.logger.Warn("discarding malformed persisted history", zap.Error(err))

		return
	}

	s.entries = entries
}

// Record prepends entry, truncates to MaxEntries and persists the full list.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]Entry, 0, len(s.entries)+1)
	entries = append(entries, entry)
	entries = append(entries, s.entries...)

	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	if err := s.kv.Set(ctx, Key, raw); err != nil {
		return err
	}

	s.entries = entries

	return nil
}

// Clear empties the log and removes the persisted copy.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Remove(ctx, Key); err != nil {
		return err
	}

	s.entries = nil

	return nil
}

// Entries returns a most-recent-first snapshot.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ans := make([]Entry, len(s.entries))
	copy(ans, s.entries)

	return ans
}
