// Package history keeps the bounded log of recent analysis verdicts:
// fixed capacity, newest first, oldest evicted on overflow. The whole
// log is persisted as one snapshot after every change.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/store"
)

// Capacity is the maximum number of entries retained. Eviction is FIFO
// by insertion order, not by timestamp.
const Capacity = 5

// historyKey is the fixed snapshot name for the log.
const historyKey = "analysisHistory"

// Entry statuses.
const (
	StatusSafe    = "safe"
	StatusFlagged = "flagged"
)

// Entry is one remembered verdict.
type Entry struct {
	Status string `json:"status"` // StatusSafe or StatusFlagged
	Time   string `json:"time"`   // display label, not used for ordering
	Text   string `json:"text"`   // one-line summary
}

// Log is the bounded recent-verdict list. Entries are ordered newest
// first. Safe for concurrent use.
type Log struct {
	mu      sync.Mutex
	store   store.Store
	entries []Entry
}

// Load reads the persisted snapshot into a new Log. A missing or
// malformed snapshot yields an empty log; the screen never fails to
// mount because of bad history data.
func Load(ctx context.Context, st store.Store) *Log {
	l := &Log{store: st}
	raw, err := st.Load(ctx, historyKey)
	if errors.Is(err, store.ErrNotFound) {
		return l
	}
	if err != nil {
		log.Debug().Err(err).Msg("history load failed, starting empty")
		return l
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Debug().Err(err).Msg("discarding malformed history snapshot")
		return l
	}
	if len(entries) > Capacity {
		entries = entries[:Capacity]
	}
	l.entries = entries
	return l
}

// Prepend inserts e at the front, evicts beyond Capacity, and writes the
// full snapshot back. The in-memory log is updated even when the write
// fails; the returned error is the persistence outcome.
func (l *Log) Prepend(ctx context.Context, e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	updated := make([]Entry, 0, Capacity)
	updated = append(updated, e)
	keep := l.entries
	if len(keep) > Capacity-1 {
		keep = keep[:Capacity-1]
	}
	updated = append(updated, keep...)
	l.entries = updated

	raw, err := json.Marshal(l.entries)
	if err != nil {
		return err
	}
	return l.store.Save(ctx, historyKey, raw)
}

// Entries returns a copy of the current log, newest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the current entry count.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
