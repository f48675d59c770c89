package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/store"
)

// sessionKey is the fixed snapshot name for the current session.
const sessionKey = "user"

// Adapter mirrors the current Session to a snapshot store. It is purely
// mechanical: no merge logic, last-write-wins between concurrent
// processes.
type Adapter struct {
	store store.Store
}

// NewAdapter wraps st for session persistence.
func NewAdapter(st store.Store) *Adapter {
	return &Adapter{store: st}
}

// Load returns the persisted session, or nil when none exists. A corrupt
// record is cleared and reported as absent rather than failing hydration.
func (a *Adapter) Load(ctx context.Context) (*Session, error) {
	raw, err := a.store.Load(ctx, sessionKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		log.Debug().Err(err).Msg("discarding corrupt session record")
		_ = a.store.Delete(ctx, sessionKey)
		return nil, nil
	}
	return &s, nil
}

// Save persists s, replacing any previous session.
func (a *Adapter) Save(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return a.store.Save(ctx, sessionKey, raw)
}

// Clear removes the persisted session. Clearing an absent session is not
// an error.
func (a *Adapter) Clear(ctx context.Context) error {
	return a.store.Delete(ctx, sessionKey)
}
