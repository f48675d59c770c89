// Package auth is the single authority for "who is logged in". The
// controller owns the in-memory session, keeps the persisted mirror in
// step, and is injected into whatever needs it; there is no ambient
// singleton.
package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client"
	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/session"
	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/validate"
)

// ErrBusy is returned when an auth operation is already in flight. It
// mirrors the UI's disabled-controls loading flag and does not gate
// correctness.
var ErrBusy = errors.New("another authentication request is in flight")

// ErrPasswordRequired rejects empty login/registration passwords.
var ErrPasswordRequired = errors.New("password is required")

// Controller holds the current session (or none). Two states:
// anonymous and authenticated. Login success is the only transition in;
// logout the only transition out. Registration never authenticates.
type Controller struct {
	api      *client.Client
	sessions *session.Adapter

	mu      sync.Mutex
	current *session.Session
	busy    bool
}

// NewController hydrates the controller from the session adapter so a
// restart preserves login. Hydration never touches the network; a store
// failure just starts anonymous.
func NewController(ctx context.Context, api *client.Client, sessions *session.Adapter) *Controller {
	c := &Controller{api: api, sessions: sessions}
	s, err := sessions.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session hydration failed, starting anonymous")
		return c
	}
	c.current = s
	return c
}

// Login validates locally, calls the backend, and on success installs a
// new session in the store and in memory together. On failure the state
// is left untouched.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	if err := validate.Email(email); err != nil {
		return err
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	res, err := c.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s := session.New(email, session.MethodEmail, res.Token)
	if err := c.sessions.Save(ctx, s); err != nil {
		// Keep the login usable for this run even if the mirror failed.
		log.Warn().Err(err).Msg("session not persisted; login will not survive restart")
	}
	c.mu.Lock()
	c.current = s
	c.mu.Unlock()
	return nil
}

// Register validates locally (shape plus domain allow-list) and creates
// the account. Session state never changes; the caller logs in
// afterwards. Returns the backend's acknowledgment message.
func (c *Controller) Register(ctx context.Context, email, password string) (string, error) {
	if err := validate.RegistrationEmail(email); err != nil {
		return "", err
	}
	if password == "" {
		return "", ErrPasswordRequired
	}
	if err := c.begin(); err != nil {
		return "", err
	}
	defer c.end()

	res, err := c.api.Register(ctx, email, password)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// LoginWithPhone completes the OTP flow: verifies the provider ID token
// and on success installs a phone-method session.
func (c *Controller) LoginWithPhone(ctx context.Context, phone, idToken string) error {
	if err := validate.Phone(phone); err != nil {
		return err
	}
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if _, err := c.api.VerifyOTP(ctx, phone, idToken); err != nil {
		return err
	}

	s := session.New(phone, session.MethodPhone, "")
	if err := c.sessions.Save(ctx, s); err != nil {
		log.Warn().Err(err).Msg("session not persisted; login will not survive restart")
	}
	c.mu.Lock()
	c.current = s
	c.mu.Unlock()
	return nil
}

// Logout clears the in-memory state and the persisted session
// unconditionally. It cannot fail; store errors are logged and dropped.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
	if err := c.sessions.Clear(ctx); err != nil {
		log.Warn().Err(err).Msg("persisted session not cleared")
	}
}

// Current returns the live session, or nil when anonymous. The returned
// value is a copy; mutating it does not affect the controller.
func (c *Controller) Current() *session.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	s := *c.current
	return &s
}

// Authenticated reports whether a session is live.
func (c *Controller) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

func (c *Controller) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return ErrBusy
	}
	c.busy = true
	return nil
}

func (c *Controller) end() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}
