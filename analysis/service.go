// Package analysis drives the dashboard's core cycle: submit text,
// receive the classifier's verdict, remember it in the bounded history.
package analysis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client"
	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/history"
	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/store"
)

// ErrEmptyText rejects empty or whitespace-only submissions before any
// network call.
var ErrEmptyText = errors.New("enter some text to analyze")

// History summaries shown for the two verdict outcomes.
const (
	safeSummary    = "Content analysis complete - No concerning elements detected."
	flaggedSummary = "Content flagged for review - Potential policy violation detected."
)

// Service runs submissions and maintains the recent-verdict log.
type Service struct {
	api *client.Client
	log *history.Log
}

// NewService loads the persisted history and returns a ready Service.
func NewService(ctx context.Context, api *client.Client, st store.Store) *Service {
	return &Service{api: api, log: history.Load(ctx, st)}
}

// Submit classifies text. On success the verdict is mapped to a history
// entry and prepended (evicting beyond the cap); on failure the history
// is left unchanged and the error is returned for display.
func (s *Service) Submit(ctx context.Context, text string) (*client.AnalysisVerdict, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	verdict, err := s.api.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	entry := history.Entry{
		Status: history.StatusSafe,
		Time:   time.Now().Format("2006-01-02 15:04"),
		Text:   safeSummary,
	}
	if verdict.IsHateSpeech {
		entry.Status = history.StatusFlagged
		entry.Text = flaggedSummary
	}
	if err := s.log.Prepend(ctx, entry); err != nil {
		// The verdict is already shown; a failed snapshot write only
		// costs history across restarts.
		log.Warn().Err(err).Msg("history snapshot not persisted")
	}
	return verdict, nil
}

// Recent returns the bounded history, newest first.
func (s *Service) Recent() []history.Entry {
	return s.log.Entries()
}
