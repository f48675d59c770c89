package analysis

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client"
	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/history"
	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/store"
)

func newService(t *testing.T, handler http.HandlerFunc) (*Service, store.Store, *int32) {
	t.Helper()

	var hits int32
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(hs.Close)

	api, err := client.New(hs.URL)
	require.NoError(t, err)
	st, err := store.New(store.DriverMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return NewService(context.Background(), api, st), st, &hits
}

func safeHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(`{"is_hate_speech":false,"confidence":0.9,"categories":[]}`))
}

func flaggedHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(`{"is_hate_speech":true,"confidence":0.8,"categories":["harassment"]}`))
}

func TestSubmit_SafeVerdictPrependsEntry(t *testing.T) {
	svc, _, _ := newService(t, safeHandler)

	v, err := svc.Submit(context.Background(), "hello world")
	require.NoError(t, err)
	assert.False(t, v.IsHateSpeech)
	assert.Equal(t, 0.9, v.Confidence)

	entries := svc.Recent()
	require.Len(t, entries, 1)
	assert.Equal(t, history.StatusSafe, entries[0].Status)
	assert.Contains(t, entries[0].Text, "No concerning elements")
}

func TestSubmit_FlaggedVerdict(t *testing.T) {
	svc, _, _ := newService(t, flaggedHandler)

	v, err := svc.Submit(context.Background(), "nasty text")
	require.NoError(t, err)
	assert.True(t, v.IsHateSpeech)

	entries := svc.Recent()
	require.Len(t, entries, 1)
	assert.Equal(t, history.StatusFlagged, entries[0].Status)
	assert.Contains(t, entries[0].Text, "flagged for review")
}

func TestSubmit_WhitespaceOnlyIsLocalNoop(t *testing.T) {
	svc, _, hits := newService(t, safeHandler)

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := svc.Submit(context.Background(), text)
		assert.ErrorIs(t, err, ErrEmptyText, "%q", text)
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
	assert.Empty(t, svc.Recent())
}

func TestSubmit_FailureLeavesHistoryUnchanged(t *testing.T) {
	var fail atomic.Bool
	svc, _, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail":"model unavailable"}`))
			return
		}
		safeHandler(w, r)
	})

	_, err := svc.Submit(context.Background(), "first")
	require.NoError(t, err)

	fail.Store(true)
	_, err = svc.Submit(context.Background(), "second")
	require.Error(t, err)
	assert.Equal(t, "model unavailable", client.ErrorMessage(err))

	entries := svc.Recent()
	require.Len(t, entries, 1, "failed submission must not append history")
}

func TestSubmit_HistoryBoundedAtFive(t *testing.T) {
	svc, st, _ := newService(t, safeHandler)

	for i := 0; i < 6; i++ {
		_, err := svc.Submit(context.Background(), fmt.Sprintf("submission %d", i))
		require.NoError(t, err)
	}
	assert.Len(t, svc.Recent(), 5)

	// the persisted snapshot respects the cap too
	reloaded := history.Load(context.Background(), st)
	assert.Equal(t, 5, reloaded.Len())
}
