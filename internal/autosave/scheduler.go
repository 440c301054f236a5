// Package autosave decides when in-memory edits become a persisted draft,
// minimizing redundant writes while bounding staleness.
package autosave

import (
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/pressmill/console/internal/draftstore"
	"github.com/pressmill/console/internal/model"
	"github.com/pressmill/console/internal/status"
	"github.com/pressmill/console/internal/util"
)

// DefaultDebounce is the trailing-edge debounce window for auto-saves.
const DefaultDebounce = 3 * time.Second

var schedLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	schedLogger = l
}

// snapshot covers exactly the fields whose changes trigger an auto-save.
type snapshot struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	HeroImage  string `json:"heroImage"`
	CategoryID string `json:"categoryId"`
	Excerpt    string `json:"excerpt"`
}

func snapshotHash(d model.Draft) string {
	b, _ := json.Marshal(snapshot{
		Title:      d.Title,
		Content:    d.Content,
		HeroImage:  d.HeroImage,
		CategoryID: d.CategoryID,
		Excerpt:    d.Excerpt,
	})
	return util.ContentHash(b)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Session coordinates debounced persistence for one draft being edited.
// Sessions are not shared across editors; each editor owns exactly one.
type Session struct {
	store       draftstore.Store
	broadcaster *status.Broadcaster
	owner       model.UserID
	debounce    time.Duration

	// saveMu serializes persist attempts so two saves for the same draft
	// never overlap.
	saveMu sync.Mutex

	mu           sync.Mutex
	draft        model.Draft
	timer        *time.Timer
	lastSnapshot string
	lastSaved    time.Time
	saving       bool
	enabled      bool
	closed       bool
}

func NewSession(store draftstore.Store, owner model.UserID, debounce time.Duration) *Session {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Session{
		store:    store,
		owner:    owner,
		debounce: debounce,
		enabled:  true,
	}
}

// SetBroadcaster wires an optional status broadcaster for save events.
func (s *Session) SetBroadcaster(b *status.Broadcaster) {
	s.broadcaster = b
}

// Update records new values of the watched fields and (re)arms the debounce
// timer. Only one timer is ever pending; a new change replaces it.
func (s *Session) Update(draft model.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	draft.Owner = s.owner
	s.draft = draft

	if !s.enabled {
		// Auto-save off: edits accumulate until a forced save.
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		if err := s.flush(false); err != nil {
			schedLogger.Error().Err(err).Msg("Auto-save failed, will retry on next trigger")
		}
	})
}

// ManualSave persists immediately, bypassing the debounce timer and the
// auto-save-enabled flag. The empty-draft guard still applies.
func (s *Session) ManualSave() error {
	return s.flush(true)
}

// flush is the single persistence path. forced skips the unchanged-snapshot
// and enabled checks; nothing skips the empty-draft guard.
func (s *Session) flush(forced bool) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	draft := s.draft
	hash := snapshotHash(draft)

	// Never persist an empty draft, forced or not.
	if isBlank(draft.Title) && isBlank(draft.Content) {
		s.mu.Unlock()
		return nil
	}
	if !forced && (hash == s.lastSnapshot || !s.enabled) {
		s.mu.Unlock()
		return nil
	}

	s.saving = true
	last := s.lastSaved
	s.mu.Unlock()

	s.notify(draft.ID, true, last)

	saved, err := s.store.SaveDraft(draft)

	s.mu.Lock()
	if s.closed {
		// The session tore down while the write was in flight. The write
		// itself is allowed to complete; its result no longer matters.
		s.mu.Unlock()
		return nil
	}
	s.saving = false
	if err != nil {
		s.mu.Unlock()
		schedLogger.Error().Err(err).Str("draft_id", string(draft.ID)).Msg("Error persisting draft")
		s.notify(draft.ID, false, time.Time{})
		return err
	}

	s.draft.ID = saved.ID
	s.lastSnapshot = hash
	s.lastSaved = saved.LastSaved
	s.mu.Unlock()

	s.notify(saved.ID, false, saved.LastSaved)
	return nil
}

// HandleConnectivity forces a save on either transition: going offline
// captures state before the disconnect, coming back online flushes edits
// made while away.
func (s *Session) HandleConnectivity(st model.ConnectivityStatus) {
	schedLogger.Debug().Bool("online", st.Online).Msg("Connectivity transition, forcing save")
	if err := s.flush(true); err != nil {
		schedLogger.Error().Err(err).Msg("Forced save on connectivity transition failed")
	}
}

func (s *Session) notify(id model.DraftID, saving bool, lastSaved time.Time) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.Broadcast(status.Event{
		Kind:      status.KindSave,
		DraftID:   id,
		Saving:    saving,
		LastSaved: lastSaved,
	})
}

// SetAutoSave toggles debounced saving. Forced saves work either way.
func (s *Session) SetAutoSave(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
	if !enabled && s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) AutoSaveEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

func (s *Session) IsSaving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// LastSaved reports when this session last persisted, if it ever has.
func (s *Session) LastSaved() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved, !s.lastSaved.IsZero()
}

// LoadDraft reads a draft from the store and seeds the session with it,
// so an immediately following Update with identical content is a no-op.
func (s *Session) LoadDraft(id model.DraftID) (model.Draft, error) {
	draft, err := s.store.GetDraft(id)
	if err != nil {
		return model.Draft{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.draft = draft
		s.lastSnapshot = snapshotHash(draft)
		s.lastSaved = draft.LastSaved
	}
	return draft, nil
}

// DeleteDraft removes a draft, typically after a successful remote publish.
func (s *Session) DeleteDraft(id model.DraftID) error {
	return s.store.DeleteDraft(id)
}

// Drafts lists local drafts scoped to the session's owner.
func (s *Session) Drafts() ([]model.Draft, error) {
	return s.store.GetAllDrafts(s.owner)
}

// Close cancels any pending debounce timer and detaches the session. An
// in-flight write may still complete; its result is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
