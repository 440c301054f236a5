package autosave

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pressmill/console/internal/connectivity"
	"github.com/pressmill/console/internal/db"
	"github.com/pressmill/console/internal/draftstore"
	"github.com/pressmill/console/internal/model"
	"github.com/pressmill/console/internal/status"
)

// countingStore wraps a real store and counts persist attempts, optionally
// failing the next one.
type countingStore struct {
	draftstore.Store

	mu       sync.Mutex
	saves    int
	failNext bool
}

func (c *countingStore) SaveDraft(d model.Draft) (model.Draft, error) {
	c.mu.Lock()
	c.saves++
	fail := c.failNext
	c.failNext = false
	c.mu.Unlock()

	if fail {
		return model.Draft{}, errors.New("simulated storage failure")
	}
	return c.Store.SaveDraft(d)
}

func (c *countingStore) saveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

func setupSession(t *testing.T, debounce time.Duration) (*Session, *countingStore) {
	t.Helper()

	database := db.NewSQLite(":memory:")
	if err := database.InitDB(); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store := &countingStore{Store: draftstore.NewSQLiteStore(database)}
	session := NewSession(store, "editor-1", debounce)
	t.Cleanup(session.Close)

	return session, store
}

func TestDebounceIdempotence(t *testing.T) {
	session, store := setupSession(t, 50*time.Millisecond)

	// Ten rapid changes inside one debounce window.
	for i := 0; i < 10; i++ {
		session.Update(model.Draft{ID: "d1", Title: "Title", Content: string(rune('a' + i))})
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)

	if got := store.saveCount(); got != 1 {
		t.Errorf("Expected exactly one persisted write, got %d", got)
	}

	draft, err := store.GetDraft("d1")
	if err != nil {
		t.Fatalf("GetDraft failed: %v", err)
	}
	if draft.Content != "j" {
		t.Errorf("Expected the last change's content, got %q", draft.Content)
	}
}

func TestUnchangedSnapshotSkipped(t *testing.T) {
	session, store := setupSession(t, 20*time.Millisecond)

	fields := model.Draft{ID: "d1", Title: "Title", Content: "Body"}
	session.Update(fields)
	time.Sleep(100 * time.Millisecond)

	if got := store.saveCount(); got != 1 {
		t.Fatalf("Expected one write, got %d", got)
	}

	// Identical snapshot: the trigger fires but the save is elided.
	session.Update(fields)
	time.Sleep(100 * time.Millisecond)

	if got := store.saveCount(); got != 1 {
		t.Errorf("Expected unchanged content to be skipped, got %d writes", got)
	}

	t.Run("Forced save persists anyway", func(t *testing.T) {
		if err := session.ManualSave(); err != nil {
			t.Fatalf("ManualSave failed: %v", err)
		}
		if got := store.saveCount(); got != 2 {
			t.Errorf("Expected forced save to write, got %d writes", got)
		}
	})
}

func TestEmptyDraftSuppression(t *testing.T) {
	session, store := setupSession(t, 20*time.Millisecond)

	session.Update(model.Draft{ID: "d1", Title: "", Content: "   "})
	time.Sleep(100 * time.Millisecond)

	if got := store.saveCount(); got != 0 {
		t.Errorf("Expected no write for an empty draft, got %d", got)
	}

	t.Run("Forced save respects the guard too", func(t *testing.T) {
		if err := session.ManualSave(); err != nil {
			t.Fatalf("ManualSave failed: %v", err)
		}
		if got := store.saveCount(); got != 0 {
			t.Errorf("Expected forced save to suppress an empty draft, got %d writes", got)
		}
	})

	t.Run("A title alone is enough", func(t *testing.T) {
		session.Update(model.Draft{ID: "d1", Title: "Only a title"})
		time.Sleep(100 * time.Millisecond)
		if got := store.saveCount(); got != 1 {
			t.Errorf("Expected one write, got %d", got)
		}
	})
}

func TestAutoSaveToggle(t *testing.T) {
	session, store := setupSession(t, 20*time.Millisecond)

	session.SetAutoSave(false)
	if session.AutoSaveEnabled() {
		t.Fatal("Expected auto-save disabled")
	}

	session.Update(model.Draft{ID: "d1", Title: "T", Content: "C"})
	time.Sleep(100 * time.Millisecond)

	if got := store.saveCount(); got != 0 {
		t.Errorf("Expected no debounced write while disabled, got %d", got)
	}

	// Forced saves bypass the toggle.
	if err := session.ManualSave(); err != nil {
		t.Fatalf("ManualSave failed: %v", err)
	}
	if got := store.saveCount(); got != 1 {
		t.Errorf("Expected forced save to persist, got %d writes", got)
	}
}

func TestConnectivityFlap(t *testing.T) {
	session, store := setupSession(t, time.Hour) // debounce never fires here

	database := db.NewSQLite(":memory:")
	if err := database.InitDB(); err != nil {
		t.Fatalf("Failed to initialize monitor database: %v", err)
	}
	defer database.Close()

	signal := connectivity.NewManualSignal(true)
	monitor := connectivity.NewMonitor(draftstore.NewSQLiteStore(database), signal, time.Hour)
	monitor.OnChange(session.HandleConnectivity)
	monitor.Start()
	defer monitor.Stop()

	// Edits are pending when the network flaps.
	session.Update(model.Draft{ID: "d1", Title: "T", Content: "C"})

	signal.Set(false)
	signal.Set(true)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) && store.saveCount() < 2 {
		time.Sleep(5 * time.Millisecond)
	}

	if got := store.saveCount(); got != 2 {
		t.Errorf("Expected one forced save per transition, got %d", got)
	}
	if !monitor.Status().Online {
		t.Error("Expected online after the flap")
	}
}

func TestFailedSaveRetriesOnNextTrigger(t *testing.T) {
	session, store := setupSession(t, 20*time.Millisecond)

	store.failNext = true
	session.Update(model.Draft{ID: "d1", Title: "T", Content: "C"})
	time.Sleep(100 * time.Millisecond)

	if got := store.saveCount(); got != 1 {
		t.Fatalf("Expected one attempt, got %d", got)
	}
	if _, ok := session.LastSaved(); ok {
		t.Error("Expected no last-saved timestamp after a failure")
	}
	if session.IsSaving() {
		t.Error("Expected saving flag cleared after a failure")
	}

	// The next trigger retries implicitly; no dedicated retry loop exists.
	if err := session.ManualSave(); err != nil {
		t.Fatalf("Retry via forced save failed: %v", err)
	}
	if got := store.saveCount(); got != 2 {
		t.Errorf("Expected a second attempt, got %d", got)
	}
	if _, ok := session.LastSaved(); !ok {
		t.Error("Expected a last-saved timestamp after success")
	}
}

func TestCloseCancelsPendingSave(t *testing.T) {
	session, store := setupSession(t, 50*time.Millisecond)

	session.Update(model.Draft{ID: "d1", Title: "T", Content: "C"})
	session.Close()

	time.Sleep(150 * time.Millisecond)

	if got := store.saveCount(); got != 0 {
		t.Errorf("Expected no write after Close, got %d", got)
	}

	t.Run("Updates after Close are ignored", func(t *testing.T) {
		session.Update(model.Draft{ID: "d1", Title: "More", Content: "Edits"})
		time.Sleep(150 * time.Millisecond)
		if got := store.saveCount(); got != 0 {
			t.Errorf("Expected no write, got %d", got)
		}
	})

	t.Run("ManualSave after Close is a no-op", func(t *testing.T) {
		if err := session.ManualSave(); err != nil {
			t.Errorf("Expected nil, got %v", err)
		}
		if got := store.saveCount(); got != 0 {
			t.Errorf("Expected no write, got %d", got)
		}
	})
}

func TestLoadDraftSeedsSnapshot(t *testing.T) {
	session, store := setupSession(t, 20*time.Millisecond)

	saved, err := store.SaveDraft(model.Draft{ID: "d1", Title: "T", Content: "C", Owner: "editor-1"})
	if err != nil {
		t.Fatalf("SaveDraft failed: %v", err)
	}
	store.mu.Lock()
	store.saves = 0
	store.mu.Unlock()

	loaded, err := session.LoadDraft(saved.ID)
	if err != nil {
		t.Fatalf("LoadDraft failed: %v", err)
	}
	if loaded.Title != "T" {
		t.Errorf("Unexpected draft: %+v", loaded)
	}
	if last, ok := session.LastSaved(); !ok || !last.Equal(saved.LastSaved) {
		t.Errorf("Expected session to adopt the stored timestamp, got %v (ok=%v)", last, ok)
	}

	// Re-entering identical content must not write.
	session.Update(loaded)
	time.Sleep(100 * time.Millisecond)
	if got := store.saveCount(); got != 0 {
		t.Errorf("Expected no write for unchanged loaded draft, got %d", got)
	}
}

func TestDraftsScopedToOwner(t *testing.T) {
	session, store := setupSession(t, time.Hour)

	if _, err := store.Store.SaveDraft(model.Draft{ID: "mine", Title: "t", Content: "c", Owner: "editor-1"}); err != nil {
		t.Fatalf("SaveDraft failed: %v", err)
	}
	if _, err := store.Store.SaveDraft(model.Draft{ID: "theirs", Title: "t", Content: "c", Owner: "someone-else"}); err != nil {
		t.Fatalf("SaveDraft failed: %v", err)
	}

	drafts, err := session.Drafts()
	if err != nil {
		t.Fatalf("Drafts failed: %v", err)
	}
	if len(drafts) != 1 || drafts[0].ID != "mine" {
		t.Errorf("Expected only the session owner's drafts, got %+v", drafts)
	}

	t.Run("DeleteDraft passes through", func(t *testing.T) {
		if err := session.DeleteDraft("mine"); err != nil {
			t.Fatalf("DeleteDraft failed: %v", err)
		}
		if _, err := store.GetDraft("mine"); !errors.Is(err, draftstore.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestSaveEventsBroadcast(t *testing.T) {
	session, _ := setupSession(t, time.Hour)

	broadcaster := status.NewBroadcaster()
	client := &status.Client{Events: make(chan status.Event, 8)}
	broadcaster.Add(client)
	session.SetBroadcaster(broadcaster)

	session.Update(model.Draft{ID: "d1", Title: "T", Content: "C"})
	if err := session.ManualSave(); err != nil {
		t.Fatalf("ManualSave failed: %v", err)
	}

	first := <-client.Events
	if first.Kind != status.KindSave || !first.Saving {
		t.Errorf("Expected a saving=true event first, got %+v", first)
	}
	second := <-client.Events
	if second.Saving {
		t.Errorf("Expected a saving=false event second, got %+v", second)
	}
	if second.LastSaved.IsZero() {
		t.Error("Expected the completion event to carry the save timestamp")
	}
}

func TestDefaultDebounce(t *testing.T) {
	s := NewSession(draftstore.NewNoopStore(), "", 0)
	defer s.Close()
	if s.debounce != DefaultDebounce {
		t.Errorf("Expected default debounce %v, got %v", DefaultDebounce, s.debounce)
	}
}
