package draftstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/pressmill/console/internal/model"
)

// NoopStore stands in when no storage backend is available. Writes are
// accepted and discarded, reads come back empty. Callers see a working
// store that never remembers anything.
type NoopStore struct{}

func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (n *NoopStore) SaveDraft(draft model.Draft) (model.Draft, error) {
	if draft.ID == model.NewDraftID {
		draft.ID = model.DraftID(uuid.New().String())
	}
	draft.LastSaved = time.Now().UTC().Truncate(time.Millisecond)
	return draft, nil
}

func (n *NoopStore) GetDraft(id model.DraftID) (model.Draft, error) {
	return model.Draft{}, ErrNotFound
}

func (n *NoopStore) GetAllDrafts(owner model.UserID) ([]model.Draft, error) {
	return []model.Draft{}, nil
}

func (n *NoopStore) DeleteDraft(id model.DraftID) error {
	return nil
}

func (n *NoopStore) ClearOldDrafts(maxAge time.Duration) (int, error) {
	return 0, nil
}

func (n *NoopStore) SaveConnectivityStatus(status model.ConnectivityStatus) error {
	return nil
}

func (n *NoopStore) GetConnectivityStatus() (model.ConnectivityStatus, error) {
	return model.ConnectivityStatus{}, ErrNotFound
}

func (n *NoopStore) Close() error {
	return nil
}
