// Package draftstore provides durable, keyed local storage for in-progress
// editor content and the connectivity record.
package draftstore

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/pressmill/console/internal/model"
)

// ErrNotFound is returned when no draft exists for the requested ID. An
// unavailable backend never errors; it degrades to empty results instead.
var ErrNotFound = errors.New("draftstore: not found")

// DefaultMaxAge is the retention cutoff used when no explicit age is given.
const DefaultMaxAge = 7 * 24 * time.Hour

var storeLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	storeLogger = l
}

type Store interface {
	// SaveDraft upserts a draft by ID, stamping LastSaved with the current
	// time and minting an ID when given the new-draft sentinel. The stored
	// draft is returned. Last write wins for concurrent saves of one ID.
	SaveDraft(draft model.Draft) (model.Draft, error)

	// GetDraft returns the draft for id, or ErrNotFound.
	GetDraft(id model.DraftID) (model.Draft, error)

	// GetAllDrafts returns drafts ordered by LastSaved descending,
	// optionally filtered to one owner (empty owner returns everything).
	GetAllDrafts(owner model.UserID) ([]model.Draft, error)

	// DeleteDraft removes the draft for id. Absent drafts are not an error.
	DeleteDraft(id model.DraftID) error

	// ClearOldDrafts deletes every draft with LastSaved at or before
	// now-maxAge and reports how many were removed. Non-positive maxAge
	// falls back to DefaultMaxAge.
	ClearOldDrafts(maxAge time.Duration) (int, error)

	SaveConnectivityStatus(status model.ConnectivityStatus) error
	GetConnectivityStatus() (model.ConnectivityStatus, error)

	Close() error
}
