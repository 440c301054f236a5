// Package model defines core data structures and types for the console.
package model

import "time"

type DraftID string

type UserID string

// NewDraftID is the sentinel for a draft that has not been assigned a
// stable identifier yet. The store mints a real ID on first save.
const NewDraftID DraftID = ""

// DraftStatus enumerates the publication states a draft can carry.
type DraftStatus string

const (
	StatusDraft     DraftStatus = "draft"
	StatusPublished DraftStatus = "published"
	StatusArchived  DraftStatus = "archived"
	StatusScheduled DraftStatus = "scheduled"
)

func (s DraftStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived, StatusScheduled:
		return true
	}
	return false
}

// Draft is a locally persisted snapshot of an in-progress post or page.
// Content is an opaque rich-text payload; the store never inspects it.
type Draft struct {
	ID DraftID `json:"id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	HeroImage  string `json:"heroImage,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
	Excerpt    string `json:"excerpt,omitempty"`

	Status DraftStatus `json:"status"`

	// LastSaved is stamped by the store on every write. Caller-supplied
	// values are ignored so recency stays monotonic per ID.
	LastSaved time.Time `json:"lastSaved"`

	// Optional owner, used to scope draft listings per user.
	Owner UserID `json:"userId,omitempty"`
}

// ConnectivityStatus is the single persisted reachability record.
type ConnectivityStatus struct {
	Online      bool      `json:"online"`
	LastChecked time.Time `json:"lastChecked"`
}
