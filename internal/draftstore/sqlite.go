package draftstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pressmill/console/internal/cache"
	"github.com/pressmill/console/internal/db"
	"github.com/pressmill/console/internal/model"
	"github.com/pressmill/console/internal/util/compression"
)

// connectivityKey is the fixed primary key of the single connectivity row.
const connectivityKey = "status"

type SQLiteStore struct { // implements Store
	db         db.DB
	compressor compression.Compressor

	// Read-through cache keyed by draft ID. Kept consistent by the write
	// paths, so reads of recently saved drafts skip the database.
	drafts *cache.Cache[model.DraftID, model.Draft]
}

func NewSQLiteStore(database db.DB) *SQLiteStore {
	return &SQLiteStore{
		db:         database,
		compressor: compression.ZstdCompressor{},
		drafts:     cache.NewCache[model.DraftID, model.Draft](),
	}
}

// Open initializes the sqlite backend at path. When the backend cannot be
// opened the error is logged and a no-op store is returned, so callers in
// storage-less environments degrade to "always empty" without failing.
func Open(path string) Store {
	database := db.NewSQLite(path)
	if err := database.InitDB(); err != nil {
		storeLogger.Warn().Err(err).Str("path", path).Msg("Storage unavailable, drafts will not persist")
		return NewNoopStore()
	}
	return NewSQLiteStore(database)
}

func (s *SQLiteStore) SaveDraft(draft model.Draft) (model.Draft, error) {
	if draft.ID == model.NewDraftID {
		draft.ID = model.DraftID(uuid.New().String())
	}
	if !draft.Status.Valid() {
		draft.Status = model.StatusDraft
	}

	// Stamp server-side regardless of the caller-supplied value so recency
	// stays monotonic per ID. Millisecond precision survives the round trip.
	draft.LastSaved = time.Now().UTC().Truncate(time.Millisecond)

	compressed, err := s.compressor.Compress([]byte(draft.Content))
	if err != nil {
		return model.Draft{}, fmt.Errorf("error compressing draft content: %w", err)
	}

	_, err = s.db.Exec(`
INSERT INTO drafts (id, title, content, hero_image, category_id, excerpt, status, last_saved, user_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    title = excluded.title,
    content = excluded.content,
    hero_image = excluded.hero_image,
    category_id = excluded.category_id,
    excerpt = excluded.excerpt,
    status = excluded.status,
    last_saved = excluded.last_saved,
    user_id = excluded.user_id`,
		draft.ID, draft.Title, compressed, draft.HeroImage, draft.CategoryID,
		draft.Excerpt, string(draft.Status), draft.LastSaved.UnixMilli(), string(draft.Owner),
	)
	if err != nil {
		return model.Draft{}, fmt.Errorf("error saving draft: %w", err)
	}

	s.drafts.Set(draft.ID, draft)

	storeLogger.Debug().Str("draft_id", string(draft.ID)).Msg("Draft saved")
	return draft, nil
}

func (s *SQLiteStore) GetDraft(id model.DraftID) (model.Draft, error) {
	if draft, ok := s.drafts.Get(id); ok {
		return draft, nil
	}

	row := s.db.QueryRow(`
SELECT id, title, content, hero_image, category_id, excerpt, status, last_saved, user_id
FROM drafts WHERE id = ?`, id)

	draft, err := s.scanDraft(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Draft{}, ErrNotFound
		}
		if errors.Is(err, errMalformed) {
			// A record we cannot decode is treated as absent, never fatal.
			storeLogger.Warn().Err(err).Str("draft_id", string(id)).Msg("Malformed draft record, ignoring")
			return model.Draft{}, ErrNotFound
		}
		return model.Draft{}, fmt.Errorf("error reading draft: %w", err)
	}

	s.drafts.Set(draft.ID, draft)
	return draft, nil
}

func (s *SQLiteStore) GetAllDrafts(owner model.UserID) ([]model.Draft, error) {
	query := `
SELECT id, title, content, hero_image, category_id, excerpt, status, last_saved, user_id
FROM drafts`
	args := []interface{}{}
	if owner != "" {
		query += ` WHERE user_id = ?`
		args = append(args, string(owner))
	}
	// Most recent first; ID breaks ties so the order is stable.
	query += ` ORDER BY last_saved DESC, id ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying drafts: %w", err)
	}
	defer rows.Close()

	drafts := make([]model.Draft, 0)
	for rows.Next() {
		draft, err := s.scanDraft(rows.Scan)
		if err != nil {
			if errors.Is(err, errMalformed) {
				storeLogger.Warn().Err(err).Msg("Skipping malformed draft record")
				continue
			}
			return nil, fmt.Errorf("error scanning draft: %w", err)
		}
		drafts = append(drafts, draft)
	}

	return drafts, rows.Err()
}

func (s *SQLiteStore) DeleteDraft(id model.DraftID) error {
	if _, err := s.db.Exec(`DELETE FROM drafts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("error deleting draft: %w", err)
	}
	s.drafts.Delete(id)
	return nil
}

func (s *SQLiteStore) ClearOldDrafts(maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	cutoff := time.Now().UTC().Add(-maxAge).UnixMilli()

	// The cutoff itself is inclusive: a draft aged exactly maxAge goes too.
	res, err := s.db.Exec(`DELETE FROM drafts WHERE last_saved <= ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error clearing old drafts: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error counting cleared drafts: %w", err)
	}

	if affected > 0 {
		// Swept IDs are unknown here, so drop the whole cache.
		s.drafts.Clear()
		storeLogger.Info().Int64("removed", affected).Msg("Retention sweep removed old drafts")
	}

	return int(affected), nil
}

func (s *SQLiteStore) SaveConnectivityStatus(status model.ConnectivityStatus) error {
	online := 0
	if status.Online {
		online = 1
	}

	_, err := s.db.Exec(`
INSERT INTO connectivity (key, online, last_checked) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET online = excluded.online, last_checked = excluded.last_checked`,
		connectivityKey, online, status.LastChecked.UnixMilli())
	if err != nil {
		return fmt.Errorf("error saving connectivity status: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetConnectivityStatus() (model.ConnectivityStatus, error) {
	var online int
	var lastChecked int64

	row := s.db.QueryRow(`SELECT online, last_checked FROM connectivity WHERE key = ?`, connectivityKey)
	if err := row.Scan(&online, &lastChecked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ConnectivityStatus{}, ErrNotFound
		}
		return model.ConnectivityStatus{}, fmt.Errorf("error reading connectivity status: %w", err)
	}

	return model.ConnectivityStatus{
		Online:      online != 0,
		LastChecked: time.UnixMilli(lastChecked).UTC(),
	}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var errMalformed = errors.New("malformed draft record")

// scanDraft decodes one drafts row. Undecodable content or an unknown
// status yields errMalformed so callers can skip the record.
func (s *SQLiteStore) scanDraft(scan func(dest ...interface{}) error) (model.Draft, error) {
	var (
		draft      model.Draft
		compressed []byte
		status     string
		lastSaved  int64
		owner      string
	)

	err := scan(&draft.ID, &draft.Title, &compressed, &draft.HeroImage,
		&draft.CategoryID, &draft.Excerpt, &status, &lastSaved, &owner)
	if err != nil {
		return model.Draft{}, err
	}

	content, err := s.compressor.Decompress(compressed)
	if err != nil {
		return model.Draft{}, fmt.Errorf("%w: %v", errMalformed, err)
	}

	draft.Status = model.DraftStatus(status)
	if !draft.Status.Valid() {
		return model.Draft{}, fmt.Errorf("%w: unknown status %q", errMalformed, status)
	}

	draft.Content = string(content)
	draft.LastSaved = time.UnixMilli(lastSaved).UTC()
	draft.Owner = model.UserID(owner)

	return draft, nil
}
