package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"hotel-checkin/i18n"
	"hotel-checkin/models"
	"hotel-checkin/storage"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	// ErrPersistFailed means the in-memory store changed but the write to
	// local storage did not go through.
	ErrPersistFailed = errors.New("record store: persist failed")
)

// RecordStore is the ordered, newest-first list of signed guest records kept
// under one storage key. Every mutation rewrites the whole array.
type RecordStore struct {
	mu      sync.Mutex
	storage storage.Storage
	key     string
	records []models.GuestRecord

	// NewID generates record ids; tests may replace it.
	NewID func() string
}

func NewRecordStore(st storage.Storage, key string) *RecordStore {
	return &RecordStore{
		storage: st,
		key:     key,
		NewID:   uuid.NewString,
	}
}

// Load replaces the in-memory list with what is stored. A missing key or a
// corrupt document both yield an empty store.
func (s *RecordStore) Load(ctx context.Context) error {
	log.Printf("➡️ RecordStore.Load key=%s", s.key)

	raw, err := s.storage.GetItem(ctx, s.key)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil

	if errors.Is(err, storage.ErrNotFound) {
		log.Println("⬅️ RecordStore.Load: no history yet")
		return nil
	}
	if err != nil {
		log.Printf("⬅️ RecordStore.Load error: %v", err)
		return fmt.Errorf("load %s: %w", s.key, err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var stored []models.GuestRecord
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		log.Printf("⚠️ RecordStore.Load: corrupt history under %s, starting empty: %v", s.key, err)
		return nil
	}

	seen := make(map[string]bool, len(stored))
	for _, rec := range stored {
		if rec.ID != "" {
			if seen[rec.ID] {
				log.Printf("⚠️ RecordStore.Load: dropping duplicate id %s", rec.ID)
				continue
			}
			seen[rec.ID] = true
		}
		s.records = append(s.records, rec)
	}
	// id-less records could never be edited or deleted; the new ids are
	// written back with the next mutation
	for i := range s.records {
		if s.records[i].ID != "" {
			continue
		}
		id := s.NewID()
		for seen[id] {
			id = s.NewID()
		}
		seen[id] = true
		s.records[i].ID = id
		log.Printf("⚠️ RecordStore.Load: record at position %d had no id, assigned %s", i, id)
	}

	log.Printf("⬅️ RecordStore.Load: %d records", len(s.records))
	return nil
}

// Save persists a finalized record. A record whose id is already stored is
// replaced at the same position; anything else gets a fresh id and is
// prepended. The returned record carries the id either way, and so does the
// in-memory store even when the write fails.
func (s *RecordStore) Save(ctx context.Context, rec models.GuestRecord) (models.GuestRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec = rec.Clone()
	idx := s.indexOf(rec.ID)
	if idx >= 0 {
		log.Printf("➡️ RecordStore.Save update id=%s", rec.ID)
		s.records[idx] = rec
	} else {
		rec.ID = s.NewID()
		log.Printf("➡️ RecordStore.Save insert id=%s", rec.ID)
		s.records = append([]models.GuestRecord{rec}, s.records...)
	}

	if err := s.persistLocked(ctx); err != nil {
		return rec.Clone(), err
	}
	log.Printf("⬅️ RecordStore.Save ok (%d records)", len(s.records))
	return rec.Clone(), nil
}

// Delete removes the record with id. Unknown ids are a no-op and report
// false.
func (s *RecordStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	log.Printf("➡️ RecordStore.Delete id=%s", id)
	s.records = append(s.records[:idx:idx], s.records[idx+1:]...)
	return true, s.persistLocked(ctx)
}

func (s *RecordStore) Get(id string) (models.GuestRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.GuestRecord{}, ErrRecordNotFound
	}
	return s.records[idx].Clone(), nil
}

// List returns a copy of every record in store order.
func (s *RecordStore) List() []models.GuestRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecords(s.records)
}

// Search matches query, ignoring case, against "first last" and email. A
// blank query returns everything.
func (s *RecordStore) Search(query string) []models.GuestRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	needle := i18n.Fold(query)
	out := []models.GuestRecord{}
	for _, rec := range s.records {
		name := i18n.Fold(rec.FirstName + " " + rec.LastName)
		if strings.Contains(name, needle) || strings.Contains(i18n.Fold(rec.Email), needle) {
			out = append(out, rec.Clone())
		}
	}
	return out
}

func (s *RecordStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *RecordStore) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *RecordStore) persistLocked(ctx context.Context) error {
	list := s.records
	if list == nil {
		list = []models.GuestRecord{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersistFailed, err)
	}
	if err := s.storage.SetItem(ctx, s.key, string(b)); err != nil {
		log.Printf("⚠️ RecordStore: write to %s failed, change kept in memory only: %v", s.key, err)
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return nil
}

func cloneRecords(in []models.GuestRecord) []models.GuestRecord {
	out := make([]models.GuestRecord, 0, len(in))
	for _, rec := range in {
		out = append(out, rec.Clone())
	}
	return out
}
