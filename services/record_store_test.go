package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-checkin/models"
	"hotel-checkin/storage"
)

const testKey = "noga_guest_history"

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%04d", n)
	}
}

func signedRecord(first, last string) models.GuestRecord {
	rec := models.GuestRecord{
		FirstName:    first,
		LastName:     last,
		Email:        fmt.Sprintf("%s@example.com", first),
		Cellphone:    "+52 5512345678",
		Nationality:  "MX",
		Birthday:     "1990-04-12",
		CheckInDate:  "2026-03-01",
		CheckOutDate: "2026-03-04",
	}
	rec.Sign("data:image/png;base64,AAAA", time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC))
	return rec
}

func newTestStore(t *testing.T) (*RecordStore, *storage.MemoryStorage) {
	t.Helper()
	mem := storage.NewMemoryStorage()
	store := NewRecordStore(mem, testKey)
	store.NewID = sequentialIDs()
	require.NoError(t, store.Load(context.Background()))
	return store, mem
}

func TestRecordStoreSaveAssignsIDAndPrepends(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	first, err := store.Save(ctx, signedRecord("Ana", "Ruiz"))
	require.NoError(t, err)
	second, err := store.Save(ctx, signedRecord("Luis", "Perez"))
	require.NoError(t, err)

	assert.Equal(t, "id-0001", first.ID)
	assert.Equal(t, "id-0002", second.ID)

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestRecordStoreEditKeepsIDAndPosition(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	a, _ := store.Save(ctx, signedRecord("Ana", "Ruiz"))
	_, _ = store.Save(ctx, signedRecord("Luis", "Perez"))
	_, _ = store.Save(ctx, signedRecord("Marta", "Gil"))

	a.Cellphone = "+34 600111222"
	updated, err := store.Save(ctx, a)
	require.NoError(t, err)

	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, 3, store.Len())
	list := store.List()
	assert.Equal(t, a.ID, list[2].ID)
	assert.Equal(t, "+34 600111222", list[2].Cellphone)
}

func TestRecordStoreDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	a, _ := store.Save(ctx, signedRecord("Ana", "Ruiz"))
	b, _ := store.Save(ctx, signedRecord("Luis", "Perez"))

	ok, err := store.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, store.Len())

	_, err = store.Get(a.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	got, err := store.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luis", got.FirstName)

	ok, err = store.Delete(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())
}

func TestRecordStoreSearch(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, _ = store.Save(ctx, signedRecord("Ana", "Ruiz"))
	_, _ = store.Save(ctx, signedRecord("Luis", "Perez"))

	assert.Len(t, store.Search(""), 2)
	assert.Len(t, store.Search("   "), 2)

	hits := store.Search("RUIZ")
	require.Len(t, hits, 1)
	assert.Equal(t, "Ana", hits[0].FirstName)

	assert.Len(t, store.Search("ana ruiz"), 1)
	assert.Len(t, store.Search("luis@EXAMPLE"), 1)
	assert.Empty(t, store.Search("nobody"))
}

func TestRecordStoreRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		t.Run(fmt.Sprintf("%d records", n), func(t *testing.T) {
			ctx := context.Background()
			store, mem := newTestStore(t)
			for i := 0; i < n; i++ {
				rec := signedRecord(fmt.Sprintf("Guest%d", i), "Test")
				if i%2 == 0 {
					rec.IDPhoto = "data:image/jpeg;base64,BBBB"
				}
				_, err := store.Save(ctx, rec)
				require.NoError(t, err)
			}
			if n == 0 {
				require.NoError(t, mem.SetItem(ctx, testKey, "[]"))
			}

			reloaded := NewRecordStore(mem, testKey)
			require.NoError(t, reloaded.Load(ctx))
			assert.Equal(t, store.List(), reloaded.List())
		})
	}
}

func TestRecordStoreLoadCorruptStartsEmpty(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	require.NoError(t, mem.SetItem(ctx, testKey, "{not json"))

	store := NewRecordStore(mem, testKey)
	require.NoError(t, store.Load(ctx))
	assert.Equal(t, 0, store.Len())
}

func TestRecordStoreLoadDropsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	doc := `[{"id":"a","firstName":"One"},{"id":"b","firstName":"Two"},{"id":"a","firstName":"Again"}]`
	require.NoError(t, mem.SetItem(ctx, testKey, doc))

	store := NewRecordStore(mem, testKey)
	require.NoError(t, store.Load(ctx))

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "One", list[0].FirstName)
	assert.Equal(t, "Two", list[1].FirstName)
}

func TestRecordStoreLoadAssignsMissingIDs(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	doc := `[{"firstName":"Lost"},{"id":"id-0001","firstName":"Kept"}]`
	require.NoError(t, mem.SetItem(ctx, testKey, doc))

	store := NewRecordStore(mem, testKey)
	store.NewID = sequentialIDs()
	require.NoError(t, store.Load(ctx))

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "id-0002", list[0].ID, "assigned id must not collide with a stored one")
	assert.Equal(t, "id-0001", list[1].ID)

	lost := list[0]
	lost.LastName = "Found"
	saved, err := store.Save(ctx, lost)
	require.NoError(t, err)
	assert.Equal(t, "id-0002", saved.ID)
	assert.Equal(t, 2, store.Len())

	reloaded := NewRecordStore(mem, testKey)
	require.NoError(t, reloaded.Load(ctx))
	got, err := reloaded.Get("id-0002")
	require.NoError(t, err)
	assert.Equal(t, "Found", got.LastName)

	deleted, err := reloaded.Delete(ctx, "id-0002")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 1, reloaded.Len())
}

func TestRecordStoreLoadOlderDataWithoutNewFields(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	doc := `[{"id":"old1","firstName":"Ana","lastName":"Ruiz","acceptedAt":"2025-01-02T10:00:00Z","signature":"data:image/png;base64,AA"}]`
	require.NoError(t, mem.SetItem(ctx, testKey, doc))

	store := NewRecordStore(mem, testKey)
	require.NoError(t, store.Load(ctx))

	got, err := store.Get("old1")
	require.NoError(t, err)
	assert.Empty(t, got.TravelingFrom)
	assert.Empty(t, got.IDPhoto)
	assert.True(t, got.IsSigned())
}

func TestRecordStoreWriteFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestStore(t)
	mem.SetFailWrites(errors.New("quota exceeded"))

	saved, err := store.Save(ctx, signedRecord("Ana", "Ruiz"))
	assert.ErrorIs(t, err, ErrPersistFailed)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, 1, store.Len())

	_, err = mem.GetItem(ctx, testKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRecordStoreListIsACopy(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	_, _ = store.Save(ctx, signedRecord("Ana", "Ruiz"))

	list := store.List()
	list[0].FirstName = "Changed"
	*list[0].AcceptedAt = time.Time{}

	got := store.List()
	assert.Equal(t, "Ana", got[0].FirstName)
	assert.False(t, got[0].AcceptedAt.IsZero())
}
