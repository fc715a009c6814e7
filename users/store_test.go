package users

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/pension-backend/apperror"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "user.json"))
	require.NoError(t, err)
	return store
}

func TestNewFileStoreMissingFile(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)

	page, err := store.Query(QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Empty(t, page.Items)
}

func TestNewFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewFileStore(path)
	require.Error(t, err)
}

func TestCreateAssignsIDAndDefaultScore(t *testing.T) {
	store := newTestStore(t)

	saved, err := store.Create(&User{Fullname: "Ada Lovelace", Username: "ada"})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, float64(100), saved.Score)

	got, err := store.GetByID(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Username)
}

func TestCreateKeepsExplicitScore(t *testing.T) {
	store := newTestStore(t)

	saved, err := store.Create(&User{Fullname: "Ada", Username: "ada", Score: 42})
	require.NoError(t, err)
	assert.Equal(t, float64(42), saved.Score)
}

func TestGetByIDNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetByID("no-such-id")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetByUsernameIsCaseSensitive(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Create(&User{Fullname: "Ada", Username: "ada"})
	require.NoError(t, err)

	_, err = store.GetByUsername("Ada")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	got, err := store.GetByUsername("ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Fullname)
}

func TestUpdateMergesOnlyNamedFields(t *testing.T) {
	store := newTestStore(t)
	saved, err := store.Create(&User{Fullname: "Ada", Username: "ada", Password: "hash", Score: 42})
	require.NoError(t, err)

	newName := "Ada Lovelace"
	updated, err := store.Update(saved.ID, Patch{Fullname: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", updated.Fullname)
	assert.Equal(t, "ada", updated.Username)
	assert.Equal(t, float64(42), updated.Score)

	got, err := store.GetByID(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", got.Password)
}

func TestUpdateZeroScoreFallsBackToDefault(t *testing.T) {
	store := newTestStore(t)
	saved, err := store.Create(&User{Fullname: "Ada", Username: "ada", Score: 42})
	require.NoError(t, err)

	zero := float64(0)
	updated, err := store.Update(saved.ID, Patch{Score: &zero})
	require.NoError(t, err)
	assert.Equal(t, float64(100), updated.Score)
}

func TestUpdateNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Update("no-such-id", Patch{})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)
	saved, err := store.Create(&User{Fullname: "Ada", Username: "ada"})
	require.NoError(t, err)

	require.NoError(t, store.Remove(saved.ID))

	_, err = store.GetByID(saved.ID)
	assert.True(t, apperror.IsNotFound(err))

	err = store.Remove(saved.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestQueryFilters(t *testing.T) {
	store := newTestStore(t)
	seed := []*User{
		{Fullname: "Ada Lovelace", Username: "ada", Score: 150},
		{Fullname: "Grace Hopper", Username: "grace", Score: 90},
		{Fullname: "Alan Turing", Username: "alan", Score: 120},
	}
	for _, u := range seed {
		_, err := store.Create(u)
		require.NoError(t, err)
	}

	page, err := store.Query(QueryFilter{Fullname: "lovelace"})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "ada", page.Items[0].Username)

	page, err = store.Query(QueryFilter{Username: "A"})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)

	page, err = store.Query(QueryFilter{MinScore: 100})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	page, err = store.Query(QueryFilter{Fullname: "a", MinScore: 100})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestQueryPagination(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 25; i++ {
		_, err := store.Create(&User{
			Fullname: fmt.Sprintf("User %02d", i),
			Username: fmt.Sprintf("user%02d", i),
		})
		require.NoError(t, err)
	}

	page, err := store.Query(QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Items, 10)

	page, err = store.Query(QueryFilter{Page: 3})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, "user20", page.Items[0].Username)

	page, err = store.Query(QueryFilter{Page: 7})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 25, page.Total)

	page, err = store.Query(QueryFilter{Limit: 25})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pages)
	assert.Len(t, page.Items, 25)
}

// The union of all pages under any limit must be the whole filtered set, in
// order and without duplicates.
func TestQueryPagesCoverCollection(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 17; i++ {
		_, err := store.Create(&User{
			Fullname: fmt.Sprintf("User %02d", i),
			Username: fmt.Sprintf("user%02d", i),
		})
		require.NoError(t, err)
	}

	for _, limit := range []int{1, 3, 7, 17, 20} {
		var collected []string
		first, err := store.Query(QueryFilter{Limit: limit})
		require.NoError(t, err)
		for p := 1; p <= first.Pages; p++ {
			page, err := store.Query(QueryFilter{Page: p, Limit: limit})
			require.NoError(t, err)
			for _, u := range page.Items {
				collected = append(collected, u.Username)
			}
		}
		require.Len(t, collected, 17, "limit %d", limit)
		for i, username := range collected {
			assert.Equal(t, fmt.Sprintf("user%02d", i), username)
		}
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	saved, err := store.Create(&User{Fullname: "Ada", Username: "ada", Password: "hash"})
	require.NoError(t, err)

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	got, err := reopened.GetByID(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Fullname)
	assert.Equal(t, "hash", got.Password, "password hash must survive a restart")
}

func TestPasswordHiddenFromJSON(t *testing.T) {
	data, err := json.Marshal(&User{ID: "1", Username: "ada", Password: "hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
	assert.NotContains(t, string(data), "password")
}
