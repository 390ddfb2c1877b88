package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxmate/internal/app/client/config"
)

func testApp(t *testing.T, f *fakeStore) *App {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		StoreAddress: f.srv.URL,
		ConfigDir:    dir,
		TokenPath:    filepath.Join(dir, "token"),
		UserPath:     filepath.Join(dir, "user.json"),
		CachePath:    filepath.Join(dir, "snapshot.db"),
	}

	app, err := New(cfg, testLogger())
	require.NoError(t, err)
	return app
}

func TestApp_CreateSpace(t *testing.T) {
	f := newFakeStore(t)
	app := testApp(t, f)

	sp, err := app.CreateSpace(context.Background(), "  Moving  Box ")
	require.NoError(t, err)
	require.NotNil(t, sp)

	assert.Equal(t, "moving-box", sp.ID)
	assert.Equal(t, "moving-box", sp.DBID)
	assert.Equal(t, "Moving  Box", sp.Alt)

	f.mu.Lock()
	assert.Equal(t, "moving-box", f.spaces[0].ID)
	assert.Equal(t, "Moving  Box", f.spaces[0].Alt)
	f.mu.Unlock()
}

func TestApp_CreateSpaceBlankNameIsNoop(t *testing.T) {
	f := newFakeStore(t)
	app := testApp(t, f)

	sp, err := app.CreateSpace(context.Background(), "   ")
	assert.NoError(t, err)
	assert.Nil(t, sp)
	assert.Equal(t, 0, f.totalRequests())
}

func TestApp_UpdateSpaceImageTargetsDBID(t *testing.T) {
	f := newFakeStore(t)
	f.spaces = []remoteSpace{{ID: "Garage Shelf"}}
	app := testApp(t, f)

	err := app.UpdateSpaceImage(context.Background(), Space{ID: "garage-shelf", DBID: "Garage Shelf"}, "/icons/shelf.svg")
	require.NoError(t, err)

	// Адресация по исходному идентификатору хранилища
	assert.Equal(t, 1, f.count("PATCH /spaces/Garage Shelf"))
}

func TestApp_CreateProductStampsTimestamps(t *testing.T) {
	f := newFakeStore(t)
	app := testApp(t, f)

	before := time.Now().UTC().Add(-time.Second)

	p, err := app.CreateProduct(context.Background(), Product{Name: "Drill", Box: "Garage"})
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "srv-1", p.ID)
	require.NotEmpty(t, p.CreatedAt)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	stamp, err := time.Parse(time.RFC3339, p.CreatedAt)
	require.NoError(t, err)
	assert.True(t, stamp.After(before))
}

func TestApp_UpdateProductMissingID(t *testing.T) {
	f := newFakeStore(t)
	app := testApp(t, f)

	err := app.UpdateProduct(context.Background(), "", Product{Name: "Drill"})
	assert.ErrorIs(t, err, ErrMissingProductID)
	assert.Equal(t, 0, f.totalRequests())
}

func TestApp_DeleteProductMissingID(t *testing.T) {
	f := newFakeStore(t)
	app := testApp(t, f)

	err := app.DeleteProduct(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingProductID)
	assert.Equal(t, 0, f.totalRequests())
}

func TestApp_DeleteProduct(t *testing.T) {
	f := newFakeStore(t)
	f.items = []remoteItem{{ID: "srv-9", Name: "Drill", Box: "garage"}}
	app := testApp(t, f)

	require.NoError(t, app.DeleteProduct(context.Background(), "srv-9"))
	assert.Equal(t, 1, f.count("DELETE /items/srv-9"))

	// Состояние перечитано после мутации
	snap := app.Holder().Snapshot()
	require.NotNil(t, snap)
	assert.Empty(t, snap.Products)
}
