package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litoraledu/gestordoc/internal/common"
	"github.com/litoraledu/gestordoc/internal/storage"
)

// captureRenderer records the last state handed to each render call.
type captureRenderer struct {
	documents []Document
	shared    []Document
	trash     []Document

	documentCalls int
}

func (r *captureRenderer) RenderDocuments(docs []Document) {
	r.documents = docs
	r.documentCalls++
}
func (r *captureRenderer) RenderShared(docs []Document) { r.shared = docs }
func (r *captureRenderer) RenderTrash(docs []Document)  { r.trash = docs }

func newTestController(t *testing.T) (*Controller, *captureRenderer) {
	t.Helper()
	r := &captureRenderer{}
	store := NewStore(storage.NewMemorySubstrate(), testDomain)
	return NewController(store, r), r
}

func TestUploadGeneratesIDAndRenders(t *testing.T) {
	c, r := newTestController(t)
	ctx := context.Background()

	d, err := c.Upload(ctx, "informe.pdf", "", 2048, "users/2026/key", "")
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "application/octet-stream", d.Type)
	assert.False(t, d.Date.IsZero())

	require.Len(t, r.documents, 1)
	assert.Equal(t, d.ID, r.documents[0].ID)
}

func TestDeleteRestoreRendersBothCollections(t *testing.T) {
	c, r := newTestController(t)
	ctx := context.Background()

	d, err := c.Upload(ctx, "a.pdf", "application/pdf", 1, "", "")
	require.NoError(t, err)

	require.NoError(t, c.Delete(ctx, d.ID))
	assert.Empty(t, r.documents)
	require.Len(t, r.trash, 1)

	require.NoError(t, c.Restore(ctx, d.ID))
	assert.Len(t, r.documents, 1)
	assert.Empty(t, r.trash)
}

func TestShareRendersSharedCollection(t *testing.T) {
	c, r := newTestController(t)
	ctx := context.Background()

	d, err := c.Upload(ctx, "a.pdf", "application/pdf", 1, "", "")
	require.NoError(t, err)

	require.NoError(t, c.Share(ctx, d.ID, "ana@litoral.edu.co", "view"))
	require.Len(t, r.shared, 1)
	assert.True(t, r.documents[0].Shared)
}

func TestSearchRendersFilteredSubset(t *testing.T) {
	c, r := newTestController(t)
	ctx := context.Background()

	_, err := c.Upload(ctx, "informe.pdf", "", 1, "", "")
	require.NoError(t, err)
	_, err = c.Upload(ctx, "acta.pdf", "", 1, "", "")
	require.NoError(t, err)

	c.Search("acta")
	require.Len(t, r.documents, 1)
	assert.Equal(t, "acta.pdf", r.documents[0].Name)

	c.Search("")
	assert.Len(t, r.documents, 2)
}

func TestPurgeAndEmptyTrash(t *testing.T) {
	c, r := newTestController(t)
	ctx := context.Background()

	d1, err := c.Upload(ctx, "a.pdf", "", 1, "", "")
	require.NoError(t, err)
	d2, err := c.Upload(ctx, "b.pdf", "", 1, "", "")
	require.NoError(t, err)
	require.NoError(t, c.Delete(ctx, d1.ID))
	require.NoError(t, c.Delete(ctx, d2.ID))

	require.NoError(t, c.Purge(ctx, d1.ID))
	require.Len(t, r.trash, 1)

	require.NoError(t, c.EmptyTrash(ctx))
	assert.Empty(t, r.trash)

	assert.ErrorIs(t, c.Purge(ctx, d1.ID), common.ErrorNotFound)
}

func TestRefreshLoadsPersistedState(t *testing.T) {
	sub := storage.NewMemorySubstrate()
	ctx := context.Background()

	seed := NewStore(sub, testDomain)
	require.NoError(t, seed.Add(ctx, doc("d1", "a.pdf", 1)))

	r := &captureRenderer{}
	c := NewController(NewStore(sub, testDomain), r)
	require.NoError(t, c.Refresh(ctx))
	require.Len(t, r.documents, 1)
	assert.Equal(t, "d1", r.documents[0].ID)
}
