package dashboard

import (
	"context"

	"github.com/google/uuid"
)

// Renderer receives the collections to display after each action. The
// presentation layer (CLI, web) decides how to draw them.
type Renderer interface {
	RenderDocuments(docs []Document)
	RenderShared(docs []Document)
	RenderTrash(docs []Document)
}

// Controller maps user actions onto store mutations and triggers a
// re-render of the affected collections. One controller per user context;
// all mutation paths funnel through the store's single writer.
type Controller struct {
	store    *Store
	renderer Renderer
}

func NewController(store *Store, renderer Renderer) *Controller {
	return &Controller{store: store, renderer: renderer}
}

// Refresh loads persisted state and renders everything.
func (c *Controller) Refresh(ctx context.Context) error {
	if err := c.store.Load(ctx); err != nil {
		return err
	}
	c.renderer.RenderDocuments(c.store.Active())
	c.renderer.RenderShared(c.store.Shared())
	c.renderer.RenderTrash(c.store.Trashed())
	return nil
}

// Upload creates a new active document with a generated id and the current
// time as upload date. url is the content locator produced by the upload
// flow.
func (c *Controller) Upload(ctx context.Context, name, mimeType string, size int64, url, description string) (Document, error) {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	doc := Document{
		ID:          uuid.NewString(),
		Name:        name,
		Type:        mimeType,
		Size:        size,
		Date:        timeNow(),
		Description: description,
		URL:         url,
	}
	if err := c.store.Add(ctx, doc); err != nil {
		return Document{}, err
	}
	c.renderer.RenderDocuments(c.store.Active())
	return doc, nil
}

func (c *Controller) Edit(ctx context.Context, id, name, description string) error {
	if err := c.store.Edit(ctx, id, name, description); err != nil {
		return err
	}
	c.renderer.RenderDocuments(c.store.Active())
	return nil
}

func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}
	c.renderer.RenderDocuments(c.store.Active())
	c.renderer.RenderTrash(c.store.Trashed())
	return nil
}

func (c *Controller) Restore(ctx context.Context, id string) error {
	if err := c.store.Restore(ctx, id); err != nil {
		return err
	}
	c.renderer.RenderDocuments(c.store.Active())
	c.renderer.RenderTrash(c.store.Trashed())
	return nil
}

// Purge permanently removes one trashed document. Confirmation is the
// caller's concern; the operation is irreversible either way.
func (c *Controller) Purge(ctx context.Context, id string) error {
	if err := c.store.PurgeOne(ctx, id); err != nil {
		return err
	}
	c.renderer.RenderTrash(c.store.Trashed())
	return nil
}

// EmptyTrash permanently removes everything in the trash.
func (c *Controller) EmptyTrash(ctx context.Context) error {
	if err := c.store.EmptyTrash(ctx); err != nil {
		return err
	}
	c.renderer.RenderTrash(c.store.Trashed())
	return nil
}

func (c *Controller) Share(ctx context.Context, id, recipientEmail, permission string) error {
	if err := c.store.Share(ctx, id, recipientEmail, permission); err != nil {
		return err
	}
	c.renderer.RenderDocuments(c.store.Active())
	c.renderer.RenderShared(c.store.Shared())
	return nil
}

// Search renders the matching subset of the active collection.
func (c *Controller) Search(term string) {
	c.renderer.RenderDocuments(c.store.Search(term))
}

// Sort reorders the active collection and re-renders it.
func (c *Controller) Sort(ctx context.Context, key string) error {
	if err := c.store.Sort(ctx, key); err != nil {
		return err
	}
	c.renderer.RenderDocuments(c.store.Active())
	return nil
}

// Store exposes the underlying state for read-only listing commands.
func (c *Controller) Store() *Store { return c.store }
