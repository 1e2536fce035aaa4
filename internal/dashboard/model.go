// Package dashboard implements the document state kept by the dashboard:
// three disjoint collections (active, shared snapshots, trash) persisted as
// a unit to a key-value blob substrate after every mutation.
package dashboard

import "time"

// Substrate keys. The JSON layout matches the browser-era storage blobs so
// existing state loads unchanged.
const (
	keyActive = "documents"
	keyShared = "sharedDocuments"
	keyTrash  = "trashDocuments"
)

// Document is one dashboard entry. A document lives in exactly one of the
// three collections; shared entries are independent snapshots taken at
// share time and never synchronized back.
type Document struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Size        int64     `json:"size"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	Shared      bool      `json:"shared"`

	// URL is an opaque content locator: an object-storage key, a local
	// path, or whatever the upload flow produced.
	URL string `json:"url,omitempty"`

	// Trash-only.
	DeletedDate *time.Time `json:"deletedDate,omitempty"`

	// Shared-snapshot-only.
	SharedWith string     `json:"sharedWith,omitempty"`
	Permission string     `json:"permission,omitempty"`
	SharedDate *time.Time `json:"sharedDate,omitempty"`
}
