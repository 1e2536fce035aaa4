package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/litoraledu/gestordoc/internal/common"
	"github.com/litoraledu/gestordoc/internal/storage"
	"github.com/litoraledu/gestordoc/internal/validate"
)

// timeNow is a test seam.
var timeNow = time.Now

// nameCollator orders document names the way a Spanish-speaking user
// expects (tildes and ñ sort with their base letters).
var nameCollator = collate.New(language.Spanish, collate.IgnoreCase)

// Store owns the three document collections. All mutations are serialized
// through one mutex (single-writer) and persisted to the substrate before
// returning, so a caller never observes an unpersisted mutation.
type Store struct {
	mu        sync.Mutex
	substrate storage.Substrate
	domain    string

	active  []Document
	shared  []Document
	trashed []Document
}

// NewStore builds a Store over the given substrate. domain is the
// institutional email domain share recipients must belong to.
func NewStore(sub storage.Substrate, domain string) *Store {
	return &Store{substrate: sub, domain: domain}
}

// Load reads the three collections from the substrate. Absent keys mean
// empty collections, not an error.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range []struct {
		key  string
		dest *[]Document
	}{
		{keyActive, &s.active},
		{keyShared, &s.shared},
		{keyTrash, &s.trashed},
	} {
		b, err := s.substrate.Get(ctx, c.key)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				*c.dest = nil
				continue
			}
			return fmt.Errorf("load %s: %w", c.key, err)
		}
		var docs []Document
		if err := json.Unmarshal(b, &docs); err != nil {
			return fmt.Errorf("decode %s: %w", c.key, err)
		}
		*c.dest = docs
	}
	return nil
}

// persist writes all three collections as a unit. Callers hold the mutex.
func (s *Store) persist(ctx context.Context) error {
	for _, c := range []struct {
		key  string
		docs []Document
	}{
		{keyActive, s.active},
		{keyShared, s.shared},
		{keyTrash, s.trashed},
	} {
		docs := c.docs
		if docs == nil {
			docs = []Document{}
		}
		b, err := json.Marshal(docs)
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.key, err)
		}
		if err := s.substrate.Set(ctx, c.key, b); err != nil {
			return fmt.Errorf("persist %s: %w", c.key, err)
		}
	}
	return nil
}

func findByID(docs []Document, id string) int {
	for i := range docs {
		if docs[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends doc to the active collection. The id is caller-supplied and
// must be unique within the collection.
func (s *Store) Add(ctx context.Context, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if findByID(s.active, doc.ID) != -1 {
		return common.Conflict("El documento ya existe")
	}
	s.active = append(s.active, doc)
	return s.persist(ctx)
}

// Edit updates name and description of an active document in place.
func (s *Store) Edit(ctx context.Context, id, name, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := findByID(s.active, id)
	if i == -1 {
		return common.ErrorNotFound
	}
	s.active[i].Name = name
	s.active[i].Description = description
	return s.persist(ctx)
}

// Delete moves an active document to the trash, stamping the deletion time.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := findByID(s.active, id)
	if i == -1 {
		return common.ErrorNotFound
	}
	doc := s.active[i]
	s.active = append(s.active[:i], s.active[i+1:]...)

	now := timeNow()
	doc.DeletedDate = &now
	s.trashed = append(s.trashed, doc)
	return s.persist(ctx)
}

// Restore moves a trashed document back to the active collection, clearing
// the deletion stamp. The id is unchanged across the round trip.
func (s *Store) Restore(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := findByID(s.trashed, id)
	if i == -1 {
		return common.ErrorNotFound
	}
	doc := s.trashed[i]
	s.trashed = append(s.trashed[:i], s.trashed[i+1:]...)

	doc.DeletedDate = nil
	s.active = append(s.active, doc)
	return s.persist(ctx)
}

// PurgeOne removes a trashed document permanently. Irreversible.
func (s *Store) PurgeOne(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := findByID(s.trashed, id)
	if i == -1 {
		return common.ErrorNotFound
	}
	s.trashed = append(s.trashed[:i], s.trashed[i+1:]...)
	return s.persist(ctx)
}

// EmptyTrash clears the trash entirely. Irreversible and idempotent.
func (s *Store) EmptyTrash(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trashed = nil
	return s.persist(ctx)
}

// Share marks an active document as shared and appends an independent
// snapshot (recipient, permission, share time) to the shared collection.
// Later edits to the active entry do not propagate to the snapshot.
func (s *Store) Share(ctx context.Context, id, recipientEmail, permission string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !validate.InstitutionalEmail(recipientEmail, s.domain) {
		return common.Validation(fmt.Sprintf("Solo se pueden compartir documentos con usuarios de @%s", s.domain))
	}
	if !validate.SharePermission(permission) {
		return common.Validation("Permiso de compartir no válido")
	}

	i := findByID(s.active, id)
	if i == -1 {
		return common.ErrorNotFound
	}
	s.active[i].Shared = true

	now := timeNow()
	snapshot := s.active[i]
	snapshot.SharedWith = recipientEmail
	snapshot.Permission = permission
	snapshot.SharedDate = &now
	s.shared = append(s.shared, snapshot)
	return s.persist(ctx)
}

// Search returns the active documents whose name or description contains
// term, case-insensitively. A blank term returns the full collection in
// its current order.
func (s *Store) Search(term string) []Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	term = strings.TrimSpace(term)
	if term == "" {
		return copyDocs(s.active)
	}

	lower := strings.ToLower(term)
	var out []Document
	for _, d := range s.active {
		if strings.Contains(strings.ToLower(d.Name), lower) ||
			strings.Contains(strings.ToLower(d.Description), lower) {
			out = append(out, d)
		}
	}
	return out
}

// Sort reorders the active collection in place: "name" ascending with
// Spanish collation, "date" newest first, "size" largest first. An unknown
// key is a no-op.
func (s *Store) Sort(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case "name":
		sort.SliceStable(s.active, func(i, j int) bool {
			return nameCollator.CompareString(s.active[i].Name, s.active[j].Name) < 0
		})
	case "date":
		sort.SliceStable(s.active, func(i, j int) bool {
			return s.active[i].Date.After(s.active[j].Date)
		})
	case "size":
		sort.SliceStable(s.active, func(i, j int) bool {
			return s.active[i].Size > s.active[j].Size
		})
	default:
		return nil
	}
	return s.persist(ctx)
}

// Active returns a copy of the active collection in its current order.
func (s *Store) Active() []Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDocs(s.active)
}

// Shared returns a copy of the shared snapshots.
func (s *Store) Shared() []Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDocs(s.shared)
}

// Trashed returns a copy of the trash.
func (s *Store) Trashed() []Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDocs(s.trashed)
}

func copyDocs(docs []Document) []Document {
	out := make([]Document, len(docs))
	copy(out, docs)
	return out
}
