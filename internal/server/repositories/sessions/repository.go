package sessions

import (
	"context"

	"github.com/litoraledu/gestordoc/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, session *models.Session) error
	Find(ctx context.Context, id string) (*models.Session, error)
	// Delete removes a session. Deleting an absent session is not an error,
	// which keeps logout idempotent.
	Delete(ctx context.Context, id string) error
}
