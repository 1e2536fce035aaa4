package repomanager

import (
	"context"
	"database/sql"

	"github.com/litoraledu/gestordoc/internal/dbx"
	"github.com/litoraledu/gestordoc/internal/server/repositories/sessions"
	"github.com/litoraledu/gestordoc/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
