package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/litoraledu/gestordoc/internal/common"
	"github.com/litoraledu/gestordoc/internal/dbx"
	"github.com/litoraledu/gestordoc/internal/server/models"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint hits.
// The schema-level constraint is the authoritative uniqueness guarantee;
// application-level existence checks are only the fast path.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (email, phone, first_name, last_name, password_hash, institutional_id, terms_accepted)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Phone, user.FirstName, user.LastName,
		user.PasswordHash, user.InstitutionalID, user.TermsAccepted).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s", common.ErrorConflict, pgErr.ConstraintName)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, phone, first_name, last_name, password_hash, institutional_id, terms_accepted, created_at
		 FROM users
		 WHERE email = $1
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByInstitutionalID(ctx context.Context, institutionalID string) (*models.User, error) {
	query :=
		`SELECT id, email, phone, first_name, last_name, password_hash, institutional_id, terms_accepted, created_at
		 FROM users
		 WHERE institutional_id = $1
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, institutionalID))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, email, phone, first_name, last_name, password_hash, institutional_id, terms_accepted, created_at
		 FROM users
		 WHERE id = $1
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Email, &user.Phone, &user.FirstName, &user.LastName,
		&user.PasswordHash, &user.InstitutionalID, &user.TermsAccepted, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
