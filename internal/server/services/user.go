// Package services contains server-side business logic. This file implements
// UserService: registration with institutional validation, login with uniform
// credential failures, and session issuance/teardown.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/litoraledu/gestordoc/internal/common"
	"github.com/litoraledu/gestordoc/internal/cryptox"
	"github.com/litoraledu/gestordoc/internal/dbx"
	"github.com/litoraledu/gestordoc/internal/server/config"
	"github.com/litoraledu/gestordoc/internal/server/models"
	"github.com/litoraledu/gestordoc/internal/server/repositories/repomanager"
	"github.com/litoraledu/gestordoc/internal/validate"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email           string
	Phone           string
	FirstName       string
	LastName        string
	Password        string
	ConfirmPassword string
	InstitutionalID string
	Terms           bool
}

// UserService provides authentication-related operations:
//   - Register: validate input and create users
//   - Login: verify credentials and issue a session
//   - Logout: destroy a session (idempotent)
//   - CheckSession: resolve a session id to its user
type UserService struct {
	db                              *sql.DB
	repomanager                     repomanager.RepositoryManager
	institutionalDomain             string
	bcryptCost                      int
	sessionValidityDuration         time.Duration
	rememberSessionValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                              db,
		repomanager:                     m,
		institutionalDomain:             cfg.InstitutionalDomain,
		bcryptCost:                      cfg.BcryptCost,
		sessionValidityDuration:         cfg.SessionValidityDuration,
		rememberSessionValidityDuration: cfg.RememberSessionValidityDuration,
	}
}

// validateRegistration applies the institutional rules in the fixed order;
// the first failing check wins and no aggregation happens.
func (s *UserService) validateRegistration(in RegisterInput) error {
	required := []struct {
		field string
		value string
	}{
		{"email", in.Email},
		{"phone", in.Phone},
		{"firstName", in.FirstName},
		{"lastName", in.LastName},
		{"password", in.Password},
		{"confirmPassword", in.ConfirmPassword},
		{"institutionalId", in.InstitutionalID},
	}
	for _, f := range required {
		if f.value == "" {
			return common.Validation(fmt.Sprintf("El campo %s es requerido", f.field))
		}
	}

	if !validate.InstitutionalEmail(in.Email, s.institutionalDomain) {
		return common.Validation(fmt.Sprintf("El email debe ser un correo institucional válido (@%s)", s.institutionalDomain))
	}
	if !validate.Phone(in.Phone) {
		return common.Validation("El teléfono debe tener 10 dígitos")
	}
	if !validate.Name(in.FirstName) || !validate.Name(in.LastName) {
		return common.Validation("Los nombres y apellidos deben tener al menos 2 caracteres")
	}
	if !validate.Password(in.Password) {
		return common.Validation("La contraseña no cumple con los requisitos de seguridad")
	}
	if in.Password != in.ConfirmPassword {
		return common.Validation("Las contraseñas no coinciden")
	}
	if !validate.InstitutionalID(in.InstitutionalID) {
		return common.Validation("El código institucional debe tener 10 dígitos")
	}
	if !in.Terms {
		return common.Validation("Debes aceptar los términos y condiciones")
	}
	return nil
}

// Register validates in, checks uniqueness, and creates the user. The
// existence checks are a fast path only; the schema's unique constraints
// close the check-then-insert race, and a constraint hit surfaces here as
// the same conflict error.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := s.validateRegistration(in); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, common.Conflict("El email ya está registrado")
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	if _, err := repo.GetByInstitutionalID(ctx, in.InstitutionalID); err == nil {
		return nil, common.Conflict("El código institucional ya está registrado")
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking institutional id: %w", err)
	}

	hash, err := cryptox.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:           in.Email,
		Phone:           in.Phone,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		PasswordHash:    hash,
		InstitutionalID: in.InstitutionalID,
		TermsAccepted:   in.Terms,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		user = created
		return nil
	}); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			// Lost the race against a concurrent registration.
			return nil, s.conflictMessage(err)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// conflictMessage maps the violated constraint back to the user-facing
// message, matching what the fast-path checks would have produced.
func (s *UserService) conflictMessage(err error) error {
	if strings.Contains(err.Error(), "email") {
		return common.Conflict("El email ya está registrado")
	}
	return common.Conflict("El código institucional ya está registrado")
}

// Login verifies email and password and, on success, creates a session.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string, remember bool) (*models.User, *models.Session, error) {
	if email == "" {
		return nil, nil, common.Validation("El email es requerido")
	}
	if password == "" {
		return nil, nil, common.Validation("La contraseña es requerida")
	}
	if !validate.InstitutionalEmail(email, s.institutionalDomain) {
		return nil, nil, common.Validation(fmt.Sprintf("El email debe ser un correo institucional válido (@%s)", s.institutionalDomain))
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.Unauthorized("Email o contraseña incorrectos")
		}
		return nil, nil, fmt.Errorf("error searching user: %w", err)
	}

	if !cryptox.VerifyPassword(user.PasswordHash, password) {
		return nil, nil, common.Unauthorized("Email o contraseña incorrectos")
	}

	validity := s.sessionValidityDuration
	if remember {
		validity = s.rememberSessionValidityDuration
	}

	session := &models.Session{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Remember: remember,
		Expires:  time.Now().Add(validity),
	}

	if err := s.repomanager.Sessions(s.db).Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("error creating session: %w", err)
	}

	return user, session, nil
}

// Logout destroys the session. Logging out with no active session is not
// an error.
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.repomanager.Sessions(s.db).Delete(ctx, sessionID)
}

// CheckSession resolves sessionID to its user. Absent or expired sessions
// yield common.ErrorUnauthorized — a valid negative, not a failure.
// Expired sessions are removed on sight.
func (s *UserService) CheckSession(ctx context.Context, sessionID string) (*models.User, error) {
	sessionRepo := s.repomanager.Sessions(s.db)

	session, err := sessionRepo.Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching session: %w", err)
	}

	if session.Expires.Before(time.Now()) {
		_ = sessionRepo.Delete(ctx, session.ID)
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return user, nil
}

// SessionValidity returns the configured lifetime for a session with the
// given remember flag; the HTTP layer uses it for cookie Max-Age.
func (s *UserService) SessionValidity(remember bool) time.Duration {
	if remember {
		return s.rememberSessionValidityDuration
	}
	return s.sessionValidityDuration
}
