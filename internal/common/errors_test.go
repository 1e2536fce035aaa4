package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserErrorUnwrapsToKind(t *testing.T) {
	err := Validation("El email es requerido")
	assert.True(t, errors.Is(err, ErrorValidation))
	assert.Equal(t, "El email es requerido", err.Error())

	err = Conflict("El email ya está registrado")
	assert.True(t, errors.Is(err, ErrorConflict))

	err = Unauthorized("Email o contraseña incorrectos")
	assert.True(t, errors.Is(err, ErrorUnauthorized))
	assert.False(t, errors.Is(err, ErrorValidation))
}
