package cli

import (
	"context"
	"fmt"

	"github.com/litoraledu/gestordoc/internal/client/api"
)

func (a *App) register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email institucional", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Teléfono (10 dígitos)", a.out)
	if err != nil {
		return err
	}
	firstName, err := GetSimpleText(a.reader, "Nombres", a.out)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(a.reader, "Apellidos", a.out)
	if err != nil {
		return err
	}
	institutionalID, err := GetSimpleText(a.reader, "Código institucional (10 dígitos)", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Contraseña")
	if err != nil {
		return err
	}
	confirm, err := GetPassword(a.out, "Confirmar contraseña")
	if err != nil {
		return err
	}
	terms, err := GetConfirmation(a.reader, "¿Aceptas los términos y condiciones?", a.out)
	if err != nil {
		return err
	}

	err = a.backend.Register(ctx, api.RegisterInput{
		Email:           email,
		Phone:           phone,
		FirstName:       firstName,
		LastName:        lastName,
		Password:        password,
		ConfirmPassword: confirm,
		InstitutionalID: institutionalID,
		Terms:           terms,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintln(a.out, "Usuario registrado exitosamente")
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email institucional", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Contraseña")
	if err != nil {
		return err
	}
	remember, err := GetConfirmation(a.reader, "¿Mantener la sesión iniciada?", a.out)
	if err != nil {
		return err
	}

	profile, err := a.backend.Login(ctx, email, password, remember)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	a.profile = profile
	fmt.Fprintf(a.out, "Bienvenido, %s\n", profile.Name)

	return a.controller.Refresh(ctx)
}

func (a *App) logout(ctx context.Context) error {
	if err := a.backend.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	a.profile = nil
	fmt.Fprintln(a.out, "Sesión cerrada exitosamente")
	return nil
}
