package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if a.profile != nil {
		return fmt.Sprintf("(%s)", a.profile.Email)
	}
	return ""
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Comandos: list, shared, trash, add, edit, rm, restore, purge, empty, search, sort, share, get, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Comandos: register, login, exit")
	}
}

// Root runs the read–eval–print loop. The first token of each line is the
// command, the rest are arguments. The loop exits on EOF or "exit"/"quit".
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Gestor de documentos (escribe 'help' para ver los comandos)")

	// resume a remembered session if the cookie is still valid
	if profile, err := a.backend.CheckSession(ctx); err == nil {
		a.profile = profile
		fmt.Fprintf(a.out, "Sesión activa: %s\n", profile.Email)
		_ = a.controller.Refresh(ctx)
	}

	for {
		fmt.Fprintf(a.out, "gd %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "register":
			_ = a.register(ctx)
		case "login":
			_ = a.login(ctx)
		case "logout":
			_ = a.logout(ctx)

		case "l", "list":
			a.renderActive()
		case "shared":
			a.renderShared()
		case "trash":
			a.renderTrash()

		case "add":
			_ = a.add(ctx, args)
		case "edit":
			_ = a.edit(ctx, args)
		case "rm":
			_ = a.remove(ctx, args)
		case "restore":
			_ = a.restore(ctx, args)
		case "purge":
			_ = a.purge(ctx, args)
		case "empty":
			_ = a.emptyTrash(ctx)
		case "search":
			a.search(args)
		case "sort":
			_ = a.sort(ctx, args)
		case "share":
			_ = a.share(ctx, args)
		case "get":
			_ = a.download(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(a.out, "¡Hasta luego!")
			return

		default:
			fmt.Fprintln(a.out, "Comando desconocido:", cmd)
		}
	}
}

func (a *App) renderActive() {
	newTableRenderer(a.out).RenderDocuments(a.controller.Store().Active())
}

func (a *App) renderShared() {
	newTableRenderer(a.out).RenderShared(a.controller.Store().Shared())
}

func (a *App) renderTrash() {
	newTableRenderer(a.out).RenderTrash(a.controller.Store().Trashed())
}
