package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/litoraledu/gestordoc/internal/netx"
)

// add uploads a local file: it requests a presigned PUT from the server,
// pushes the content there and records the storage key as the document's
// content locator. When the server is unreachable the local path is kept
// as the locator instead, so the document is still tracked.
func (a *App) add(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: add <archivo> [descripción]")
		return nil
	}

	path := args[0]
	description := strings.Join(args[1:], " ")

	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	if info.IsDir() {
		fmt.Fprintf(a.out, "Error: %s es un directorio\n", path)
		return nil
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	locator := path

	if key, uploadURL, err := a.backend.UploadURL(ctx); err == nil {
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		if err := netx.UploadToPresignedURL(ctx, uploadURL, content); err == nil {
			locator = key
		} else {
			fmt.Fprintln(a.out, "No se pudo subir el contenido, se guarda la ruta local")
		}
	} else {
		fmt.Fprintln(a.out, "Servidor no disponible, se guarda la ruta local")
	}

	doc, err := a.controller.Upload(ctx, info.Name(), mimeType, info.Size(), locator, description)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintf(a.out, "Documento agregado: %s\n", doc.ID)
	return nil
}

func (a *App) edit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: edit <id>")
		return nil
	}

	name, err := GetSimpleText(a.reader, "Nuevo nombre", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Nueva descripción", a.out)
	if err != nil {
		return err
	}

	if err := a.controller.Edit(ctx, args[0], name, description); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: rm <id>")
		return nil
	}
	if err := a.controller.Delete(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	return nil
}

func (a *App) restore(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: restore <id>")
		return nil
	}
	if err := a.controller.Restore(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	return nil
}

func (a *App) purge(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: purge <id>")
		return nil
	}

	ok, err := GetConfirmation(a.reader, "¿Eliminar permanentemente? Esta acción no se puede deshacer", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Operación cancelada")
		return nil
	}

	if err := a.controller.Purge(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	return nil
}

func (a *App) emptyTrash(ctx context.Context) error {
	ok, err := GetConfirmation(a.reader, "¿Vaciar la papelera? Esta acción no se puede deshacer", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Operación cancelada")
		return nil
	}

	if err := a.controller.EmptyTrash(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	return nil
}

func (a *App) search(args []string) {
	a.controller.Search(strings.Join(args, " "))
}

func (a *App) sort(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: sort <name|date|size>")
		return nil
	}
	if err := a.controller.Sort(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	return nil
}

func (a *App) share(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: share <id>")
		return nil
	}

	recipient, err := GetSimpleText(a.reader, "Email del destinatario", a.out)
	if err != nil {
		return err
	}
	permission, err := GetSimpleText(a.reader, "Permiso (view/edit)", a.out)
	if err != nil {
		return err
	}

	if err := a.controller.Share(ctx, args[0], recipient, permission); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	return nil
}

// download prints a presigned GET URL for a document's stored content.
func (a *App) download(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: get <id>")
		return nil
	}

	for _, d := range a.controller.Store().Active() {
		if d.ID == args[0] {
			if d.URL == "" {
				fmt.Fprintln(a.out, "El documento no tiene contenido almacenado")
				return nil
			}
			url, err := a.backend.DownloadURL(ctx, d.URL)
			if err != nil {
				fmt.Fprintln(a.out, "Error:", err)
				return err
			}
			fmt.Fprintln(a.out, url)
			return nil
		}
	}

	fmt.Fprintln(a.out, "Documento no encontrado")
	return nil
}
