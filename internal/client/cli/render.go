package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/litoraledu/gestordoc/internal/dashboard"
)

// tableRenderer draws the collections as aligned text tables.
type tableRenderer struct {
	out io.Writer
}

func newTableRenderer(out io.Writer) *tableRenderer {
	return &tableRenderer{out: out}
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func (r *tableRenderer) table(title, header string, rows func(w io.Writer)) {
	fmt.Fprintf(r.out, "\n%s\n", title)
	w := tabwriter.NewWriter(r.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	w.Flush()
}

func (r *tableRenderer) RenderDocuments(docs []dashboard.Document) {
	if len(docs) == 0 {
		fmt.Fprintln(r.out, "\nNo hay documentos")
		return
	}
	r.table("Documentos", "ID\tNOMBRE\tTIPO\tTAMAÑO\tFECHA\tCOMPARTIDO", func(w io.Writer) {
		for _, d := range docs {
			shared := ""
			if d.Shared {
				shared = "sí"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				d.ID, d.Name, d.Type, formatSize(d.Size), formatDate(d.Date), shared)
		}
	})
}

func (r *tableRenderer) RenderShared(docs []dashboard.Document) {
	if len(docs) == 0 {
		fmt.Fprintln(r.out, "\nNo hay documentos compartidos")
		return
	}
	r.table("Compartidos", "ID\tNOMBRE\tCON\tPERMISO\tFECHA", func(w io.Writer) {
		for _, d := range docs {
			sharedAt := "-"
			if d.SharedDate != nil {
				sharedAt = formatDate(*d.SharedDate)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				d.ID, d.Name, d.SharedWith, d.Permission, sharedAt)
		}
	})
}

func (r *tableRenderer) RenderTrash(docs []dashboard.Document) {
	if len(docs) == 0 {
		fmt.Fprintln(r.out, "\nLa papelera está vacía")
		return
	}
	r.table("Papelera", "ID\tNOMBRE\tELIMINADO", func(w io.Writer) {
		for _, d := range docs {
			deleted := "-"
			if d.DeletedDate != nil {
				deleted = formatDate(*d.DeletedDate)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, d.Name, deleted)
		}
	})
}
