package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/bnema/pagerec/internal/domain"
)

const pageStyle = `body{font-family:system-ui,sans-serif;margin:2rem;color:#222}
table{border-collapse:collapse;width:100%}
th,td{text-align:left;padding:.4rem .6rem;border-bottom:1px solid #ddd}
.status-recording{color:#b45309}.status-completed{color:#15803d}
.status-stopped{color:#1d4ed8}.status-failed{color:#b91c1c}
.empty{color:#666}`

// Dashboard renders the recordings table.
func Dashboard(recordings []*domain.Recording) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		b.WriteString("<title>Recordings</title><style>")
		b.WriteString(pageStyle)
		b.WriteString("</style></head><body><h1>Recordings</h1>")

		if len(recordings) == 0 {
			b.WriteString(`<p class="empty">No recordings yet.</p>`)
		} else {
			b.WriteString("<table><thead><tr><th>ID</th><th>URL</th><th>Status</th><th>Output</th><th>Error</th><th>Updated</th></tr></thead><tbody>")
			for _, r := range recordings {
				if err := row(r).Render(ctx, &b); err != nil {
					return err
				}
			}
			b.WriteString("</tbody></table>")
		}

		b.WriteString("</body></html>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func row(r *domain.Recording) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		updated := ""
		if !r.UpdatedAt.IsZero() {
			updated = r.UpdatedAt.UTC().Format("2006-01-02 15:04:05")
		}
		_, err := fmt.Fprintf(w,
			`<tr id="recording-%d"><td>%d</td><td>%s</td><td class="status-%s">%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
			r.ID, r.ID,
			templ.EscapeString(r.URL),
			templ.EscapeString(string(r.Status)), templ.EscapeString(string(r.Status)),
			templ.EscapeString(r.Output),
			templ.EscapeString(r.ErrorMessage),
			updated,
		)
		return err
	})
}
