package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/rowfilter/handler"
)

const (
	rowsID    = "table-rows"
	counterID = "row-count"
)

// DefaultScriptURL is the DataStar client bundle loaded by the default page.
const DefaultScriptURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

// RowView is a rendered table row.
type RowView struct {
	Cells  []string
	Hidden bool
}

// TableParams contains data for rendering a searchable listing.
type TableParams struct {
	Title   string
	Path    string // endpoint the search input queries
	InputID string
	TableID string
	Query   string
	Columns []string
	Rows    []RowView
	Shown   int
}

// Views renders the catalog pages. Page is used for regular requests, Rows
// and Counter are streamed to DataStar requests.
type Views struct {
	Page      func(TableParams) templ.Component
	Rows      func(TableParams) templ.Component
	Counter   func(TableParams) templ.Component
	ErrorPage func(handler.ErrorPageParams) handler.TemplComponent
}

// DefaultViews returns plain HTML views loading the DataStar client from scriptURL.
// An empty scriptURL uses DefaultScriptURL.
func DefaultViews(scriptURL string) *Views {
	if scriptURL == "" {
		scriptURL = DefaultScriptURL
	}
	return &Views{
		Page:      func(p TableParams) templ.Component { return pageView(p, scriptURL) },
		Rows:      rowsView,
		Counter:   counterView,
		ErrorPage: errorView,
	}
}

func write(w io.Writer, b *strings.Builder) error {
	_, err := io.WriteString(w, b.String())
	return err
}

func pageView(p TableParams, scriptURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
		fmt.Fprintf(&b, "<title>%s</title>", esc(p.Title))
		fmt.Fprintf(&b, `<script type="module" src="%s"></script>`, esc(scriptURL))
		b.WriteString(`</head><body><nav><a href="books">Books</a> <a href="students">Students</a> <a href="librarians">Librarians</a></nav>`)
		fmt.Fprintf(&b, "<h1>%s</h1>", esc(p.Title))
		fmt.Fprintf(&b, `<form method="get" action="%s">`, esc(p.Path))
		fmt.Fprintf(&b,
			`<input type="text" id="%s" name="q" value="%s" placeholder="Search by %s" autocomplete="off" data-bind-search data-on-input="@get('%s')">`,
			esc(p.InputID), esc(p.Query), esc(strings.ToLower(firstOr(p.Columns, "name"))), esc(p.Path),
		)
		b.WriteString("</form>")
		if err := write(w, &b); err != nil {
			return err
		}
		if err := counterView(p).Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		fmt.Fprintf(&b, `<table id="%s"><thead><tr>`, esc(p.TableID))
		for _, c := range p.Columns {
			fmt.Fprintf(&b, "<th>%s</th>", esc(c))
		}
		b.WriteString("</tr></thead>")
		if err := write(w, &b); err != nil {
			return err
		}
		if err := rowsView(p).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</table></body></html>")
		return err
	})
}

func rowsView(p TableParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<tbody id="%s">`, rowsID)
		for _, row := range p.Rows {
			if row.Hidden {
				b.WriteString(`<tr style="display: none">`)
			} else {
				b.WriteString("<tr>")
			}
			for _, c := range row.Cells {
				fmt.Fprintf(&b, "<td>%s</td>", templ.EscapeString(c))
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody>")
		return write(w, &b)
	})
}

func counterView(p TableParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p id="%s">%d of %d</p>`, counterID, p.Shown, len(p.Rows))
		return err
	})
}

func errorView(p handler.ErrorPageParams) handler.TemplComponent {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"<!DOCTYPE html>\n<html lang=\"en\"><body><h1>%d</h1><p>%s</p><small>%s</small></body></html>",
			p.StatusCode, templ.EscapeString(p.Error), templ.EscapeString(p.RequestID),
		)
		return err
	})
}

func firstOr(s []string, fallback string) string {
	if len(s) == 0 {
		return fallback
	}
	return s[0]
}
