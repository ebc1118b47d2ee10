package render

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/shunichi-ikebuchi/finance-page/pkg/page"
)

const tableBodyTemplate = `{% for row in rows %}<tr>{% for cell in row.Cells %}<td>{{ cell }}</td>{% endfor %}<td>{% for link in row.Links %}<a href="{{ link.Href }}"{% if link.Classes %} class="{{ link.Classes|join:" " }}"{% endif %}>{{ link.Text }}</a>{% if not forloop.Last %} {% endif %}{% endfor %}</td></tr>
{% endfor %}`

// HTMLRenderer renders rows as the HTML content of a table body.
// Cell text and link targets are escaped.
type HTMLRenderer struct {
	tpl *pongo2.Template
}

// NewHTMLRenderer compiles the table body template.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tpl, err := pongo2.FromString(tableBodyTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to compile table body template: %w", err)
	}
	return &HTMLRenderer{tpl: tpl}, nil
}

// TableBody renders one <tr> per row.
func (h *HTMLRenderer) TableBody(rows []page.Row) (string, error) {
	out, err := h.tpl.Execute(pongo2.Context{"rows": rows})
	if err != nil {
		return "", fmt.Errorf("failed to render table body: %w", err)
	}
	return out, nil
}
