// Package container places highlighted markup into an HTML container
// element. It performs no text transformation of its own: the content is
// rendered by the highlight package and injected as trusted markup.
package container

import (
	"html/template"
	"strings"

	"github.com/arthur-debert/hilite/pkg/highlight"
	"github.com/arthur-debert/hilite/pkg/palette"
	"github.com/arthur-debert/hilite/pkg/types"
)

// Props configures a container.
type Props struct {
	// Content is the annotated text
	Content string
	// Mode defaults to highlights
	Mode types.Mode
	// Palette defaults to vibrant
	Palette string
	// Registry defaults to the built-in palettes
	Registry *palette.Registry
	// ClassName is set as the element's class attribute when non-empty
	ClassName string
	// SkipMarkdown leaves **bold**, *italic* and `code` as written
	SkipMarkdown bool
}

var (
	blockTemplate  = template.Must(template.New("block").Parse(`<div{{with .Class}} class="{{.}}"{{end}}>{{.Body}}</div>`))
	inlineTemplate = template.Must(template.New("inline").Parse(`<span{{with .Class}} class="{{.}}"{{end}}>{{.Body}}</span>`))
)

type view struct {
	Class string
	Body  template.HTML
}

// Block renders the content inside a div.
func Block(props Props) string {
	return render(blockTemplate, props)
}

// Inline renders the content inside a span.
func Inline(props Props) string {
	return render(inlineTemplate, props)
}

func render(tmpl *template.Template, props Props) string {
	body := highlight.RenderWith(props.Content, highlight.Options{
		Mode:         props.Mode,
		Palette:      props.Palette,
		Registry:     props.Registry,
		SkipMarkdown: props.SkipMarkdown,
	})

	var b strings.Builder
	// The template is fixed and its data cannot fail to render.
	_ = tmpl.Execute(&b, view{
		Class: strings.TrimSpace(props.ClassName),
		Body:  template.HTML(body),
	})
	return b.String()
}
