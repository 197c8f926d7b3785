package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter lets a gomponents tree be passed wherever a
// templ.Component is expected, which is the page contract handlers render.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements templ.Component.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	if a.Node == nil {
		return nil
	}
	return a.Node.Render(w)
}

// Page wraps a gomponents node as a templ.Component.
func Page(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// TemplToGomponentAdapter embeds a templ.Component inside a gomponents tree.
// The context is captured when the adapter is built since gomponents does not
// pass one to Render.
type TemplToGomponentAdapter struct {
	Component templ.Component
	ctx       context.Context
}

// Render implements gomponents.Node.
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	return a.Component.Render(a.ctx, w)
}

// Embed wraps a templ.Component as a gomponents node rendered with ctx.
func Embed(ctx context.Context, component templ.Component) gomponents.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return &TemplToGomponentAdapter{Component: component, ctx: ctx}
}
