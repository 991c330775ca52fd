package render

// Layer is implemented by each visual stage of a frame
type Layer interface {
	Render(ctx RenderContext, canvas *Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
