// Package render serializes a live host tree to HTML.
//
// Output is deterministic: attributes are written in name order, text and
// attribute values are escaped, and void elements are written without a
// closing tag. This makes rendered markup suitable for golden comparisons
// in tests and for the CLI's render command.
//
// # Basic Usage
//
//	html := render.HTML(root)
//
// To stream to a writer:
//
//	r := render.NewRenderer(render.Config{LiveState: true})
//	err := r.RenderToWriter(w, root)
//
// # Live State
//
// Form controls carry state that is not reflected in attributes: the
// current value, type and checked flag. With LiveState enabled the renderer
// writes that state as if it were markup, so an edited input shows what the
// user typed rather than its initial attribute.
package render
