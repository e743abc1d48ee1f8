package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data sets a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets aria-label.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// TitleAttr sets the title attribute.
func TitleAttr(title string) Attr { return attr("title", title) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Disabled toggles the disabled attribute.
func Disabled(on bool) Attr { return attr("disabled", on) }

// Hidden toggles the hidden attribute.
func Hidden(on bool) Attr { return attr("hidden", on) }

// For sets the for attribute of a label.
func For(id string) Attr { return attr("for", id) }

// Value sets the live value of an input or textarea, or the value
// attribute of any other element.
func Value(v any) Attr { return attr("value", v) }

// Type sets the live type of an input or button, or the type attribute of
// any other element.
func Type(kind string) Attr { return attr("type", kind) }

// Checked sets the live checked state of an input.
func Checked(on bool) Attr { return attr("checked", on) }

// Key sets the reconciliation key.
func Key(key any) Attr { return attr("key", key) }

// AttrOf sets an arbitrary attribute.
func AttrOf(name string, value any) Attr { return attr(name, value) }
