package schema

import "strings"

// ElementSet is a case-insensitive set of element names
type ElementSet struct {
	names map[string]bool
}

// NewElementSet creates a new ElementSet containing the given names
func NewElementSet(names ...string) *ElementSet {
	s := &ElementSet{
		names: make(map[string]bool, len(names)),
	}
	s.Add(names...)
	return s
}

// Add inserts names into the set
func (s *ElementSet) Add(names ...string) {
	for _, name := range names {
		s.names[strings.ToLower(name)] = true
	}
}

// Has reports whether the set contains the given name
func (s *ElementSet) Has(name string) bool {
	if s == nil {
		return false
	}
	return s.names[strings.ToLower(name)]
}

// Names returns the members of the set in unspecified order
func (s *ElementSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	return out
}

// DefaultVoidElements returns the HTML void elements, which never have
// children or a close tag
func DefaultVoidElements() *ElementSet {
	return NewElementSet(
		"area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr",
	)
}

// DefaultSvgElements returns the SVG element names for which self-closing
// open tags are legal
func DefaultSvgElements() *ElementSet {
	return NewElementSet(
		"svg", "animate", "circle", "clipPath", "defs", "desc", "ellipse",
		"feBlend", "feColorMatrix", "feComposite", "feFlood", "feGaussianBlur",
		"feImage", "feMerge", "feMergeNode", "feOffset", "filter",
		"foreignObject", "g", "image", "line", "linearGradient", "marker",
		"mask", "path", "pattern", "polygon", "polyline", "radialGradient",
		"rect", "stop", "symbol", "text", "textPath", "tspan", "use", "view",
	)
}
