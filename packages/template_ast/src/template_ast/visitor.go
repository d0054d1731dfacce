package template_ast

import (
	"fmt"
	"strings"
)

// Visitor is implemented by passes that walk the template AST
type Visitor interface {
	VisitComment(node *Comment)
	VisitText(node *Text)
	VisitInterpolation(node *Interpolation)
	VisitElement(node *Element)
	VisitContainer(node *Container)
	VisitEmbeddedTemplate(node *EmbeddedTemplate)
	VisitEmbeddedContent(node *EmbeddedContent)
}

// RecursiveVisitor walks every node of the tree in document order, invoking
// the optional callbacks. Embed it to write passes that only care about some
// node kinds.
type RecursiveVisitor struct {
	OnComment          func(node *Comment)
	OnText             func(node *Text)
	OnInterpolation    func(node *Interpolation)
	OnElement          func(node *Element)
	OnContainer        func(node *Container)
	OnEmbeddedTemplate func(node *EmbeddedTemplate)
	OnEmbeddedContent  func(node *EmbeddedContent)
}

// VisitAll visits each node in order
func (v *RecursiveVisitor) VisitAll(nodes []Node) {
	for _, node := range nodes {
		node.Visit(v)
	}
}

// VisitComment implements Visitor
func (v *RecursiveVisitor) VisitComment(node *Comment) {
	if v.OnComment != nil {
		v.OnComment(node)
	}
}

// VisitText implements Visitor
func (v *RecursiveVisitor) VisitText(node *Text) {
	if v.OnText != nil {
		v.OnText(node)
	}
}

// VisitInterpolation implements Visitor
func (v *RecursiveVisitor) VisitInterpolation(node *Interpolation) {
	if v.OnInterpolation != nil {
		v.OnInterpolation(node)
	}
}

// VisitElement implements Visitor
func (v *RecursiveVisitor) VisitElement(node *Element) {
	if v.OnElement != nil {
		v.OnElement(node)
	}
	v.VisitAll(node.Children)
}

// VisitContainer implements Visitor
func (v *RecursiveVisitor) VisitContainer(node *Container) {
	if v.OnContainer != nil {
		v.OnContainer(node)
	}
	v.VisitAll(node.Children)
}

// VisitEmbeddedTemplate implements Visitor
func (v *RecursiveVisitor) VisitEmbeddedTemplate(node *EmbeddedTemplate) {
	if v.OnEmbeddedTemplate != nil {
		v.OnEmbeddedTemplate(node)
	}
	v.VisitAll(node.Children)
}

// VisitEmbeddedContent implements Visitor
func (v *RecursiveVisitor) VisitEmbeddedContent(node *EmbeddedContent) {
	if v.OnEmbeddedContent != nil {
		v.OnEmbeddedContent(node)
	}
}

// HumanizeNodes renders a forest as an indented outline, one line per node.
// The format is stable and intended for golden comparisons in tests and for
// CLI output.
func HumanizeNodes(nodes []Node) string {
	h := &humanizer{}
	h.visitAll(nodes)
	return h.out.String()
}

type humanizer struct {
	out   strings.Builder
	depth int
}

func (h *humanizer) visitAll(nodes []Node) {
	for _, node := range nodes {
		node.Visit(h)
	}
}

func (h *humanizer) line(format string, args ...interface{}) {
	h.out.WriteString(strings.Repeat("  ", h.depth))
	fmt.Fprintf(&h.out, format, args...)
	h.out.WriteByte('\n')
}

func (h *humanizer) nested(children []Node) {
	h.depth++
	h.visitAll(children)
	h.depth--
}

func decoratorSummary(node *Element) string {
	var parts []string
	for _, d := range node.Attributes {
		parts = append(parts, d.Name)
	}
	for _, d := range node.Events {
		parts = append(parts, "("+d.Name+")")
	}
	for _, d := range node.Properties {
		parts = append(parts, "["+d.Name+"]")
	}
	for _, d := range node.Bananas {
		parts = append(parts, "[("+d.Name+")]")
	}
	for _, d := range node.References {
		parts = append(parts, "#"+d.Name)
	}
	for _, d := range node.Stars {
		parts = append(parts, "*"+d.Name)
	}
	for _, d := range node.Annotations {
		parts = append(parts, "@"+d.Name)
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

func (h *humanizer) VisitComment(node *Comment) {
	h.line("Comment(%q)", node.Value)
}

func (h *humanizer) VisitText(node *Text) {
	h.line("Text(%q)", node.Value)
}

func (h *humanizer) VisitInterpolation(node *Interpolation) {
	h.line("Interpolation(%q)", node.Value)
}

func (h *humanizer) VisitElement(node *Element) {
	synthetic := ""
	if node.IsSynthetic() {
		synthetic = " synthetic"
	}
	h.line("Element(%s%s)%s", node.Name, decoratorSummary(node), synthetic)
	h.nested(node.Children)
}

func (h *humanizer) VisitContainer(node *Container) {
	var parts []string
	for _, d := range node.Stars {
		parts = append(parts, "*"+d.Name)
	}
	for _, d := range node.Annotations {
		parts = append(parts, "@"+d.Name)
	}
	summary := ""
	if len(parts) > 0 {
		summary = " " + strings.Join(parts, " ")
	}
	h.line("Container%s", summary)
	h.nested(node.Children)
}

func (h *humanizer) VisitEmbeddedTemplate(node *EmbeddedTemplate) {
	var parts []string
	for _, d := range node.Attributes {
		parts = append(parts, d.Name)
	}
	for _, d := range node.Events {
		parts = append(parts, "("+d.Name+")")
	}
	for _, d := range node.Properties {
		parts = append(parts, "["+d.Name+"]")
	}
	for _, d := range node.References {
		parts = append(parts, "#"+d.Name)
	}
	for _, d := range node.Annotations {
		parts = append(parts, "@"+d.Name)
	}
	for _, d := range node.LetBindings {
		parts = append(parts, "let-"+d.Name)
	}
	summary := ""
	if len(parts) > 0 {
		summary = " " + strings.Join(parts, " ")
	}
	h.line("Template%s", summary)
	h.nested(node.Children)
}

func (h *humanizer) VisitEmbeddedContent(node *EmbeddedContent) {
	var parts []string
	if node.Select != nil {
		parts = append(parts, "select="+node.Select.Value())
	}
	if node.ProjectAs != nil {
		parts = append(parts, "ngProjectAs="+node.ProjectAs.Value())
	}
	summary := ""
	if len(parts) > 0 {
		summary = " " + strings.Join(parts, " ")
	}
	h.line("Content%s", summary)
}
