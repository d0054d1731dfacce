package template_ast

import "ngast-go/packages/template_ast/src/util"

// Node is the interface implemented by every standalone template AST variant:
// Comment, Text, Interpolation, Element, EmbeddedTemplate, Container and
// EmbeddedContent. Nodes are built bottom-up during a single scan of the
// token stream and are immutable once returned.
type Node interface {
	BeginToken() Token
	EndToken() Token
	SourceSpan() util.SourceSpan
	Visit(v Visitor)
}

type baseNode struct {
	begin Token
	end   Token
}

// BeginToken returns the first token of the node
func (n *baseNode) BeginToken() Token {
	return n.begin
}

// EndToken returns the last token of the node
func (n *baseNode) EndToken() Token {
	return n.end
}

// SourceSpan returns the span from the begin token to the end token
func (n *baseNode) SourceSpan() util.SourceSpan {
	return util.NewSourceSpan(n.begin.Offset, n.end.End()-n.begin.Offset)
}

// IsSynthetic reports whether the node was generated during recovery and does
// not correspond to real source text
func (n *baseNode) IsSynthetic() bool {
	return n.begin.Synthetic
}

// Comment represents a `<!-- -->` comment
type Comment struct {
	baseNode
	Value string
}

// Text represents a run of plain text
type Text struct {
	baseNode
	Value string
}

// Interpolation represents a `{{ expression }}` fragment. The expression is
// extracted textually; its semantic validity is not checked here.
type Interpolation struct {
	baseNode
	Value string
}

// CloseElement represents the close tag matching an element, possibly fully
// synthetic when no matching close token exists in the stream
type CloseElement struct {
	Name       string
	OpenToken  Token // `</`
	NameToken  Token
	CloseToken Token // `>`
}

// IsSynthetic reports whether the close tag was synthesized during recovery
func (c *CloseElement) IsSynthetic() bool {
	return c.OpenToken.Synthetic
}

// SourceSpan returns the span the close tag covers
func (c *CloseElement) SourceSpan() util.SourceSpan {
	return util.NewSourceSpan(c.OpenToken.Offset, c.CloseToken.End()-c.OpenToken.Offset)
}

// Element represents a regular emittable element
type Element struct {
	baseNode
	Name            string
	NameToken       Token
	Attributes      []*Attribute
	Events          []*Event
	Properties      []*Property
	Bananas         []*Banana
	References      []*Reference
	Stars           []*Star
	Annotations     []*Annotation
	Children        []Node
	CloseComplement *CloseElement
}

// Container represents an `<ng-container>` logical grouping element. Only
// annotations and star directives may be attached to it.
type Container struct {
	baseNode
	NameToken       Token
	Annotations     []*Annotation
	Stars           []*Star
	Children        []Node
	CloseComplement *CloseElement
}

// EmbeddedTemplate represents a `<template>` element. It is the only place
// let- bindings are valid; star and banana decorators are not.
type EmbeddedTemplate struct {
	baseNode
	NameToken       Token
	Attributes      []*Attribute
	Events          []*Event
	Properties      []*Property
	References      []*Reference
	Annotations     []*Annotation
	LetBindings     []*LetBinding
	Children        []Node
	CloseComplement *CloseElement
}

// EmbeddedContent represents an `<ng-content>` projection point. It accepts
// only the `select` and `ngProjectAs` decorators and has no children.
type EmbeddedContent struct {
	baseNode
	NameToken       Token
	Select          *Attribute
	ProjectAs       *Attribute
	CloseComplement *CloseElement
}

// Selector returns the value of the select decorator, or "" when absent
func (n *EmbeddedContent) Selector() string {
	if n.Select == nil {
		return ""
	}
	return n.Select.Value()
}

// Visit implements Node
func (n *Comment) Visit(v Visitor) { v.VisitComment(n) }

// Visit implements Node
func (n *Text) Visit(v Visitor) { v.VisitText(n) }

// Visit implements Node
func (n *Interpolation) Visit(v Visitor) { v.VisitInterpolation(n) }

// Visit implements Node
func (n *Element) Visit(v Visitor) { v.VisitElement(n) }

// Visit implements Node
func (n *Container) Visit(v Visitor) { v.VisitContainer(n) }

// Visit implements Node
func (n *EmbeddedTemplate) Visit(v Visitor) { v.VisitEmbeddedTemplate(n) }

// Visit implements Node
func (n *EmbeddedContent) Visit(v Visitor) { v.VisitEmbeddedContent(n) }

// Decorator is the interface implemented by every attribute-position
// annotation variant: Attribute, Event, Property, Banana, Reference, Star,
// Annotation and LetBinding
type Decorator interface {
	DecoratorName() string
	SourceSpan() util.SourceSpan
	decoratorNode()
}

func decoratorSpan(begin Token, nameToken Token, valueToken *Token, suffixToken *Token) util.SourceSpan {
	end := nameToken.End()
	if suffixToken != nil {
		end = suffixToken.End()
	}
	if valueToken != nil {
		end = valueToken.End()
	}
	return util.NewSourceSpan(begin.Offset, end-begin.Offset)
}

// Attribute represents a plain attribute, with nested interpolation nodes
// when its value contains `{{ }}`
type Attribute struct {
	Name       string
	NameToken  Token
	ValueToken *Token
	Mustaches  []*Interpolation
}

// Value returns the raw attribute value text, or "" when absent
func (d *Attribute) Value() string {
	if d.ValueToken == nil {
		return ""
	}
	return d.ValueToken.Lexeme
}

// DecoratorName implements Decorator
func (d *Attribute) DecoratorName() string { return d.Name }

// SourceSpan implements Decorator
func (d *Attribute) SourceSpan() util.SourceSpan {
	return decoratorSpan(d.NameToken, d.NameToken, d.ValueToken, nil)
}

func (d *Attribute) decoratorNode() {}

// Event represents an `(X)` or `on-X` event binding
type Event struct {
	Name        string
	PrefixToken *Token // nil when rewritten from the legacy `on-` form
	NameToken   Token
	SuffixToken *Token
	ValueToken  *Token
}

// DecoratorName implements Decorator
func (d *Event) DecoratorName() string { return d.Name }

// SourceSpan implements Decorator
func (d *Event) SourceSpan() util.SourceSpan {
	begin := d.NameToken
	if d.PrefixToken != nil {
		begin = *d.PrefixToken
	}
	return decoratorSpan(begin, d.NameToken, d.ValueToken, d.SuffixToken)
}

func (d *Event) decoratorNode() {}

// Property represents a `[X]` or `bind-X` property binding
type Property struct {
	Name        string
	PrefixToken *Token // nil when rewritten from the legacy `bind-` form
	NameToken   Token
	SuffixToken *Token
	ValueToken  *Token
}

// DecoratorName implements Decorator
func (d *Property) DecoratorName() string { return d.Name }

// SourceSpan implements Decorator
func (d *Property) SourceSpan() util.SourceSpan {
	begin := d.NameToken
	if d.PrefixToken != nil {
		begin = *d.PrefixToken
	}
	return decoratorSpan(begin, d.NameToken, d.ValueToken, d.SuffixToken)
}

func (d *Property) decoratorNode() {}

// Banana represents a `[(X)]` two-way binding
type Banana struct {
	Name        string
	PrefixToken Token
	NameToken   Token
	SuffixToken Token
	ValueToken  *Token
}

// DecoratorName implements Decorator
func (d *Banana) DecoratorName() string { return d.Name }

// SourceSpan implements Decorator
func (d *Banana) SourceSpan() util.SourceSpan {
	return decoratorSpan(d.PrefixToken, d.NameToken, d.ValueToken, &d.SuffixToken)
}

func (d *Banana) decoratorNode() {}

// Reference represents a `#X` local reference
type Reference struct {
	Name        string
	PrefixToken Token
	NameToken   Token
	ValueToken  *Token
}

// DecoratorName implements Decorator
func (d *Reference) DecoratorName() string { return d.Name }

// SourceSpan implements Decorator
func (d *Reference) SourceSpan() util.SourceSpan {
	return decoratorSpan(d.PrefixToken, d.NameToken, d.ValueToken, nil)
}

func (d *Reference) decoratorNode() {}

// Star represents a `*X` structural-directive shorthand
type Star struct {
	Name        string
	PrefixToken Token
	NameToken   Token
	ValueToken  *Token
}

// DecoratorName implements Decorator
func (d *Star) DecoratorName() string { return d.Name }

// SourceSpan implements Decorator
func (d *Star) SourceSpan() util.SourceSpan {
	return decoratorSpan(d.PrefixToken, d.NameToken, d.ValueToken, nil)
}

func (d *Star) decoratorNode() {}

// Annotation represents an `@X` annotation
type Annotation struct {
	Name        string
	PrefixToken Token
	NameToken   Token
	ValueToken  *Token
}

// DecoratorName implements Decorator
func (d *Annotation) DecoratorName() string { return d.Name }

// SourceSpan implements Decorator
func (d *Annotation) SourceSpan() util.SourceSpan {
	return decoratorSpan(d.PrefixToken, d.NameToken, d.ValueToken, nil)
}

func (d *Annotation) decoratorNode() {}

// LetBinding represents a `let-X` template input binding, only valid inside
// an EmbeddedTemplate
type LetBinding struct {
	Name       string
	NameToken  Token
	ValueToken *Token
}

// DecoratorName implements Decorator
func (d *LetBinding) DecoratorName() string { return d.Name }

// SourceSpan implements Decorator
func (d *LetBinding) SourceSpan() util.SourceSpan {
	return decoratorSpan(d.NameToken, d.NameToken, d.ValueToken, nil)
}

func (d *LetBinding) decoratorNode() {}
