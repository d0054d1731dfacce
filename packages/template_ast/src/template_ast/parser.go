package template_ast

import (
	"strings"

	"ngast-go/packages/template_ast/src/schema"
	"ngast-go/packages/template_ast/src/util"
)

// DefaultMaxNestingDepth bounds parsing recursion. Recursion mirrors the
// nesting depth of the input, so the cap is an explicit resource limit rather
// than an implicit native-stack one.
const DefaultMaxNestingDepth = 100

const (
	ngContentTag   = "ng-content"
	ngContainerTag = "ng-container"
	templateTag    = "template"
)

// ParseOptions configures a parse. Nil sets and a zero depth select the
// defaults.
type ParseOptions struct {
	VoidElements    *schema.ElementSet
	SvgElements     *schema.ElementSet
	MaxNestingDepth int
}

// ParseTreeResult represents the result of parsing a template
type ParseTreeResult struct {
	File        *util.SourceFile
	RootNodes   []Node
	Diagnostics []Diagnostic
}

// Parser ties the tokenizer and the recursive-descent parser together
type Parser struct {
	options ParseOptions
}

// NewParser creates a new Parser
func NewParser(options *ParseOptions) *Parser {
	p := &Parser{}
	if options != nil {
		p.options = *options
	}
	return p
}

// Parse parses source in recovering mode: every malformed construct yields a
// synthetic recovery value and a diagnostic, never an abort
func (p *Parser) Parse(source, url string) *ParseTreeResult {
	handler := NewRecoveringExceptionHandler()
	nodes, _ := ParseNodes(Tokenize(source), handler, &p.options)
	return &ParseTreeResult{
		File:        util.NewSourceFile(source, url),
		RootNodes:   nodes,
		Diagnostics: handler.Diagnostics,
	}
}

// ParseStrict parses source in strict mode: the first problem aborts the
// whole parse and is returned as a *ParserError
func (p *Parser) ParseStrict(source, url string) (*ParseTreeResult, error) {
	nodes, err := ParseNodes(Tokenize(source), ThrowingExceptionHandler{}, &p.options)
	if err != nil {
		return nil, err
	}
	return &ParseTreeResult{
		File:      util.NewSourceFile(source, url),
		RootNodes: nodes,
	}, nil
}

// ParseNodes parses an ordered token sequence into the forest of top-level
// standalone nodes, reporting problems through the given handler. The
// returned error is non-nil only when the handler aborts (ThrowingExceptionHandler).
func ParseNodes(tokens []Token, handler ExceptionHandler, options *ParseOptions) (nodes []Node, err error) {
	opts := ParseOptions{}
	if options != nil {
		opts = *options
	}
	if opts.VoidElements == nil {
		opts.VoidElements = schema.DefaultVoidElements()
	}
	if opts.SvgElements == nil {
		opts.SvgElements = schema.DefaultSvgElements()
	}
	if opts.MaxNestingDepth <= 0 {
		opts.MaxNestingDepth = DefaultMaxNestingDepth
	}
	if handler == nil {
		handler = NewRecoveringExceptionHandler()
	}

	rp := &recursiveParser{
		reader:  NewTokenReader(tokens),
		handler: handler,
		options: opts,
	}
	defer func() {
		if r := recover(); r != nil {
			parserErr, ok := r.(*ParserError)
			if !ok {
				panic(r)
			}
			nodes = nil
			err = parserErr
		}
	}()

	for {
		token, ok := rp.advance()
		if !ok || token.Type == TokenTypeEOF {
			break
		}
		if node := rp.parseStandalone(token); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

type recursiveParser struct {
	reader   *TokenReader
	handler  ExceptionHandler
	options  ParseOptions
	tagStack []string
	lastEnd  int
}

func (p *recursiveParser) advance() (Token, bool) {
	token, ok := p.reader.Next()
	if ok {
		p.lastEnd = token.End()
	}
	return token, ok
}

func (p *recursiveParser) consumeWhitespace() {
	for {
		tokenType, ok := p.reader.PeekType()
		if !ok || tokenType != TokenTypeWHITESPACE {
			return
		}
		p.advance()
	}
}

// expect consumes a token of the given type, or synthesizes one at the given
// offset without consuming anything. The token stream is produced by a lexer
// assumed correct, so no diagnostic is attached; synthesis only keeps the
// cursor and the tree aligned.
func (p *recursiveParser) expect(tokenType TokenType, lexeme string, offset int) Token {
	if token, ok := p.reader.Peek(); ok && token.Type == tokenType {
		token, _ = p.advance()
		return token
	}
	return NewSyntheticToken(tokenType, lexeme, offset)
}

func (p *recursiveParser) stackContains(name string) bool {
	if name == "" {
		return false
	}
	for _, open := range p.tagStack {
		if open == name {
			return true
		}
	}
	return false
}

// parseStandalone dispatches on the token type to build one standalone node.
// It returns nil when the token produced no node (recovering mode skipped it).
func (p *recursiveParser) parseStandalone(token Token) Node {
	switch token.Type {
	case TokenTypeCOMMENT_START:
		return p.parseComment(token)
	case TokenTypeOPEN_ELEMENT_START:
		return p.parseElement(token)
	case TokenTypeINTERPOLATION_START:
		return p.parseInterpolation(token)
	case TokenTypeTEXT, TokenTypeWHITESPACE:
		return &Text{baseNode: baseNode{begin: token, end: token}, Value: token.Lexeme}
	case TokenTypeCLOSE_ELEMENT_START:
		return p.parseDanglingClose(token, true)
	default:
		p.handler.Handle(Diagnostic{Code: CodeEXPECTED_STANDALONE, Offset: token.Offset, Length: token.Length()})
		return nil
	}
}

// parseDanglingClose consumes a close tag that has no open tag to match,
// reports it, and synthesizes an opening node carrying only the close
// complement. At top level only the content-projection tag gets a dedicated
// node kind; among children the container and template tags do too.
func (p *recursiveParser) parseDanglingClose(begin Token, topLevel bool) Node {
	closeComplement := p.parseCloseElement(begin)
	p.handler.Handle(Diagnostic{
		Code:   CodeDANGLING_CLOSE_ELEMENT,
		Offset: begin.Offset,
		Length: closeComplement.CloseToken.End() - begin.Offset,
	})

	offset := begin.Offset
	base := baseNode{
		begin: NewSyntheticToken(TokenTypeOPEN_ELEMENT_START, "<", offset),
		end:   NewSyntheticToken(TokenTypeOPEN_ELEMENT_END, ">", offset),
	}
	nameToken := NewSyntheticToken(TokenTypeELEMENT_IDENTIFIER, closeComplement.Name, offset)

	switch {
	case closeComplement.Name == ngContentTag:
		node := &EmbeddedContent{baseNode: base, NameToken: nameToken}
		node.CloseComplement = closeComplement
		return node
	case !topLevel && closeComplement.Name == ngContainerTag:
		node := &Container{baseNode: base, NameToken: nameToken}
		node.CloseComplement = closeComplement
		return node
	case !topLevel && closeComplement.Name == templateTag:
		node := &EmbeddedTemplate{baseNode: base, NameToken: nameToken}
		node.CloseComplement = closeComplement
		return node
	default:
		node := &Element{baseNode: base, Name: closeComplement.Name, NameToken: nameToken}
		node.CloseComplement = closeComplement
		return node
	}
}

func (p *recursiveParser) parseComment(begin Token) Node {
	value := ""
	end := begin
	if tokenType, ok := p.reader.PeekType(); ok && tokenType == TokenTypeCOMMENT_VALUE {
		token, _ := p.advance()
		value = token.Lexeme
		end = token
	}
	end = p.expect(TokenTypeCOMMENT_END, "-->", end.End())
	return &Comment{baseNode: baseNode{begin: begin, end: end}, Value: value}
}

func (p *recursiveParser) parseInterpolation(begin Token) Node {
	value := ""
	valueEnd := begin.End()
	if tokenType, ok := p.reader.PeekType(); ok && tokenType == TokenTypeINTERPOLATION_VALUE {
		token, _ := p.advance()
		value = token.Lexeme
		valueEnd = token.End()
	}
	var end Token
	if tokenType, ok := p.reader.PeekType(); ok && tokenType == TokenTypeINTERPOLATION_END {
		end, _ = p.advance()
	} else {
		p.handler.Handle(Diagnostic{Code: CodeUNTERMINATED_MUSTACHE, Offset: begin.Offset, Length: begin.Length()})
		end = NewSyntheticToken(TokenTypeINTERPOLATION_END, "}}", valueEnd)
	}
	return &Interpolation{baseNode: baseNode{begin: begin, end: end}, Value: value}
}

// parseOpenTagRest consumes the decorators and the terminator of an open tag
// whose `<` and name have already been consumed. Each parsed decorator is
// handed to bucket; the element kind's validity rules live there. Returns the
// terminator token and whether the tag was self-closing (`/>`).
func (p *recursiveParser) parseOpenTagRest(bucket func(Decorator)) (Token, bool) {
	for {
		tokenType, ok := p.reader.PeekTypeIgnoring(TokenTypeWHITESPACE)
		if !ok {
			p.consumeWhitespace()
			return NewSyntheticToken(TokenTypeOPEN_ELEMENT_END, ">", p.lastEnd), false
		}
		switch tokenType {
		case TokenTypeOPEN_ELEMENT_END, TokenTypeOPEN_ELEMENT_END_VOID:
			p.consumeWhitespace()
			token, _ := p.advance()
			return token, token.Type == TokenTypeOPEN_ELEMENT_END_VOID
		case TokenTypeELEMENT_DECORATOR, TokenTypeBANANA_PREFIX, TokenTypeEVENT_PREFIX,
			TokenTypePROPERTY_PREFIX, TokenTypeREFERENCE_PREFIX, TokenTypeTEMPLATE_PREFIX,
			TokenTypeANNOTATION_PREFIX:
			p.consumeWhitespace()
			bucket(p.parseDecorator())
		case TokenTypeEOF:
			p.consumeWhitespace()
			token, _ := p.reader.Peek()
			return NewSyntheticToken(TokenTypeOPEN_ELEMENT_END, ">", token.Offset), false
		default:
			// Foreign token inside an open tag; skip it to stay aligned.
			p.consumeWhitespace()
			token, _ := p.advance()
			p.handler.Handle(Diagnostic{Code: CodeEXPECTED_STANDALONE, Offset: token.Offset, Length: token.Length()})
		}
	}
}

func (p *recursiveParser) parseElement(begin Token) Node {
	nameToken := p.expect(TokenTypeELEMENT_IDENTIFIER, "", begin.End())
	name := nameToken.Lexeme
	if name == ngContentTag {
		return p.parseEmbeddedContent(begin, nameToken)
	}
	if name == ngContainerTag {
		return p.parseContainer(begin, nameToken)
	}
	isTemplateElement := name == templateTag

	tooDeep := len(p.tagStack) >= p.options.MaxNestingDepth
	if tooDeep {
		p.handler.Handle(Diagnostic{Code: CodeNESTING_TOO_DEEP, Offset: begin.Offset, Length: nameToken.End() - begin.Offset})
	}

	var (
		attributes  []*Attribute
		events      []*Event
		properties  []*Property
		bananas     []*Banana
		references  []*Reference
		stars       []*Star
		annotations []*Annotation
		letBindings []*LetBinding
	)
	bucket := func(decorator Decorator) {
		span := decorator.SourceSpan()
		switch d := decorator.(type) {
		case *Attribute:
			attributes = append(attributes, d)
		case *Event:
			events = append(events, d)
		case *Property:
			properties = append(properties, d)
		case *Banana:
			if isTemplateElement {
				p.handler.Handle(Diagnostic{Code: CodeINVALID_DECORATOR_IN_TEMPLATE, Offset: span.Offset, Length: span.Length})
				return
			}
			bananas = append(bananas, d)
		case *Reference:
			references = append(references, d)
		case *Star:
			if isTemplateElement {
				p.handler.Handle(Diagnostic{Code: CodeINVALID_DECORATOR_IN_TEMPLATE, Offset: span.Offset, Length: span.Length})
				return
			}
			if len(stars) > 0 {
				p.handler.Handle(Diagnostic{Code: CodeDUPLICATE_STAR_DIRECTIVE, Offset: span.Offset, Length: span.Length})
				return
			}
			stars = append(stars, d)
		case *Annotation:
			annotations = append(annotations, d)
		case *LetBinding:
			if !isTemplateElement {
				p.handler.Handle(Diagnostic{Code: CodeINVALID_LET_BINDING_IN_NONTEMPLATE, Offset: span.Offset, Length: span.Length})
				return
			}
			letBindings = append(letBindings, d)
		}
	}

	openEnd, selfClosing := p.parseOpenTagRest(bucket)
	isVoid := p.options.VoidElements.Has(name)
	if selfClosing && !isVoid && !p.options.SvgElements.Has(name) {
		p.handler.Handle(Diagnostic{Code: CodeNONVOID_ELEMENT_USING_VOID_END, Offset: openEnd.Offset, Length: openEnd.Length()})
		selfClosing = false
	}

	endToken := openEnd
	var children []Node
	var closeComplement *CloseElement
	if !isVoid && !selfClosing {
		if tooDeep {
			closeComplement = p.syntheticClose(name, openEnd.End())
		} else {
			children, closeComplement = p.parseChildren(name, begin, nameToken)
		}
		endToken = closeComplement.CloseToken
	}

	if isTemplateElement {
		return &EmbeddedTemplate{
			baseNode:        baseNode{begin: begin, end: endToken},
			NameToken:       nameToken,
			Attributes:      attributes,
			Events:          events,
			Properties:      properties,
			References:      references,
			Annotations:     annotations,
			LetBindings:     letBindings,
			Children:        children,
			CloseComplement: closeComplement,
		}
	}
	return &Element{
		baseNode:        baseNode{begin: begin, end: endToken},
		Name:            name,
		NameToken:       nameToken,
		Attributes:      attributes,
		Events:          events,
		Properties:      properties,
		Bananas:         bananas,
		References:      references,
		Stars:           stars,
		Annotations:     annotations,
		Children:        children,
		CloseComplement: closeComplement,
	}
}

// parseContainer is the restricted sibling of parseElement for
// `<ng-container>`: only annotations and star directives are supported.
func (p *recursiveParser) parseContainer(begin, nameToken Token) Node {
	tooDeep := len(p.tagStack) >= p.options.MaxNestingDepth
	if tooDeep {
		p.handler.Handle(Diagnostic{Code: CodeNESTING_TOO_DEEP, Offset: begin.Offset, Length: nameToken.End() - begin.Offset})
	}

	var (
		annotations []*Annotation
		stars       []*Star
	)
	bucket := func(decorator Decorator) {
		span := decorator.SourceSpan()
		switch d := decorator.(type) {
		case *Annotation:
			annotations = append(annotations, d)
		case *Star:
			if len(stars) > 0 {
				p.handler.Handle(Diagnostic{Code: CodeDUPLICATE_STAR_DIRECTIVE, Offset: span.Offset, Length: span.Length})
				return
			}
			stars = append(stars, d)
		default:
			p.handler.Handle(Diagnostic{Code: CodeINVALID_DECORATOR_IN_NGCONTAINER, Offset: span.Offset, Length: span.Length})
		}
	}

	openEnd, selfClosing := p.parseOpenTagRest(bucket)
	if selfClosing {
		p.handler.Handle(Diagnostic{Code: CodeNONVOID_ELEMENT_USING_VOID_END, Offset: openEnd.Offset, Length: openEnd.Length()})
	}

	var children []Node
	var closeComplement *CloseElement
	if tooDeep {
		closeComplement = p.syntheticClose(ngContainerTag, openEnd.End())
	} else {
		children, closeComplement = p.parseChildren(ngContainerTag, begin, nameToken)
	}

	return &Container{
		baseNode:        baseNode{begin: begin, end: closeComplement.CloseToken},
		NameToken:       nameToken,
		Annotations:     annotations,
		Stars:           stars,
		Children:        children,
		CloseComplement: closeComplement,
	}
}

// parseEmbeddedContent parses `<ng-content>`: only the `select` and
// `ngProjectAs` decorators are legal, and the element must close immediately.
func (p *recursiveParser) parseEmbeddedContent(begin, nameToken Token) Node {
	tagSpanLength := nameToken.End() - begin.Offset

	var selectAttr, projectAs *Attribute
	bucket := func(decorator Decorator) {
		span := decorator.SourceSpan()
		attr, ok := decorator.(*Attribute)
		if !ok {
			p.handler.Handle(Diagnostic{Code: CodeINVALID_DECORATOR_IN_NGCONTENT, Offset: span.Offset, Length: span.Length})
			return
		}
		switch attr.Name {
		case "select":
			if selectAttr != nil {
				p.handler.Handle(Diagnostic{Code: CodeDUPLICATE_SELECT_DECORATOR, Offset: span.Offset, Length: span.Length})
				return
			}
			selectAttr = attr
		case "ngProjectAs":
			if projectAs != nil {
				p.handler.Handle(Diagnostic{Code: CodeDUPLICATE_PROJECT_AS_DECORATOR, Offset: span.Offset, Length: span.Length})
				return
			}
			projectAs = attr
		default:
			p.handler.Handle(Diagnostic{Code: CodeINVALID_DECORATOR_IN_NGCONTENT, Offset: span.Offset, Length: span.Length})
		}
	}

	openEnd, selfClosing := p.parseOpenTagRest(bucket)
	if selfClosing {
		p.handler.Handle(Diagnostic{Code: CodeNONVOID_ELEMENT_USING_VOID_END, Offset: openEnd.Offset, Length: openEnd.Length()})
	}

	// A single whitespace-only text node before the close tag is absorbed.
	if token, ok := p.reader.Peek(); ok && token.Type == TokenTypeTEXT && strings.TrimSpace(token.Lexeme) == "" {
		p.advance()
	}

	var closeComplement *CloseElement
	token, ok := p.advance()
	switch {
	case !ok || token.Type != TokenTypeCLOSE_ELEMENT_START:
		if ok {
			p.reader.PutBack(token)
		}
		p.handler.Handle(Diagnostic{Code: CodeNGCONTENT_MUST_CLOSE_IMMEDIATELY, Offset: begin.Offset, Length: tagSpanLength})
		offset := openEnd.End()
		if ok {
			offset = token.Offset
		}
		closeComplement = p.syntheticClose(ngContentTag, offset)
	default:
		peeked, okPeek := p.reader.Peek()
		if okPeek && peeked.Type == TokenTypeELEMENT_IDENTIFIER && peeked.Lexeme == ngContentTag {
			closeComplement = p.parseCloseElement(token)
		} else {
			p.reader.PutBack(token)
			p.handler.Handle(Diagnostic{Code: CodeNGCONTENT_MUST_CLOSE_IMMEDIATELY, Offset: begin.Offset, Length: tagSpanLength})
			closeComplement = p.syntheticClose(ngContentTag, token.Offset)
		}
	}

	return &EmbeddedContent{
		baseNode:        baseNode{begin: begin, end: closeComplement.CloseToken},
		NameToken:       nameToken,
		Select:          selectAttr,
		ProjectAs:       projectAs,
		CloseComplement: closeComplement,
	}
}

// parseChildren collects the children of an open element and finds or
// synthesizes its matching close tag. The element's name sits on the tag
// stack for the duration, which is what disambiguates a close tag that
// implicitly closes this element from a dangling one.
func (p *recursiveParser) parseChildren(name string, begin, nameToken Token) ([]Node, *CloseElement) {
	p.tagStack = append(p.tagStack, name)
	defer func() {
		p.tagStack = p.tagStack[:len(p.tagStack)-1]
	}()

	openSpanLength := nameToken.End() - begin.Offset
	var children []Node
	for {
		token, ok := p.advance()
		if !ok || token.Type == TokenTypeEOF {
			if ok {
				p.reader.PutBack(token)
			}
			offset := p.lastEnd
			if ok {
				offset = token.Offset
			}
			p.handler.Handle(Diagnostic{Code: CodeCANNOT_FIND_MATCHING_CLOSE, Offset: begin.Offset, Length: openSpanLength})
			return children, p.syntheticClose(name, offset)
		}

		if token.Type != TokenTypeCLOSE_ELEMENT_START {
			if node := p.parseStandalone(token); node != nil {
				children = append(children, node)
			}
			continue
		}

		closeName := ""
		if peeked, okPeek := p.reader.Peek(); okPeek && peeked.Type == TokenTypeELEMENT_IDENTIFIER {
			closeName = peeked.Lexeme
		}
		switch {
		case closeName == name:
			return children, p.parseCloseElement(token)
		case p.stackContains(closeName):
			// An enclosing element owns this close tag: the current element
			// is implicitly closed and the ancestor re-consumes the token.
			p.reader.PutBack(token)
			p.handler.Handle(Diagnostic{Code: CodeCANNOT_FIND_MATCHING_CLOSE, Offset: begin.Offset, Length: openSpanLength})
			return children, p.syntheticClose(name, token.Offset)
		default:
			children = append(children, p.parseDanglingClose(token, false))
		}
	}
}

// parseCloseElement consumes a close tag whose `</` has been consumed
func (p *recursiveParser) parseCloseElement(begin Token) *CloseElement {
	nameToken := p.expect(TokenTypeELEMENT_IDENTIFIER, "", begin.End())
	if p.options.VoidElements.Has(nameToken.Lexeme) {
		p.handler.Handle(Diagnostic{Code: CodeVOID_ELEMENT_IN_CLOSE_TAG, Offset: begin.Offset, Length: nameToken.End() - begin.Offset})
	}
	p.consumeWhitespace()
	closeToken := p.expect(TokenTypeCLOSE_ELEMENT_END, ">", nameToken.End())
	return &CloseElement{
		Name:       nameToken.Lexeme,
		OpenToken:  begin,
		NameToken:  nameToken,
		CloseToken: closeToken,
	}
}

func (p *recursiveParser) syntheticClose(name string, offset int) *CloseElement {
	return &CloseElement{
		Name:       name,
		OpenToken:  NewSyntheticToken(TokenTypeCLOSE_ELEMENT_START, "</", offset),
		NameToken:  NewSyntheticToken(TokenTypeELEMENT_IDENTIFIER, name, offset),
		CloseToken: NewSyntheticToken(TokenTypeCLOSE_ELEMENT_END, ">", offset),
	}
}

// parseDecorator classifies one decorator by its lead token(s). Legacy
// `on-`/`bind-`/`let-` prefixes are rewritten here; validity against the
// enclosing element kind is the bucketing step's job, not this one's.
func (p *recursiveParser) parseDecorator() Decorator {
	token, _ := p.advance()
	switch token.Type {
	case TokenTypeBANANA_PREFIX:
		nameToken := p.expect(TokenTypeELEMENT_DECORATOR, "", token.End())
		suffixToken := p.expect(TokenTypeBANANA_SUFFIX, ")]", nameToken.End())
		return &Banana{
			Name:        nameToken.Lexeme,
			PrefixToken: token,
			NameToken:   nameToken,
			SuffixToken: suffixToken,
			ValueToken:  p.parseOptionalValue(),
		}
	case TokenTypeEVENT_PREFIX:
		nameToken := p.expect(TokenTypeELEMENT_DECORATOR, "", token.End())
		suffixToken := p.expect(TokenTypeEVENT_SUFFIX, ")", nameToken.End())
		return &Event{
			Name:        nameToken.Lexeme,
			PrefixToken: &token,
			NameToken:   nameToken,
			SuffixToken: &suffixToken,
			ValueToken:  p.parseOptionalValue(),
		}
	case TokenTypePROPERTY_PREFIX:
		nameToken := p.expect(TokenTypeELEMENT_DECORATOR, "", token.End())
		suffixToken := p.expect(TokenTypePROPERTY_SUFFIX, "]", nameToken.End())
		if strings.Count(nameToken.Lexeme, ".") > 2 {
			p.handler.Handle(Diagnostic{Code: CodePROPERTY_NAME_TOO_MANY_FIXES, Offset: nameToken.Offset, Length: nameToken.Length()})
		}
		return &Property{
			Name:        nameToken.Lexeme,
			PrefixToken: &token,
			NameToken:   nameToken,
			SuffixToken: &suffixToken,
			ValueToken:  p.parseOptionalValue(),
		}
	case TokenTypeREFERENCE_PREFIX:
		nameToken := p.expect(TokenTypeELEMENT_DECORATOR, "", token.End())
		return &Reference{
			Name:        nameToken.Lexeme,
			PrefixToken: token,
			NameToken:   nameToken,
			ValueToken:  p.parseOptionalValue(),
		}
	case TokenTypeTEMPLATE_PREFIX:
		nameToken := p.expect(TokenTypeELEMENT_DECORATOR, "", token.End())
		return &Star{
			Name:        nameToken.Lexeme,
			PrefixToken: token,
			NameToken:   nameToken,
			ValueToken:  p.parseOptionalValue(),
		}
	case TokenTypeANNOTATION_PREFIX:
		nameToken := p.expect(TokenTypeELEMENT_DECORATOR, "", token.End())
		return &Annotation{
			Name:        nameToken.Lexeme,
			PrefixToken: token,
			NameToken:   nameToken,
			ValueToken:  p.parseOptionalValue(),
		}
	default:
		return p.parseBareDecorator(token)
	}
}

func (p *recursiveParser) parseBareDecorator(nameToken Token) Decorator {
	name := nameToken.Lexeme
	valueToken := p.parseOptionalValue()

	reportEmpty := func(rest string) {
		if rest == "" {
			p.handler.Handle(Diagnostic{Code: CodeELEMENT_DECORATOR_AFTER_PREFIX, Offset: nameToken.Offset, Length: nameToken.Length()})
		}
	}
	switch {
	case strings.HasPrefix(name, "on-"):
		rest := strings.TrimPrefix(name, "on-")
		reportEmpty(rest)
		return &Event{Name: rest, NameToken: nameToken, ValueToken: valueToken}
	case strings.HasPrefix(name, "bind-"):
		rest := strings.TrimPrefix(name, "bind-")
		reportEmpty(rest)
		return &Property{Name: rest, NameToken: nameToken, ValueToken: valueToken}
	case strings.HasPrefix(name, "let-"):
		rest := strings.TrimPrefix(name, "let-")
		reportEmpty(rest)
		return &LetBinding{Name: rest, NameToken: nameToken, ValueToken: valueToken}
	}

	attr := &Attribute{Name: name, NameToken: nameToken, ValueToken: valueToken}
	if valueToken != nil {
		attr.Mustaches = p.scanMustaches(*valueToken)
	}
	return attr
}

func (p *recursiveParser) parseOptionalValue() *Token {
	tokenType, ok := p.reader.PeekTypeIgnoring(TokenTypeWHITESPACE)
	if !ok || tokenType != TokenTypeBEFORE_DECORATOR_VALUE {
		return nil
	}
	p.consumeWhitespace()
	equals, _ := p.advance()
	p.consumeWhitespace()
	if tokenType, ok := p.reader.PeekType(); ok && tokenType == TokenTypeELEMENT_DECORATOR_VALUE {
		token, _ := p.advance()
		return &token
	}
	value := NewSyntheticToken(TokenTypeELEMENT_DECORATOR_VALUE, "", equals.End())
	return &value
}

// scanMustaches scans a plain attribute's raw value text left to right for
// `{{` / `}}` pairs. Emitted spans carry absolute source offsets (value-token
// offset plus in-text position), not text-relative ones.
func (p *recursiveParser) scanMustaches(valueToken Token) []*Interpolation {
	text := valueToken.Lexeme
	base := valueToken.Offset
	var out []*Interpolation
	open := -1
	i := 0
	for i < len(text) {
		switch {
		case strings.HasPrefix(text[i:], "{{"):
			if open >= 0 {
				p.handler.Handle(Diagnostic{Code: CodeUNTERMINATED_MUSTACHE, Offset: base + open, Length: 2})
				out = append(out, &Interpolation{
					baseNode: baseNode{
						begin: NewToken(TokenTypeINTERPOLATION_START, "{{", base+open),
						end:   NewSyntheticToken(TokenTypeINTERPOLATION_END, "}}", base+i),
					},
					Value: text[open+2 : i],
				})
			}
			open = i
			i += 2
		case strings.HasPrefix(text[i:], "}}"):
			if open >= 0 {
				out = append(out, &Interpolation{
					baseNode: baseNode{
						begin: NewToken(TokenTypeINTERPOLATION_START, "{{", base+open),
						end:   NewToken(TokenTypeINTERPOLATION_END, "}}", base+i),
					},
					Value: text[open+2 : i],
				})
				open = -1
			} else {
				p.handler.Handle(Diagnostic{Code: CodeUNOPENED_MUSTACHE, Offset: base + i, Length: 2})
				out = append(out, &Interpolation{
					baseNode: baseNode{
						begin: NewSyntheticToken(TokenTypeINTERPOLATION_START, "{{", base+i),
						end:   NewToken(TokenTypeINTERPOLATION_END, "}}", base+i),
					},
				})
			}
			i += 2
		default:
			i++
		}
	}
	if open >= 0 {
		p.handler.Handle(Diagnostic{Code: CodeUNTERMINATED_MUSTACHE, Offset: base + open, Length: 2})
		out = append(out, &Interpolation{
			baseNode: baseNode{
				begin: NewToken(TokenTypeINTERPOLATION_START, "{{", base+open),
				end:   NewSyntheticToken(TokenTypeINTERPOLATION_END, "}}", base+len(text)),
			},
			Value: text[open+2:],
		})
	}
	return out
}
