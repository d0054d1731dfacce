package template_ast

import "strings"

// Tokenize scans template source text into the token sequence the parser
// consumes. The scanner is lenient: malformed input never aborts it, it
// simply produces the tokens it can and leaves recovery to the parser.
func Tokenize(source string) []Token {
	t := &tokenizer{src: source}
	for t.pos < len(t.src) {
		switch {
		case t.hasPrefix("<!--"):
			t.scanComment()
		case t.hasPrefix("</"):
			t.scanCloseTag()
		case t.src[t.pos] == '<' && t.pos+1 < len(t.src) && isNameStartChar(t.src[t.pos+1]):
			t.scanOpenTag()
		case t.hasPrefix("{{"):
			t.scanInterpolation()
		default:
			t.scanText()
		}
	}
	t.emit(TokenTypeEOF, "", t.pos)
	return t.tokens
}

type tokenizer struct {
	src    string
	pos    int
	tokens []Token
}

func (t *tokenizer) emit(tokenType TokenType, lexeme string, offset int) {
	t.tokens = append(t.tokens, NewToken(tokenType, lexeme, offset))
}

func (t *tokenizer) hasPrefix(prefix string) bool {
	return strings.HasPrefix(t.src[t.pos:], prefix)
}

func (t *tokenizer) scanComment() {
	t.emit(TokenTypeCOMMENT_START, "<!--", t.pos)
	t.pos += 4
	start := t.pos
	idx := strings.Index(t.src[t.pos:], "-->")
	if idx < 0 {
		if start < len(t.src) {
			t.emit(TokenTypeCOMMENT_VALUE, t.src[start:], start)
		}
		t.pos = len(t.src)
		return
	}
	if idx > 0 {
		t.emit(TokenTypeCOMMENT_VALUE, t.src[start:start+idx], start)
	}
	t.emit(TokenTypeCOMMENT_END, "-->", start+idx)
	t.pos = start + idx + 3
}

func (t *tokenizer) scanCloseTag() {
	t.emit(TokenTypeCLOSE_ELEMENT_START, "</", t.pos)
	t.pos += 2
	if t.pos < len(t.src) && isNameStartChar(t.src[t.pos]) {
		t.scanName(TokenTypeELEMENT_IDENTIFIER)
	}
	t.scanWhitespace()
	if t.pos < len(t.src) && t.src[t.pos] == '>' {
		t.emit(TokenTypeCLOSE_ELEMENT_END, ">", t.pos)
		t.pos++
	}
}

func (t *tokenizer) scanOpenTag() {
	t.emit(TokenTypeOPEN_ELEMENT_START, "<", t.pos)
	t.pos++
	t.scanName(TokenTypeELEMENT_IDENTIFIER)
	for t.pos < len(t.src) {
		c := t.src[t.pos]
		switch {
		case isWhitespaceChar(c):
			t.scanWhitespace()
		case t.hasPrefix("/>"):
			t.emit(TokenTypeOPEN_ELEMENT_END_VOID, "/>", t.pos)
			t.pos += 2
			return
		case c == '>':
			t.emit(TokenTypeOPEN_ELEMENT_END, ">", t.pos)
			t.pos++
			return
		case t.hasPrefix("[("):
			t.emit(TokenTypeBANANA_PREFIX, "[(", t.pos)
			t.pos += 2
			t.scanDecoratorName()
			if t.hasPrefix(")]") {
				t.emit(TokenTypeBANANA_SUFFIX, ")]", t.pos)
				t.pos += 2
			}
		case c == '[':
			t.emit(TokenTypePROPERTY_PREFIX, "[", t.pos)
			t.pos++
			t.scanDecoratorName()
			if t.pos < len(t.src) && t.src[t.pos] == ']' {
				t.emit(TokenTypePROPERTY_SUFFIX, "]", t.pos)
				t.pos++
			}
		case c == '(':
			t.emit(TokenTypeEVENT_PREFIX, "(", t.pos)
			t.pos++
			t.scanDecoratorName()
			if t.pos < len(t.src) && t.src[t.pos] == ')' {
				t.emit(TokenTypeEVENT_SUFFIX, ")", t.pos)
				t.pos++
			}
		case c == '#':
			t.emit(TokenTypeREFERENCE_PREFIX, "#", t.pos)
			t.pos++
			t.scanDecoratorName()
		case c == '*':
			t.emit(TokenTypeTEMPLATE_PREFIX, "*", t.pos)
			t.pos++
			t.scanDecoratorName()
		case c == '@':
			t.emit(TokenTypeANNOTATION_PREFIX, "@", t.pos)
			t.pos++
			t.scanDecoratorName()
		case c == '=':
			t.emit(TokenTypeBEFORE_DECORATOR_VALUE, "=", t.pos)
			t.pos++
			t.scanDecoratorValue()
		case isNameStartChar(c):
			t.scanName(TokenTypeELEMENT_DECORATOR)
		default:
			// Unrecognized character inside a tag; skip it.
			t.pos++
		}
	}
}

func (t *tokenizer) scanDecoratorName() {
	if t.pos < len(t.src) && isNameStartChar(t.src[t.pos]) {
		t.scanName(TokenTypeELEMENT_DECORATOR)
	}
}

func (t *tokenizer) scanDecoratorValue() {
	t.scanWhitespace()
	if t.pos >= len(t.src) {
		return
	}
	if c := t.src[t.pos]; c == '"' || c == '\'' {
		start := t.pos + 1
		idx := strings.IndexByte(t.src[start:], c)
		if idx < 0 {
			t.emit(TokenTypeELEMENT_DECORATOR_VALUE, t.src[start:], start)
			t.pos = len(t.src)
			return
		}
		t.emit(TokenTypeELEMENT_DECORATOR_VALUE, t.src[start:start+idx], start)
		t.pos = start + idx + 1
		return
	}
	start := t.pos
	for t.pos < len(t.src) && !isWhitespaceChar(t.src[t.pos]) && t.src[t.pos] != '>' && !t.hasPrefix("/>") {
		t.pos++
	}
	if t.pos > start {
		t.emit(TokenTypeELEMENT_DECORATOR_VALUE, t.src[start:t.pos], start)
	}
}

func (t *tokenizer) scanInterpolation() {
	t.emit(TokenTypeINTERPOLATION_START, "{{", t.pos)
	t.pos += 2
	start := t.pos
	idx := strings.Index(t.src[t.pos:], "}}")
	if idx < 0 {
		if start < len(t.src) {
			t.emit(TokenTypeINTERPOLATION_VALUE, t.src[start:], start)
		}
		t.pos = len(t.src)
		return
	}
	if idx > 0 {
		t.emit(TokenTypeINTERPOLATION_VALUE, t.src[start:start+idx], start)
	}
	t.emit(TokenTypeINTERPOLATION_END, "}}", start+idx)
	t.pos = start + idx + 2
}

func (t *tokenizer) scanText() {
	start := t.pos
	for t.pos < len(t.src) {
		if t.hasPrefix("{{") || t.hasPrefix("<!--") || t.hasPrefix("</") {
			break
		}
		if t.src[t.pos] == '<' && t.pos+1 < len(t.src) && isNameStartChar(t.src[t.pos+1]) {
			break
		}
		t.pos++
	}
	if t.pos == start {
		// Lone trailing marker character; consume it as text.
		t.pos++
	}
	t.emit(TokenTypeTEXT, t.src[start:t.pos], start)
}

func (t *tokenizer) scanWhitespace() {
	start := t.pos
	for t.pos < len(t.src) && isWhitespaceChar(t.src[t.pos]) {
		t.pos++
	}
	if t.pos > start {
		t.emit(TokenTypeWHITESPACE, t.src[start:t.pos], start)
	}
}

func (t *tokenizer) scanName(tokenType TokenType) {
	start := t.pos
	for t.pos < len(t.src) && isNameChar(t.src[t.pos]) {
		t.pos++
	}
	t.emit(tokenType, t.src[start:t.pos], start)
}

func isWhitespaceChar(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isNameStartChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isNameChar(c byte) bool {
	return isNameStartChar(c) || c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == ':' || c == '$'
}
