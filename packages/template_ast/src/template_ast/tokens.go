package template_ast

import "ngast-go/packages/template_ast/src/util"

// TokenType represents the type of a template token
type TokenType int

const (
	TokenTypeCOMMENT_START TokenType = iota // `<!--`
	TokenTypeCOMMENT_VALUE
	TokenTypeCOMMENT_END       // `-->`
	TokenTypeOPEN_ELEMENT_START // `<`
	TokenTypeELEMENT_IDENTIFIER
	TokenTypeOPEN_ELEMENT_END      // `>`
	TokenTypeOPEN_ELEMENT_END_VOID // `/>`
	TokenTypeCLOSE_ELEMENT_START   // `</`
	TokenTypeCLOSE_ELEMENT_END     // `>`
	TokenTypeELEMENT_DECORATOR
	TokenTypeELEMENT_DECORATOR_VALUE
	TokenTypeBEFORE_DECORATOR_VALUE // `=`
	TokenTypeBANANA_PREFIX          // `[(`
	TokenTypeBANANA_SUFFIX          // `)]`
	TokenTypeEVENT_PREFIX           // `(`
	TokenTypeEVENT_SUFFIX           // `)`
	TokenTypePROPERTY_PREFIX        // `[`
	TokenTypePROPERTY_SUFFIX        // `]`
	TokenTypeREFERENCE_PREFIX       // `#`
	TokenTypeTEMPLATE_PREFIX        // `*`
	TokenTypeANNOTATION_PREFIX      // `@`
	TokenTypeINTERPOLATION_START    // `{{`
	TokenTypeINTERPOLATION_VALUE
	TokenTypeINTERPOLATION_END // `}}`
	TokenTypeTEXT
	TokenTypeWHITESPACE
	TokenTypeEOF
)

var tokenTypeNames = map[TokenType]string{
	TokenTypeCOMMENT_START:           "COMMENT_START",
	TokenTypeCOMMENT_VALUE:           "COMMENT_VALUE",
	TokenTypeCOMMENT_END:             "COMMENT_END",
	TokenTypeOPEN_ELEMENT_START:      "OPEN_ELEMENT_START",
	TokenTypeELEMENT_IDENTIFIER:      "ELEMENT_IDENTIFIER",
	TokenTypeOPEN_ELEMENT_END:        "OPEN_ELEMENT_END",
	TokenTypeOPEN_ELEMENT_END_VOID:   "OPEN_ELEMENT_END_VOID",
	TokenTypeCLOSE_ELEMENT_START:     "CLOSE_ELEMENT_START",
	TokenTypeCLOSE_ELEMENT_END:       "CLOSE_ELEMENT_END",
	TokenTypeELEMENT_DECORATOR:       "ELEMENT_DECORATOR",
	TokenTypeELEMENT_DECORATOR_VALUE: "ELEMENT_DECORATOR_VALUE",
	TokenTypeBEFORE_DECORATOR_VALUE:  "BEFORE_DECORATOR_VALUE",
	TokenTypeBANANA_PREFIX:           "BANANA_PREFIX",
	TokenTypeBANANA_SUFFIX:           "BANANA_SUFFIX",
	TokenTypeEVENT_PREFIX:            "EVENT_PREFIX",
	TokenTypeEVENT_SUFFIX:            "EVENT_SUFFIX",
	TokenTypePROPERTY_PREFIX:         "PROPERTY_PREFIX",
	TokenTypePROPERTY_SUFFIX:         "PROPERTY_SUFFIX",
	TokenTypeREFERENCE_PREFIX:        "REFERENCE_PREFIX",
	TokenTypeTEMPLATE_PREFIX:         "TEMPLATE_PREFIX",
	TokenTypeANNOTATION_PREFIX:       "ANNOTATION_PREFIX",
	TokenTypeINTERPOLATION_START:     "INTERPOLATION_START",
	TokenTypeINTERPOLATION_VALUE:     "INTERPOLATION_VALUE",
	TokenTypeINTERPOLATION_END:       "INTERPOLATION_END",
	TokenTypeTEXT:                    "TEXT",
	TokenTypeWHITESPACE:              "WHITESPACE",
	TokenTypeEOF:                     "EOF",
}

// String returns the name of the token type
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a single lexical token. Tokens are immutable values;
// synthetic tokens are generated by the parser during recovery and carry a
// zero-length span at a chosen offset.
type Token struct {
	Type      TokenType
	Lexeme    string
	Offset    int
	Synthetic bool
}

// NewToken creates a new Token
func NewToken(tokenType TokenType, lexeme string, offset int) Token {
	return Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Offset: offset,
	}
}

// NewSyntheticToken creates a parser-generated placeholder token. The lexeme
// records what the token stands for but contributes no length: the token does
// not correspond to real source text.
func NewSyntheticToken(tokenType TokenType, lexeme string, offset int) Token {
	return Token{
		Type:      tokenType,
		Lexeme:    lexeme,
		Offset:    offset,
		Synthetic: true,
	}
}

// Length returns the number of source characters the token covers
func (t Token) Length() int {
	if t.Synthetic {
		return 0
	}
	return len(t.Lexeme)
}

// End returns the offset one past the token
func (t Token) End() int {
	return t.Offset + t.Length()
}

// SourceSpan returns the span the token covers
func (t Token) SourceSpan() util.SourceSpan {
	return util.NewSourceSpan(t.Offset, t.Length())
}
