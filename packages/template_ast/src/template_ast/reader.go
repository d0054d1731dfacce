package template_ast

// TokenReader is a reversible cursor over a token sequence: sequential
// consumption with one-token-class lookahead and single-token pushback.
type TokenReader struct {
	tokens   []Token
	index    int
	pushback *Token
}

// NewTokenReader creates a new TokenReader over the given tokens
func NewTokenReader(tokens []Token) *TokenReader {
	return &TokenReader{
		tokens: tokens,
	}
}

// Next consumes and returns the next token. The second return value is false
// once the stream is exhausted.
func (r *TokenReader) Next() (Token, bool) {
	if r.pushback != nil {
		token := *r.pushback
		r.pushback = nil
		return token, true
	}
	if r.index >= len(r.tokens) {
		return Token{}, false
	}
	token := r.tokens[r.index]
	r.index++
	return token, true
}

// Peek returns the next token without consuming it
func (r *TokenReader) Peek() (Token, bool) {
	if r.pushback != nil {
		return *r.pushback, true
	}
	if r.index >= len(r.tokens) {
		return Token{}, false
	}
	return r.tokens[r.index], true
}

// PeekType returns the type of the next token without consuming it
func (r *TokenReader) PeekType() (TokenType, bool) {
	token, ok := r.Peek()
	if !ok {
		return 0, false
	}
	return token.Type, true
}

// PeekTypeIgnoring returns the type of the first upcoming token whose type is
// not the given one, without consuming anything
func (r *TokenReader) PeekTypeIgnoring(ignore TokenType) (TokenType, bool) {
	if r.pushback != nil && r.pushback.Type != ignore {
		return r.pushback.Type, true
	}
	for i := r.index; i < len(r.tokens); i++ {
		if r.tokens[i].Type != ignore {
			return r.tokens[i].Type, true
		}
	}
	return 0, false
}

// PutBack pushes a previously consumed token back for re-consumption by the
// next call to Next. At most one token of pushback capacity exists; pushing a
// second token without an intervening Next is a programming error.
func (r *TokenReader) PutBack(token Token) {
	if r.pushback != nil {
		panic("TokenReader: pushback capacity is a single token")
	}
	r.pushback = &token
}
