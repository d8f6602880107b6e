package prop_lexer

import (
	"fmt"
	"unicode"

	lru "github.com/hashicorp/golang-lru"
)

const TOKEN_LRU_SZ = 4096

type TokenType int

const (
	SymbolToken TokenType = iota
	OperatorToken
	LeftParenToken
	RightParenToken
)

// Token is one classified unit of lexical input. Position is the
// zero-based rune offset of the token's first character in the original
// input. Symbol and Operator are only meaningful for their respective
// token types.
type Token struct {
	Type     TokenType
	Symbol   Symbol
	Operator Operator
	Position int
}

type Tokens []Token

func (token Token) String() string {
	switch token.Type {
	case SymbolToken:
		return fmt.Sprintf("SymbolToken(%s, %d)",
			token.Symbol.Letter(), token.Position)
	case OperatorToken:
		return fmt.Sprintf("OperatorToken(%s, %d)",
			token.Operator, token.Position)
	case LeftParenToken:
		return fmt.Sprintf("LeftParenToken(%d)", token.Position)
	case RightParenToken:
		return fmt.Sprintf("RightParenToken(%d)", token.Position)
	default:
		panic(fmt.Sprintf(
			"prop_lexer: token has impossible type %d", token.Type))
	}
}

// ActualForm renders the token the way it appears in canonical output:
// the uppercase letter for a symbol, the display form for an operator,
// the parenthesis itself otherwise.
func (token Token) ActualForm() string {
	switch token.Type {
	case SymbolToken:
		return token.Symbol.Letter()
	case OperatorToken:
		return token.Operator.ActualForm()
	case LeftParenToken:
		return "("
	case RightParenToken:
		return ")"
	default:
		panic(fmt.Sprintf(
			"prop_lexer: token has impossible type %d", token.Type))
	}
}

// LexicalAnalysisFailedError reports the first character the scanner
// could not classify. Column is 1-based.
type LexicalAnalysisFailedError struct {
	Column int
	Char   rune
}

func (e *LexicalAnalysisFailedError) Error() string {
	return fmt.Sprintf("lexical analysis failed: %q at column %d",
		e.Char, e.Column)
}

// Lexer tokenizes propositional formulas. Materialized results are
// memoized in an ARC cache keyed by the input string; LruHits and
// LruMisses count cache traffic. Construct with NewLexer.
type Lexer struct {
	Cache     *lru.ARCCache
	LruHits   int
	LruMisses int
}

func NewLexer() *Lexer {
	cache, _ := lru.NewARC(TOKEN_LRU_SZ)
	return &Lexer{Cache: cache}
}

// NextTokenFunc is an iterator over a token stream. Each call yields the
// next token, or (nil, nil) once the input is exhausted, or an error at
// the first character that cannot be classified. The iterator is forward
// only and cannot be rewound; scanning the same input again requires a
// fresh stream.
type NextTokenFunc func() (*Token, error)

// TokenStream
// Returns a lazy iterator over the tokens of the input. Tokens are
// produced in a single left-to-right pass; at each position the scanner
// tries, in order: an ASCII letter, an operator input form, a
// parenthesis, a whitespace run (consumed silently), and otherwise fails
// with a LexicalAnalysisFailedError for that position. A failed iterator
// keeps returning the same error; an exhausted one keeps returning nil.
// Tokens already produced before a failure remain valid.
func (lexer *Lexer) TokenStream(input *string) NextTokenFunc {
	runes := []rune(*input)
	cursor := 0
	var failure error
	return func() (*Token, error) {
		if failure != nil {
			return nil, failure
		}
		for cursor < len(runes) {
			r := runes[cursor]
			if isASCIILetter(r) {
				symbol, err := SymbolFromLetter(string(r))
				if err != nil {
					panic(fmt.Sprintf(
						"prop_lexer: symbol table rejected scanned letter %q: %v",
						r, err))
				}
				token := Token{Type: SymbolToken, Symbol: symbol,
					Position: cursor}
				cursor++
				return &token, nil
			}
			if op, length, ok := matchOperator(runes[cursor:]); ok {
				token := Token{Type: OperatorToken, Operator: op,
					Position: cursor}
				cursor += length
				return &token, nil
			}
			if r == '(' || r == ')' {
				tokenType := LeftParenToken
				if r == ')' {
					tokenType = RightParenToken
				}
				token := Token{Type: tokenType, Position: cursor}
				cursor++
				return &token, nil
			}
			if unicode.IsSpace(r) {
				for cursor < len(runes) && unicode.IsSpace(runes[cursor]) {
					cursor++
				}
				continue
			}
			failure = &LexicalAnalysisFailedError{Column: cursor + 1,
				Char: r}
			return nil, failure
		}
		return nil, nil
	}
}

// Tokenize materializes the full token sequence for the input. The
// returned slice is the caller's to keep; cached entries are copied out,
// never shared.
func (lexer *Lexer) Tokenize(input *string) (*Tokens, error) {
	if lookup, ok := lexer.Cache.Get(*input); ok {
		lexer.LruHits++
		cached := lookup.(Tokens)
		tokens := make(Tokens, len(cached))
		copy(tokens, cached)
		return &tokens, nil
	}
	lexer.LruMisses++
	nextToken := lexer.TokenStream(input)
	tokens := make(Tokens, 0, len(*input))
	for {
		token, err := nextToken()
		if err != nil {
			return nil, err
		}
		if token == nil {
			break
		}
		tokens = append(tokens, *token)
	}
	cached := make(Tokens, len(tokens))
	copy(cached, tokens)
	lexer.Cache.Add(*input, cached)
	return &tokens, nil
}

// matchOperator reports the operator whose input form prefixes the
// remaining input, along with the form's rune length. Longer forms are
// tried first. A match the catalogue cannot resolve back to an operator
// is an invariant violation and panics.
func matchOperator(remaining []rune) (Operator, int, bool) {
	for _, op := range operatorMatchOrder {
		form := []rune(operatorSpecs[op].InputForm)
		if len(form) > len(remaining) {
			continue
		}
		matched := true
		for idx := range form {
			if remaining[idx] != form[idx] {
				matched = false
				break
			}
		}
		if matched {
			resolved, err := OperatorFromInputForm(string(form))
			if err != nil {
				panic(fmt.Sprintf(
					"prop_lexer: operator table cannot resolve matched form %q: %v",
					string(form), err))
			}
			return resolved, len(form), true
		}
	}
	return 0, 0, false
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
