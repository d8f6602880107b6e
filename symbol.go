package prop_lexer

import "fmt"

// Symbol is a single propositional variable, identified by one of the 26
// uppercase letters. Symbol values are in [0, 25]; the zero value is the
// symbol `A`.
type Symbol int

// InvalidSymbolError is returned when a string cannot be converted into a
// Symbol because it is not exactly one ASCII letter.
type InvalidSymbolError struct {
	Input string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol: %q is not a single letter", e.Input)
}

// SymbolFromLetter
// Returns the Symbol for the given letter. The letter must be exactly one
// ASCII letter; either case is accepted, and the Symbol always renders as
// uppercase. Anything else fails with an InvalidSymbolError.
func SymbolFromLetter(letter string) (Symbol, error) {
	runes := []rune(letter)
	if len(runes) != 1 {
		return 0, &InvalidSymbolError{Input: letter}
	}
	r := runes[0]
	switch {
	case r >= 'A' && r <= 'Z':
		return Symbol(r - 'A'), nil
	case r >= 'a' && r <= 'z':
		return Symbol(r - 'a'), nil
	default:
		return 0, &InvalidSymbolError{Input: letter}
	}
}

// Letter returns the uppercase letter the Symbol stands for. It is the
// inverse of SymbolFromLetter.
func (symbol Symbol) Letter() string {
	return string(rune('A' + symbol))
}

func (symbol Symbol) String() string {
	return fmt.Sprintf("Symbol(%s)", symbol.Letter())
}
