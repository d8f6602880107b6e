package prop_lexer

import (
	"fmt"
	"sort"
)

// Operator enumerates the five logical connectives. The declaration order
// is catalogue order; binding strength is carried separately in each
// operator's spec.
type Operator int

const (
	Negation Operator = iota
	Conjunction
	Disjunction
	MaterialConditional
	Biconditional
)

// OperatorSpec carries the static details of one operator.
type OperatorSpec struct {
	InputForm  string // the ASCII form the operator is typed as
	ActualForm string // the canonical form the operator renders as
	Priority   int    // binding priority, larger binds tighter
}

var operatorSpecs = [...]OperatorSpec{
	Negation:            {"!", "¬", 100},
	Conjunction:         {"&", "∧", 90},
	Disjunction:         {"|", "∨", 80},
	MaterialConditional: {"~", "→", 70},
	Biconditional:       {"=", "↔", 60},
}

var operatorNames = [...]string{
	Negation:            "Negation",
	Conjunction:         "Conjunction",
	Disjunction:         "Disjunction",
	MaterialConditional: "MaterialConditional",
	Biconditional:       "Biconditional",
}

// operatorMatchOrder lists the operators with longer input forms first, so
// the scanner keeps taking the maximal munch if multi-rune forms are ever
// added to the catalogue.
var operatorMatchOrder = func() []Operator {
	order := Operators()
	sort.SliceStable(order, func(i, j int) bool {
		return len(operatorSpecs[order[i]].InputForm) >
			len(operatorSpecs[order[j]].InputForm)
	})
	return order
}()

// UnknownOperatorError is returned when no catalogue entry has the
// requested input form.
type UnknownOperatorError struct {
	InputForm string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("no operator has input form %q", e.InputForm)
}

// Operators returns the operator catalogue in catalogue order.
func Operators() []Operator {
	ops := make([]Operator, len(operatorSpecs))
	for idx := range operatorSpecs {
		ops[idx] = Operator(idx)
	}
	return ops
}

// OperatorFromInputForm
// Returns the Operator typed as the given input form, or an
// UnknownOperatorError if no catalogue entry matches.
func OperatorFromInputForm(form string) (Operator, error) {
	for _, op := range Operators() {
		if operatorSpecs[op].InputForm == form {
			return op, nil
		}
	}
	return 0, &UnknownOperatorError{InputForm: form}
}

// Spec returns the operator's static details.
func (op Operator) Spec() OperatorSpec {
	return operatorSpecs[op]
}

// InputForm returns the ASCII form the operator is typed as.
func (op Operator) InputForm() string {
	return operatorSpecs[op].InputForm
}

// ActualForm returns the canonical form the operator renders as.
func (op Operator) ActualForm() string {
	return operatorSpecs[op].ActualForm
}

// Priority returns the operator's binding priority. It is carried for the
// benefit of a parser and not consulted while scanning.
func (op Operator) Priority() int {
	return operatorSpecs[op].Priority
}

func (op Operator) String() string {
	return operatorNames[op]
}
