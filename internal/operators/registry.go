package operators

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a registered operator.
type Kind string

// Operator kinds.
const (
	KindForward   Kind = "forward"
	KindBackward  Kind = "backward"
	KindPredicate Kind = "predicate"
)

// Entry describes a float64 operator callable by name.
type Entry struct {
	Name     string
	Arity    int
	Kind     Kind
	Fallible bool

	call  func(args []float64) (float64, error)
	unary func(float64) float64
}

// Call evaluates the operator. Predicates return 1 for true and 0 for false.
func (e Entry) Call(args ...float64) (float64, error) {
	if len(args) != e.Arity {
		return 0, fmt.Errorf("%s: expected %d argument(s), got %d", e.Name, e.Arity, len(args))
	}
	return e.call(args)
}

// Unary returns the operator as a Unary when it takes one argument and cannot fail.
func (e Entry) Unary() (func(float64) float64, bool) {
	return e.unary, e.unary != nil
}

// Format renders a value returned by Call.
func (e Entry) Format(v float64) string {
	if e.Kind == KindPredicate {
		return strconv.FormatBool(v != 0)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func unary(name string, kind Kind, fn Unary[float64]) Entry {
	return Entry{
		Name:  name,
		Arity: 1,
		Kind:  kind,
		call:  func(args []float64) (float64, error) { return fn(args[0]), nil },
		unary: fn,
	}
}

func binary(name string, kind Kind, fn Binary[float64]) Entry {
	return Entry{
		Name:  name,
		Arity: 2,
		Kind:  kind,
		call:  func(args []float64) (float64, error) { return fn(args[0], args[1]), nil },
	}
}

func predicate(name string, fn func(a, b float64) bool) Entry {
	return Entry{
		Name:  name,
		Arity: 2,
		Kind:  KindPredicate,
		call: func(args []float64) (float64, error) {
			if fn(args[0], args[1]) {
				return 1, nil
			}
			return 0, nil
		},
	}
}

func fallible1(name string, fn func(a float64) (float64, error)) Entry {
	return Entry{
		Name:     name,
		Arity:    1,
		Kind:     KindForward,
		Fallible: true,
		call:     func(args []float64) (float64, error) { return fn(args[0]) },
	}
}

func fallible2(name string, fn func(x, d float64) (float64, error)) Entry {
	return Entry{
		Name:     name,
		Arity:    2,
		Kind:     KindBackward,
		Fallible: true,
		call:     func(args []float64) (float64, error) { return fn(args[0], args[1]) },
	}
}

var registry = []Entry{
	binary("mul", KindForward, Mul[float64]),
	unary("id", KindForward, ID[float64]),
	binary("add", KindForward, Add[float64]),
	unary("neg", KindForward, Neg[float64]),
	predicate("lt", LT[float64]),
	predicate("eq", EQ[float64]),
	binary("max", KindForward, Max[float64]),
	predicate("is_close", IsClose[float64]),
	unary("sigmoid", KindForward, Sigmoid[float64]),
	unary("relu", KindForward, ReLU[float64]),
	fallible1("log", Log[float64]),
	unary("exp", KindForward, Exp[float64]),
	fallible1("inv", Inv[float64]),
	fallible2("log_back", LogBack[float64]),
	fallible2("inv_back", InvBack[float64]),
	binary("relu_back", KindBackward, ReLUBack[float64]),
	binary("exp_back", KindBackward, ExpBack[float64]),
	binary("sigmoid_back", KindBackward, SigmoidBack[float64]),
}

// Entries returns all registered operators in registration order.
func Entries() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a registered operator by name (case-insensitive, '-' and '_' are equivalent).
func Lookup(name string) (Entry, error) {
	key := strings.ReplaceAll(strings.ToLower(name), "-", "_")
	for _, e := range registry {
		if e.Name == key {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
}
