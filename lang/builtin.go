package lang

import (
	"math"
	"slices"
)

// builtin is an arithmetic operator folded over a funcall's arguments.
type builtin struct {
	name      string
	signature string
	ints      func(x, y int64) (int64, error)
	floats    func(x, y float64) float64
}

var builtins = []builtin{
	{
		name:      "+",
		signature: "(+ number number...) -> sum",
		ints:      func(x, y int64) (int64, error) { return x + y, nil },
		floats:    func(x, y float64) float64 { return x + y },
	},
	{
		name:      "-",
		signature: "(- number number...) -> difference",
		ints:      func(x, y int64) (int64, error) { return x - y, nil },
		floats:    func(x, y float64) float64 { return x - y },
	},
	{
		name:      "*",
		signature: "(* number number...) -> product",
		ints:      func(x, y int64) (int64, error) { return x * y, nil },
		floats:    func(x, y float64) float64 { return x * y },
	},
	{
		name:      "/",
		signature: "(/ number number...) -> quotient",
		ints: func(x, y int64) (int64, error) {
			if y == 0 {
				return 0, ErrDivideByZero
			}

			if x == math.MinInt64 && y == -1 {
				return x, nil
			}

			return x / y, nil
		},
		floats: func(x, y float64) float64 { return x / y },
	},
}

func lookupBuiltin(name string) (builtin, bool) {
	i := slices.IndexFunc(builtins, func(b builtin) bool { return b.name == name })
	if i < 0 {
		return builtin{}, false
	}

	return builtins[i], true
}

// Builtins returns the names of the builtin functions in declaration order.
func Builtins() []string {
	names := make([]string, len(builtins))
	for i, b := range builtins {
		names[i] = b.name
	}

	return names
}

// Signature returns a one-line usage summary of the named builtin.
func Signature(name string) (string, bool) {
	b, ok := lookupBuiltin(name)

	return b.signature, ok
}
