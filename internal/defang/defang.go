package defang

import (
	"fmt"
	"strings"
)

// AbsentValue is how an absent resource renders inside a message template.
const AbsentValue = "None"

const schemeSeparator = "://"

// Policy selects which defanging transform is applied.
type Policy int

const (
	// PolicyFull rewrites every "http", "://" and "." in the value.
	PolicyFull Policy = iota
	// PolicyScheme rewrites only the scheme, the separator and the dots after it.
	PolicyScheme
)

var (
	fullReplacer   = strings.NewReplacer("http", "hxxp", schemeSeparator, "[://]", ".", "[.]")
	schemeReplacer = strings.NewReplacer("t", "x", "T", "X")
	dotReplacer    = strings.NewReplacer(".", "[.]")
)

// ParsePolicy converts a policy name to a Policy.
//
// Supported names: full, scheme. The empty string selects PolicyFull.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "full":
		return PolicyFull, nil
	case "scheme":
		return PolicyScheme, nil
	default:
		return PolicyFull, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyFull:
		return "full"
	case PolicyScheme:
		return "scheme"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// String defangs a single value and wraps it in double quotes.
//
// Returns ErrEmptyValue for "" and, under PolicyScheme, ErrMissingScheme when
// the value contains no "://".
func String(p Policy, s string) (string, error) {
	if s == "" {
		return "", ErrEmptyValue
	}

	switch p {
	case PolicyScheme:
		scheme, rest, found := strings.Cut(s, schemeSeparator)
		if !found {
			return "", fmt.Errorf("%w: %q", ErrMissingScheme, s)
		}
		return quote(schemeReplacer.Replace(scheme) + "[://]" + dotReplacer.Replace(rest)), nil
	default:
		return quote(fullReplacer.Replace(s)), nil
	}
}

func quote(s string) string {
	return `"` + s + `"`
}

// Result is the outcome of defanging a resource: the neutralized values in
// input order, or absent.
type Result struct {
	values []string
	reason error
}

// Absent reports whether the resource was missing or could not be transformed.
func (r Result) Absent() bool {
	return len(r.values) == 0
}

// Values returns the neutralized values, or nil when absent.
func (r Result) Values() []string {
	if r.Absent() {
		return nil
	}
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

// Reason returns the transform error behind an absent result. It is nil for
// a successful result and for a resource that was never supplied.
func (r Result) Reason() error {
	return r.reason
}

// Args returns the values as format arguments. An absent result yields a
// single AbsentValue so a one-placeholder template still renders.
func (r Result) Args() []any {
	if r.Absent() {
		return []any{AbsentValue}
	}
	args := make([]any, len(r.values))
	for i, v := range r.values {
		args[i] = v
	}
	return args
}

// Resource defangs each value independently, preserving order.
//
// A nil or empty slice produces an absent Result with no reason. Any value
// that fails to transform produces an absent Result carrying the error. The
// input slice is not modified.
func Resource(p Policy, values []string) Result {
	if len(values) == 0 {
		return Result{}
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		d, err := String(p, v)
		if err != nil {
			return Result{reason: err}
		}
		out = append(out, d)
	}

	return Result{values: out}
}
