package defang

import "errors"

// Errors returned by [String] and [ParsePolicy]. [Resource] never returns
// them; a transform error becomes an absent [Result] instead.
var (
	// ErrEmptyValue is returned when a single value is the empty string.
	ErrEmptyValue = errors.New("defang: empty value")

	// ErrMissingScheme is returned by PolicyScheme when a value has no "://".
	ErrMissingScheme = errors.New("defang: missing scheme separator")

	// ErrUnknownPolicy is returned when a policy name is not recognised.
	ErrUnknownPolicy = errors.New("defang: unknown policy")
)
