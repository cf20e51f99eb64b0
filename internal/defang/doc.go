// Package defang neutralizes URL and indicator-of-compromise strings so they
// can be written to logs without producing clickable or resolvable links.
//
// # Policies
//
// Two transforms are available:
//
//   - PolicyFull (default): every "http" becomes "hxxp", every "://" becomes
//     "[://]" and every "." becomes "[.]". Works on any non-empty string,
//     including bare hostnames.
//   - PolicyScheme: the value must contain "://". Only the scheme portion is
//     altered ("t" to "x", "T" to "X"); the separator becomes "[://]" and
//     every "." after it becomes "[.]".
//
// Both policies wrap the result in double quotes:
//
//	http://evil.example.com/a.php  ->  "hxxp[://]evil[.]example[.]com/a[.]php"
//
// # Results
//
// [Resource] never fails. A resource that cannot be transformed (empty, or a
// value with no scheme under PolicyScheme) yields an absent [Result], which
// renders as None when formatted:
//
//	res := defang.Resource(defang.PolicyFull, []string{"http://a.example"})
//	msg := fmt.Sprintf("Visit %s", res.Args()...)
//
// The error-returning [String] is exposed for callers that want to know why
// a value was rejected.
package defang
