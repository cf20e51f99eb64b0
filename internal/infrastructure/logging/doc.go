// Package logging provides severity-leveled logging that defangs indicator
// resources before they are written.
//
// This package wraps Go's standard log/slog package. Every call takes a
// message template and an optional resource (URLs, hostnames, IPs). The
// resource is neutralized by the defang package and substituted into the
// template, so a line never carries a clickable indicator:
//
//	log.Info("Visit %s", "http://example.com")
//	// 2026-10-18 14:03:07,123 [INFO] - scan.go [Line: 42]: Visit "hxxp[://]example[.]com"
//
// # Features
//
//   - Five levels: DEBUG, INFO, WARNING, ERROR, CRITICAL (CRITICAL is slog level 12)
//   - Fixed line format: timestamp, [LEVEL], caller file, [Line: N], message
//   - Threshold can be stepped up or down at runtime, clamped at both ends
//   - Each Logger owns its own sink; nothing is configured process-wide
//
// # Resources
//
// A resource is zero or more strings passed after the template. With one
// value it fills a single placeholder; with several they fill placeholders
// in order. Missing or malformed resources render as None instead of failing
// the call:
//
//	log.Error("Failed: %s")                         // Failed: None
//	log.Warning("%s -> %s", "a.example", "b.example") // "a[.]example" -> "b[.]example"
//
// Surplus values beyond the template's verbs are dropped.
//
// # Configuration
//
// Logging is configured via the LoggingConfig in ioclog.yaml:
//
//	logging:
//	  path: "logs/ioclog.log"
//	  level: "info"       # debug, info, warning, error, critical
//	  defang:
//	    policy: "full"    # full, scheme
//
// # Concurrency
//
// Writes are serialized by the handler. The threshold is an slog.LevelVar;
// RaiseLevel and LowerLevel are not atomic with respect to each other, so two
// concurrent steps may collapse into one.
package logging
