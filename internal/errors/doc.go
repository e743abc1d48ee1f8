// Package errors provides structured error codes for djed.
//
// Every failure the framework reports carries a stable code that maps to a
// category, a short message and a longer explanation.
//
// # Error Categories
//
//   - runtime: caller contract breaches inside reconciliation and the
//     component lifecycle (acting on an unmounted component, detaching a
//     node that was never rendered). These are raised with panic and are
//     never recovered by the framework.
//   - host: a live tree mutation was rejected. These are logged and the
//     single mutation is skipped.
//   - config: configuration files that cannot be read or validated.
//   - cli: command-line failures.
//
// # Usage
//
//	panic(errors.New("E204").WithDetail("detach called twice"))
//
//	err := errors.New("E121").Wrap(parseErr)
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E121: Config parse failed
//	//
//	//   The configuration file is not valid JSON or YAML.
//	//
//	//   Hint: Run `djed render --config djed.yaml` to validate it
package errors
