// Package validator provides a small, composable set of rule-building
// utilities for construction-time validation of string fields.
//
// The package promotes declarative validation by letting you build small Rule
// values that encapsulate a boolean Check function together with field-level
// error metadata. Rules are evaluated with the Apply helper which aggregates
// any failures into a ValidationErrors slice that satisfies the error
// interface, making it convenient to bubble up multiple field-specific
// problems in a single error return.
//
// # Architecture
//
// Every exported validation function simply constructs and returns a Rule
// instance; there is no hidden global state, therefore the package is
// completely stateless, allocation-light, and goroutine-safe.
//
// Core building blocks:
//   - Rule              – lightweight struct containing Check func and error meta
//   - ValidationError   – describes a single field-level failure
//   - ValidationErrors  – slice type that implements the error interface
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.LenString("phone", phone, 10),
//	    validator.DigitsOnly("phone", phone),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements Error and works with errors.As, so callers can
// recover the structured failures from a wrapped error chain via
// ExtractValidationErrors or test for them with IsValidationError.
package validator
