// Package validator provides small, composable validation rules built around
// a single Rule value: a Check func paired with the error it reports.
//
// Rules are constructed by plain functions grouped by family
// (`string_rules.go`, `pattern_rules.go`, `numeric_rules.go`, ...) and
// evaluated with Apply, which collects failures into ValidationErrors. The
// package holds no global state apart from a few precompiled expressions and
// is safe for concurrent use.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("email", email),
//	    validator.IntStringBetween("age", age, 18, 99),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msg := verrs.First("age")
//	    _ = msg
//	}
//
// # Field-level messages
//
// Forms usually show one fixed sentence per field instead of one line per
// failed check. Combine the checks with All and attach the sentence with
// WithMessage:
//
//	rule := validator.All("firstName",
//	    validator.MinLenString("firstName", v, 2),
//	    validator.ASCIIAlpha("firstName", v),
//	).WithMessage("validation.first_name", "First name is invalid.")
//
// All stops at the first failing member, so each field yields at most one
// ValidationError.
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed through
// errors.Is. Use ExtractValidationErrors to get the slice back from a wrapped
// error, then Has, First, Get, Fields or Messages to inspect it.
package validator
