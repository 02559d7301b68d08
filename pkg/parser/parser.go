// Package parser holds one pure parser per supported file format. Each
// parser is a pure function from file content to a Result: ok(data),
// partial(data, per-line errors), or error(reason). None of them mutate
// state outside themselves or panic on malformed input.
package parser

// Outcome is the closed set of shapes a parser's Result can take.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomePartial Outcome = "partial"
	OutcomeError   Outcome = "error"
)

// LineError is a single parse-time error, optionally tied to an input line.
type LineError struct {
	Line    int
	Message string
}

// Result is the uniform return shape every parser in this package produces.
// Data holds the format-specific parsed record (type-asserted by the
// caller based on which parser produced it); it is present for OutcomeOK
// and OutcomePartial, nil for OutcomeError.
type Result struct {
	Outcome Outcome
	Data    interface{}
	Errors  []LineError
	Reason  string
}

func ok(data interface{}) Result {
	return Result{Outcome: OutcomeOK, Data: data}
}

func partial(data interface{}, errs []LineError) Result {
	return Result{Outcome: OutcomePartial, Data: data, Errors: errs}
}

func fail(reason string) Result {
	return Result{Outcome: OutcomeError, Reason: reason}
}
