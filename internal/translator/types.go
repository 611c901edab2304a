package translator

// FailureKind classifies a failed unit translation. The set is closed;
// consumers switch over it exhaustively.
type FailureKind int

const (
	// FailureNone marks a successful outcome.
	FailureNone FailureKind = iota
	// FailureTransient covers transport-level problems: no response,
	// connection refused, read timeout.
	FailureTransient
	// FailureBadResponse covers non-success statuses other than the rate
	// limit, and success responses whose body cannot be decoded.
	FailureBadResponse
	// FailureRateLimited is the endpoint's HTTP 403 signal. It is kept
	// distinct because it must propagate to disable the context, not just
	// be reported.
	FailureRateLimited
)

// Outcome is the classified result of translating one unit: either the
// translated text, or a failure kind with a human-readable detail.
type Outcome struct {
	Translated string
	Failure    FailureKind
	Detail     string
}

// Failed reports whether the outcome is a failure of any kind.
func (o Outcome) Failed() bool {
	return o.Failure != FailureNone
}
