package webhook

// OutcomeKind classifies the result of a delivery attempt.
type OutcomeKind int

const (
	// Delivered means the endpoint answered 2xx, or the delivery was already
	// delivered before this attempt.
	Delivered OutcomeKind = iota + 1
	// RetryableFailure means the attempt failed and may be tried again.
	RetryableFailure
	// PermanentFailure means no further attempt can succeed.
	PermanentFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case Delivered:
		return "delivered"
	case RetryableFailure:
		return "retryable_failure"
	case PermanentFailure:
		return "permanent_failure"
	default:
		return "unknown"
	}
}

// Outcome is the result of one delivery attempt.
type Outcome struct {
	Kind OutcomeKind
	// Reason explains a failure.
	Reason string
	// Status is the HTTP status returned by the endpoint, if any.
	Status int
	// Body is the truncated response body, if any.
	Body string
}

func delivered(status int, body string) Outcome {
	return Outcome{Kind: Delivered, Status: status, Body: body}
}

func retryable(reason string, status int, body string) Outcome {
	return Outcome{Kind: RetryableFailure, Reason: reason, Status: status, Body: body}
}

func permanent(reason string) Outcome {
	return Outcome{Kind: PermanentFailure, Reason: reason}
}
