package errors

import (
	"context"
	"errors"

	"github.com/vortex-fintech/period-lib/period"
)

// InvalidPeriod adapts a period evaluation error into an ErrorResponse.
// Format errors map to InvalidArgument with the full diagnostic preserved
// in the message; anything else is Internal.
func InvalidPeriod(err error) ErrorResponse {
	if err == nil {
		return Internal().WithReason("unexpected_error")
	}
	if !errors.Is(err, period.ErrInvalidFormat) {
		return Internal().WithReason("unexpected_error")
	}
	return New(err.Error(), InvalidArgument().Code, nil).WithReason("invalid_period_format")
}

// ToErrorResponse converts any error into ErrorResponse (transport-agnostic).
// Supported inputs: ErrorResponse / *ErrorResponse (passthrough), context
// cancellations and period format errors.
func ToErrorResponse(err error) ErrorResponse {
	if err == nil {
		return Internal().WithReason("unexpected_error")
	}

	if errors.Is(err, context.Canceled) {
		return Canceled()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return DeadlineExceeded()
	}

	if e, ok := err.(ErrorResponse); ok {
		return e
	}
	var ep *ErrorResponse
	if errors.As(err, &ep) && ep != nil {
		return *ep
	}

	if errors.Is(err, period.ErrInvalidFormat) {
		return InvalidPeriod(err)
	}

	return Internal().WithReason("unexpected_error")
}
