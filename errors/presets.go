package errors

import "google.golang.org/grpc/codes"

// Immutable factory presets.
func Unknown() ErrorResponse {
	return New("Unknown error occurred", codes.Unknown, nil).WithReason("unknown")
}

func InvalidArgument() ErrorResponse {
	return New("Invalid argument", codes.InvalidArgument, nil).WithReason("invalid_argument")
}

func OutOfRange() ErrorResponse {
	return New("Value out of range", codes.OutOfRange, nil).WithReason("out_of_range")
}

func Internal() ErrorResponse {
	return New("Internal error", codes.Internal, nil).WithReason("internal")
}

func Canceled() ErrorResponse {
	return New("Request canceled", codes.Canceled, nil).WithReason("canceled")
}

func DeadlineExceeded() ErrorResponse {
	return New("Deadline exceeded", codes.DeadlineExceeded, nil).WithReason("deadline_exceeded")
}

// Fast constructors for the frequent cases.
func ValidationFields(fields map[string]string) ErrorResponse {
	return InvalidArgument().WithReason("validation_failed").WithDetails(fields).WithViolations(ViolationsFromMap(fields))
}

func ValidationViolations(v []FieldViolation) ErrorResponse {
	return InvalidArgument().WithReason("validation_failed").WithViolations(v)
}

func Unsupported(name, value string) ErrorResponse {
	return InvalidArgument().WithReason("unsupported").WithDetail(name, value)
}
