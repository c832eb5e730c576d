package errors

import (
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestBuilderMethodsAreImmutable(t *testing.T) {
	base := InvalidArgument().WithDetail("a", "1")

	derived := base.WithDetail("b", "2")
	if _, ok := base.Details["b"]; ok {
		t.Fatalf("WithDetail mutated the receiver: %+v", base.Details)
	}
	if derived.Details["a"] != "1" || derived.Details["b"] != "2" {
		t.Fatalf("derived details wrong: %+v", derived.Details)
	}

	merged := base.WithDetails(map[string]string{"c": "3"})
	if _, ok := base.Details["c"]; ok {
		t.Fatalf("WithDetails mutated the receiver: %+v", base.Details)
	}
	if merged.Details["c"] != "3" {
		t.Fatalf("merged details wrong: %+v", merged.Details)
	}
}

func TestValidationFields(t *testing.T) {
	er := ValidationFields(map[string]string{"Expression": "invalid_period"})
	if er.Code != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", er.Code)
	}
	if er.Reason != Reason("validation_failed") {
		t.Fatalf("unexpected reason: %v", er.Reason)
	}
	if er.Details["Expression"] != "invalid_period" || len(er.Violations) != 1 {
		t.Fatalf("details/violations missing: %+v", er)
	}
}

func TestErrorStringIsJSON(t *testing.T) {
	er := OutOfRange().WithDetail("value", "25")
	s := er.Error()
	if !strings.Contains(s, `"code":"OutOfRange"`) {
		t.Fatalf("missing code in %s", s)
	}
	if !strings.Contains(s, `"value":"25"`) {
		t.Fatalf("missing detail in %s", s)
	}
}
