package pkgerror

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestTypeString(t *testing.T) {
	cases := map[Type]string{
		TypeValidation: "ERROR_TYPE_VALIDATION",
		TypeRequest:    "ERROR_TYPE_REQUEST",
		TypeServer:     "ERROR_TYPE_SERVER",
		Type(99):       "ERROR_TYPE_UNKNOWN",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Fatalf("type %d: expected %q, got %q", int(typ), want, got)
		}
	}
}

func TestCodeString(t *testing.T) {
	cases := map[Code]string{
		CodeInvalidInput:     "ERROR_CODE_INVALID_INPUT",
		CodeMethodNotAllowed: "ERROR_CODE_METHOD_NOT_ALLOWED",
		CodeInternal:         "ERROR_CODE_INTERNAL",
		Code(99):             "ERROR_CODE_INTERNAL",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("code %d: expected %q, got %q", int(code), want, got)
		}
	}
}

func TestServerError(t *testing.T) {
	root := errors.New("template missing")
	err := NewServer(root)
	gerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !errors.Is(err, root) {
		t.Fatalf("expected wrapped error")
	}
	if got := gerr.Msg(); got != "Internal server error" {
		t.Fatalf("unexpected msg: %q", got)
	}
	if got := gerr.Type(); got != TypeServer {
		t.Fatalf("unexpected type: %v", got)
	}
	if got := gerr.Code(); got != CodeInternal {
		t.Fatalf("unexpected code: %v", got)
	}
	if got := gerr.Error(); got != "template missing" {
		t.Fatalf("unexpected error string: %q", got)
	}
	if got := gerr.StatusCode(); got != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", got)
	}
}

func TestInvalidInputError(t *testing.T) {
	root := errors.New("bad pattern")
	err := NewInvalidInput(root)
	if got := err.Error(); got != "bad pattern" {
		t.Fatalf("unexpected invalid input error: %q", got)
	}
	if !errors.Is(err, root) {
		t.Fatalf("expected invalid input to wrap error")
	}
	if got := err.(*Error).StatusCode(); got != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", got)
	}
}

func TestMethodNotAllowedError(t *testing.T) {
	err := NewMethodNotAllowed(http.MethodPost).(*Error)
	if got := err.Error(); got != "method POST not allowed" {
		t.Fatalf("unexpected error: %q", got)
	}
	if got := err.Msg(); got != "method POST not allowed" {
		t.Fatalf("unexpected msg: %q", got)
	}
	if got := err.StatusCode(); got != http.StatusMethodNotAllowed {
		t.Fatalf("unexpected status: %d", got)
	}
}

func TestErrorFallbackMessages(t *testing.T) {
	cases := map[Type]string{
		TypeValidation: "Validation violation",
		TypeRequest:    "Request not served",
		TypeServer:     "Internal error",
		Type(42):       "Unknown error",
	}
	for typ, want := range cases {
		err := newError(nil, "", typ, CodeInternal).(*Error)
		if got := err.Error(); got != want {
			t.Fatalf("type %s: expected %q, got %q", typ, want, got)
		}
	}
}

func TestErrorStringIncludesDetails(t *testing.T) {
	err := NewInvalidInput(errors.New("empty segment")).(*Error)
	str := err.String()
	for _, want := range []string{"ERROR_TYPE_VALIDATION", "ERROR_CODE_INVALID_INPUT", "validation error", "empty segment"} {
		if !strings.Contains(str, want) {
			t.Fatalf("expected %q in string: %q", want, str)
		}
	}
}
