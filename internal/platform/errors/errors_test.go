package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestErrorMessageAndWrap(t *testing.T) {
	cause := stderrs.New("boom")
	e := Wrap(cause, ErrorCodeJSON, "decode failed")

	if e.Error() != "decode failed: boom" {
		t.Fatalf("got %q", e.Error())
	}
	if !stderrs.Is(e, cause) {
		t.Fatalf("wrapped cause lost")
	}
}

func TestAsAndCodeOf(t *testing.T) {
	e := New(ErrorCodeNotFound, "gone")
	wrapped := Wrap(e, ErrorCodeUnknown, "outer")

	if got, ok := As(wrapped); !ok || got.Code() != ErrorCodeUnknown {
		t.Fatalf("As returned %v %v", got, ok)
	}
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatalf("plain error should map to Unknown")
	}
}

func TestFieldError(t *testing.T) {
	e := Field("text", "text is required")
	if e.Code() != ErrorCodeValidation || e.Field() != "text" {
		t.Fatalf("got code %d field %q", e.Code(), e.Field())
	}
	w := e.ToWire()
	if w.Field != "text" || w.Message != "text is required" {
		t.Fatalf("wire form wrong: %+v", w)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeNotFound:        http.StatusNotFound,
		ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
		ErrorCodeValidation:      http.StatusBadRequest,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodePanic:           http.StatusInternalServerError,
		ErrorCodeUnknown:         http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatusCode(code); got != want {
			t.Errorf("HTTPStatusCode(%d) = %d, want %d", code, got, want)
		}
	}
	if HTTPStatus(New(ErrorCodeValidation, "bad")) != http.StatusBadRequest {
		t.Fatalf("HTTPStatus on error failed")
	}
}

func TestWireFrom(t *testing.T) {
	if w := WireFrom(nil); w.Code != ErrorCodeUnknown || w.Message != "" {
		t.Fatalf("nil should be zero Wire, got %+v", w)
	}
	w := WireFrom(stderrs.New("oops"))
	if w.Code != ErrorCodeUnknown || w.Message != "oops" {
		t.Fatalf("got %+v", w)
	}
}
