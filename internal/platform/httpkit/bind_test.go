package httpkit

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "mouthsoap/internal/platform/errors"
)

type checkPayload struct {
	Text     string `json:"text" validate:"required"`
	Strategy string `json:"strategy" validate:"omitempty,oneof=literal pattern trie hybrid"`
}

func TestParseJSONValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"hi","strategy":"trie"}`))
	got, err := ParseJSON[checkPayload](r)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Text != "hi" || got.Strategy != "trie" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":`))
	_, err := ParseJSON[checkPayload](r)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"x","bogus":1}`))
	if _, err := ParseJSON[checkPayload](r); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("unknown fields must be rejected, got %v", err)
	}
}

func TestParseJSONValidation(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"strategy":"trie"}`))
	_, err := ParseJSON[checkPayload](r)
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	e, _ := perr.As(err)
	if e.Field() != "text" {
		t.Fatalf("expected field 'text' (json tag name), got %q", e.Field())
	}

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"x","strategy":"bogus"}`))
	if _, err := ParseJSON[checkPayload](r); perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("oneof violation should be a validation error, got %v", err)
	}
}
