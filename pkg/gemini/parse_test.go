package gemini

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"padded", "  {\"a\":1}  \n", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := ExtractJSON(tc.in); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	var v struct{ A int }
	err := DecodeJSON("the model apologizes instead of answering", &v)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestDecodeJSON_Fenced(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	if err := DecodeJSON("```json\n{\"a\":7}\n```", &v); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if v.A != 7 {
		t.Fatalf("got %d want 7", v.A)
	}
}
