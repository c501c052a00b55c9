package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "gitwrapped/internal/platform/errors"
)

type loginPayload struct {
	Username string `json:"username" validate:"required,gh_login"`
	Token    string `json:"token" validate:"omitempty,max=16"`
}

func TestParseJSON_Success(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"octo-cat","token":"abc"}`))
	got, err := ParseJSON[loginPayload](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Username != "octo-cat" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_GHLogin(t *testing.T) {
	cases := []struct {
		name  string
		login string
		ok    bool
	}{
		{"simple", "octocat", true},
		{"hyphenated", "octo-cat", true},
		{"single char", "a", true},
		{"empty", "", false},
		{"leading hyphen", "-octo", false},
		{"trailing hyphen", "octo-", false},
		{"double hyphen", "octo--cat", false},
		{"too long", strings.Repeat("a", 40), false},
		{"invalid chars", "octo cat", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"`+c.login+`"}`))
			_, err := ParseJSON[loginPayload](req)
			if c.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.ok && perr.CodeOf(err) != perr.ErrorCodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestParseJSON_TokenTooLong(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(
		`{"username":"octocat","token":"`+strings.Repeat("x", 17)+`"}`))
	_, err := ParseJSON[loginPayload](req)
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVar(t *testing.T) {
	if err := Var("octocat", "required,gh_login", "username"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Var("-bad-", "required,gh_login", "username")
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "username") {
		t.Fatalf("error should name the field: %v", err)
	}
}
