package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeUpstream, http.StatusBadGateway},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCode(999), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Errorf("HTTPStatusCode(%d)=%d want %d", c.code, got, c.want)
		}
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := stderrs.New("boom")
	err := Wrapf(cause, ErrorCodeUpstream, "fetch failed for %q", "octo")

	if !stderrs.Is(err, cause) {
		t.Fatal("wrapped cause should survive errors.Is")
	}
	if got := Root(err); got != cause {
		t.Fatalf("Root got %v", got)
	}
	if CodeOf(err) != ErrorCodeUpstream {
		t.Fatalf("CodeOf got %v", CodeOf(err))
	}
	if want := `fetch failed for "octo": boom`; err.Error() != want {
		t.Fatalf("Error() got %q want %q", err.Error(), want)
	}
}

func TestCodeOfForeignError(t *testing.T) {
	t.Parallel()

	if CodeOf(fmt.Errorf("plain")) != ErrorCodeUnknown {
		t.Fatal("foreign errors should map to Unknown")
	}
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatal("nil should map to Unknown")
	}
}

func TestWireFrom(t *testing.T) {
	t.Parallel()

	err := WithField(Newf(ErrorCodeValidation, "username must be a valid GitHub login"), "username")
	w := WireFrom(err)
	if w.Code != ErrorCodeValidation || w.Field != "username" {
		t.Fatalf("wire got %+v", w)
	}

	w2 := WireFrom(fmt.Errorf("plain"))
	if w2.Code != ErrorCodeUnknown || w2.Message != "plain" {
		t.Fatalf("wire got %+v", w2)
	}

	if w3 := WireFrom(nil); w3 != (Wire{}) {
		t.Fatalf("wire got %+v", w3)
	}
}

func TestWithFieldCopies(t *testing.T) {
	t.Parallel()

	base := NotFoundf("nope")
	derived := WithField(base, "login")

	be, _ := As(base)
	de, _ := As(derived)
	if be.Field() != "" {
		t.Fatal("base must not be mutated")
	}
	if de.Field() != "login" {
		t.Fatalf("derived field got %q", de.Field())
	}
}

func TestHTTP(t *testing.T) {
	t.Parallel()

	status, wire := HTTP(NotFoundf("github user %q not found", "ghost"))
	if status != http.StatusNotFound || wire.Code != ErrorCodeNotFound {
		t.Fatalf("got %d %+v", status, wire)
	}

	status, wire = HTTP(nil)
	if status != http.StatusOK || wire != (Wire{}) {
		t.Fatalf("got %d %+v", status, wire)
	}
}
