package recognize

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestMapFailureKnownCode(t *testing.T) {
	status, msg, details := MapFailure(Outcome{
		Kind:   KindRejected,
		Status: http.StatusRequestEntityTooLarge,
		Body:   []byte(`{"code":17701,"message":"图片大小过大"}`),
	})
	if status != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want upstream status mirrored", status)
	}
	if msg != upstreamErrors[17701] {
		t.Fatalf("msg = %q", msg)
	}
	if details == nil {
		t.Fatal("structured body should be echoed as details")
	}
}

func TestMapFailureUnknownCodeFallsBackToMessage(t *testing.T) {
	status, msg, _ := MapFailure(Outcome{
		Kind:   KindRejected,
		Status: http.StatusBadRequest,
		Body:   []byte(`{"code":99999,"message":"something odd"}`),
	})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if msg != "something odd" {
		t.Fatalf("msg = %q", msg)
	}
}

func TestMapFailureNoCodeNoMessage(t *testing.T) {
	_, msg, details := MapFailure(Outcome{
		Kind:   KindRejected,
		Status: http.StatusBadGateway,
		Body:   []byte(`<html>gateway</html>`),
	})
	if msg != msgGenericRejected {
		t.Fatalf("msg = %q", msg)
	}
	if details != nil {
		t.Fatal("non-JSON body must not leak into details")
	}
}

func TestMapFailureUnreachable(t *testing.T) {
	status, msg, details := MapFailure(Outcome{Kind: KindUnreachable, Err: errors.New("dial tcp: refused")})
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d", status)
	}
	if msg != msgUnreachable {
		t.Fatalf("msg = %q", msg)
	}
	if details != nil {
		t.Fatal("no details expected")
	}
}

func TestMapFailureBuildFailed(t *testing.T) {
	status, msg, _ := MapFailure(Outcome{Kind: KindBuildFailed, Err: errors.New("missing protocol scheme")})
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(msg, "missing protocol scheme") {
		t.Fatalf("msg = %q, want the build error echoed", msg)
	}
}

func TestErrorTableCoversDocumentedCodes(t *testing.T) {
	for code := int64(17701); code <= 17711; code++ {
		if _, ok := upstreamErrors[code]; !ok {
			t.Errorf("code %d has no message", code)
		}
	}
}
