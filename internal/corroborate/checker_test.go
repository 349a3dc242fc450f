package corroborate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/microcred/credential-vault/constants"
)

func newTestChecker() *Checker {
	return NewChecker(Config{Timeout: 2 * time.Second, MaxRedirects: 3}, nil)
}

func TestCheckCorroborated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>This certificate for Cloud Practitioner has been verified.</html>`))
	}))
	defer srv.Close()

	j := newTestChecker().Check(context.Background(), srv.URL, "Cloud Practitioner")
	if j.Outcome != constants.CorroborationCorroborated {
		t.Fatalf("outcome = %s, want CORROBORATED (%s)", j.Outcome, j.Note)
	}
}

func TestCheckNameWithPunctuationStillFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`certificate issued: AWS-Certified Developer (Associate)`))
	}))
	defer srv.Close()

	j := newTestChecker().Check(context.Background(), srv.URL, "aws certified developer")
	if j.Outcome != constants.CorroborationCorroborated {
		t.Fatalf("outcome = %s, want CORROBORATED (%s)", j.Outcome, j.Note)
	}
}

func TestCheckIndeterminateWhenNameMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`a perfectly valid certificate registry page about something else`))
	}))
	defer srv.Close()

	j := newTestChecker().Check(context.Background(), srv.URL, "Cloud Practitioner")
	if j.Outcome != constants.CorroborationIndeterminate {
		t.Fatalf("outcome = %s, want INDETERMINATE", j.Outcome)
	}
}

func TestCheckIndeterminateWithoutTrustMarker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`Cloud Practitioner appears here with no other context`))
	}))
	defer srv.Close()

	j := newTestChecker().Check(context.Background(), srv.URL, "Cloud Practitioner")
	if j.Outcome != constants.CorroborationIndeterminate {
		t.Fatalf("outcome = %s, want INDETERMINATE", j.Outcome)
	}
}

func TestCheckContradictedOnNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	j := newTestChecker().Check(context.Background(), srv.URL, "Cloud Practitioner")
	if j.Outcome != constants.CorroborationContradicted {
		t.Fatalf("outcome = %s, want CONTRADICTED", j.Outcome)
	}
	if !strings.Contains(j.Note, "404") {
		t.Fatalf("note = %q, want HTTP status mentioned", j.Note)
	}
}

func TestCheckContradictedOnUnreachableHost(t *testing.T) {
	j := newTestChecker().Check(context.Background(), "http://127.0.0.1:1/registry", "Cloud Practitioner")
	if j.Outcome != constants.CorroborationContradicted {
		t.Fatalf("outcome = %s, want CONTRADICTED", j.Outcome)
	}
}

func TestCheckFollowsBoundedRedirects(t *testing.T) {
	var srv *httptest.Server
	hops := 0
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hops < 2 {
			hops++
			http.Redirect(w, r, srv.URL, http.StatusFound)
			return
		}
		_, _ = w.Write([]byte(`verified certificate: Cloud Practitioner`))
	}))
	defer srv.Close()

	j := newTestChecker().Check(context.Background(), srv.URL, "Cloud Practitioner")
	if j.Outcome != constants.CorroborationCorroborated {
		t.Fatalf("outcome = %s, want CORROBORATED after redirects", j.Outcome)
	}
}
