package verify

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubJudge struct {
	judgment Judgment
	err      error
	calls    int
}

func (s *stubJudge) Judge(context.Context, string, Claim) (Judgment, error) {
	s.calls++
	return s.judgment, s.err
}

var testClaim = Claim{
	CertificateName:   "Cloud Practitioner",
	Issuer:            "Example Institute",
	CertificateNumber: "EX-1001",
}

func TestAnalyzeShortTextShortCircuits(t *testing.T) {
	judge := &stubJudge{judgment: Judgment{Matched: true, Reason: "should not be consulted"}}
	a := NewAnalyzer(judge, nil)

	got := a.Analyze(context.Background(), "too short", testClaim)
	if got.Matched {
		t.Fatal("short text must never match")
	}
	if !strings.Contains(got.Reason, "unreadable") {
		t.Fatalf("reason = %q, want mention of unreadable", got.Reason)
	}
	if judge.calls != 0 {
		t.Fatalf("judge consulted %d times for short text, want 0", judge.calls)
	}
}

func TestAnalyzeDelegatesToJudge(t *testing.T) {
	text := strings.Repeat("certificate content ", 10)

	judge := &stubJudge{judgment: Judgment{Matched: true, Reason: "all fields found"}}
	a := NewAnalyzer(judge, nil)
	got := a.Analyze(context.Background(), text, testClaim)
	if !got.Matched || got.Reason != "all fields found" {
		t.Fatalf("judgment not passed through: %#v", got)
	}
}

func TestAnalyzeJudgeErrorDefaultsToNonMatch(t *testing.T) {
	text := strings.Repeat("certificate content ", 10)

	judge := &stubJudge{err: errors.New("upstream 500")}
	a := NewAnalyzer(judge, nil)
	got := a.Analyze(context.Background(), text, testClaim)
	if got.Matched {
		t.Fatal("judge failure must not pass a credential")
	}
	if got.Reason != "verification unavailable" {
		t.Fatalf("reason = %q, want verification unavailable", got.Reason)
	}
}

func TestAnalyzeNilJudgeDefaultsToNonMatch(t *testing.T) {
	text := strings.Repeat("certificate content ", 10)

	a := NewAnalyzer(nil, nil)
	got := a.Analyze(context.Background(), text, testClaim)
	if got.Matched || got.Reason != "verification unavailable" {
		t.Fatalf("missing judge: %#v, want unavailable non-match", got)
	}
}
