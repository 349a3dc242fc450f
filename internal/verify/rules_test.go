package verify

import (
	"context"
	"strings"
	"testing"
)

func TestRuleJudgeMatchesAllFields(t *testing.T) {
	text := `This certifies that the holder has completed the
	CLOUD PRACTITIONER program, awarded by Example-Institute.
	Reference: EX 1001.`

	j, err := NewRuleJudge().Judge(context.Background(), text, testClaim)
	if err != nil {
		t.Fatalf("Judge: %v", err)
	}
	if !j.Matched {
		t.Fatalf("want match despite punctuation and case differences, got %#v", j)
	}
}

func TestRuleJudgeReportsMissingFields(t *testing.T) {
	text := "Cloud Practitioner issued by Example Institute, no serial shown here."

	j, err := NewRuleJudge().Judge(context.Background(), text, testClaim)
	if err != nil {
		t.Fatalf("Judge: %v", err)
	}
	if j.Matched {
		t.Fatal("missing certificate number must not match")
	}
	if !strings.Contains(j.Reason, "certificate number") {
		t.Fatalf("reason = %q, want the missing field named", j.Reason)
	}
}

func TestRuleJudgeEmptyClaimField(t *testing.T) {
	claim := testClaim
	claim.Issuer = ""
	j, _ := NewRuleJudge().Judge(context.Background(), "anything at all", claim)
	if j.Matched {
		t.Fatal("empty claim field must not match")
	}
}

func TestVerdictSchemaValidation(t *testing.T) {
	schema := BuildVerdictJSONSchema()

	valid := []byte(`{"matched": true, "reason": "all fields located"}`)
	if err := ValidateJSONAgainstSchema(schema, valid); err != nil {
		t.Fatalf("valid verdict rejected: %v", err)
	}

	tests := []struct {
		name string
		data string
	}{
		{"missing reason", `{"matched": false}`},
		{"wrong type", `{"matched": "yes", "reason": "x"}`},
		{"extra field", `{"matched": true, "reason": "x", "confidence": 1}`},
		{"empty reason", `{"matched": true, "reason": ""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateJSONAgainstSchema(schema, []byte(tt.data)); err == nil {
				t.Fatalf("invalid verdict accepted: %s", tt.data)
			}
		})
	}
}
