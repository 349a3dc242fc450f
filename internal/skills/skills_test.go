package skills

import (
	"reflect"
	"testing"
)

var testTable = map[string]int{
	"python":           5,
	"cloud":            6,
	"machine learning": 8,
}

func TestParseDeclared(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"json list", `["python","cloud"]`, []string{"python", "cloud"}},
		{"comma separated", "python, cloud", []string{"python", "cloud"}},
		{"malformed json falls back to comma split", `["python",`, []string{`["python"`}},
		{"blank entries dropped", "python,, ,cloud", []string{"python", "cloud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDeclared(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseDeclared(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestInferDeclaredSkills(t *testing.T) {
	inf := NewInferencer(testTable)
	got := inf.Infer("", []string{"python", "cloud"}, 0)
	want := Profile{Skills: []string{"cloud", "python"}, Level: 6}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Infer = %#v, want %#v", got, want)
	}
}

func TestInferFromText(t *testing.T) {
	inf := NewInferencer(testTable)
	got := inf.Infer("Completed a course in Machine Learning and Python.", nil, 0)
	want := Profile{Skills: []string{"machine learning", "python"}, Level: 8}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Infer = %#v, want %#v", got, want)
	}
}

func TestInferUnknownSkillContributesFloor(t *testing.T) {
	inf := NewInferencer(testTable)
	got := inf.Infer("", []string{"underwater basket weaving"}, 0)
	if got.Level != 1 {
		t.Fatalf("unknown skill level = %d, want 1", got.Level)
	}
}

func TestInferDeclaredLevelWins(t *testing.T) {
	inf := NewInferencer(testTable)
	got := inf.Infer("", []string{"python"}, 7)
	if got.Level != 7 {
		t.Fatalf("level = %d, want declared 7", got.Level)
	}
}

func TestInferLevelMonotonic(t *testing.T) {
	inf := NewInferencer(testTable)
	base := inf.Infer("", []string{"python"}, 0)
	grown := inf.Infer("", []string{"python", "machine learning"}, 0)
	if grown.Level < base.Level {
		t.Fatalf("adding a higher skill lowered level: %d -> %d", base.Level, grown.Level)
	}
	if grown.Level < 8 {
		t.Fatalf("level = %d, want at least table level 8", grown.Level)
	}
}

func TestInferEmptyInputs(t *testing.T) {
	inf := NewInferencer(testTable)
	got := inf.Infer("", nil, 0)
	if got.Level != 1 || len(got.Skills) != 0 {
		t.Fatalf("empty inputs: %#v, want level 1 and no skills", got)
	}
}

func TestInferIdempotent(t *testing.T) {
	inf := NewInferencer(testTable)
	a := inf.Infer("python and cloud fundamentals", nil, 2)
	b := inf.Infer("python and cloud fundamentals", nil, 2)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same inputs produced different profiles: %#v vs %#v", a, b)
	}
}

func TestInferDefaultTable(t *testing.T) {
	inf := NewInferencer(nil)
	got := inf.Infer("certified in cybersecurity", nil, 0)
	if got.Level != 8 {
		t.Fatalf("default table cybersecurity level = %d, want 8", got.Level)
	}
}
