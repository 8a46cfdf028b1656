package cpre

import (
	"strings"
	"testing"
)

func TestNormalizeConditionName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"MOON", "MOON"},
		{"__MOON__", "MOON"},
		{"__MOON", "MOON"},
		{"MOON__", "MOON"},
	}
	for _, tt := range tests {
		if got := normalizeConditionName(tt.in); got != tt.want {
			t.Errorf("normalizeConditionName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEvaluateConditionIfdefIfndef(t *testing.T) {
	store := newMacroStore(map[string]string{"DEFINED": ""})
	if !evaluateCondition(store, "ifdef", "DEFINED") {
		t.Error("ifdef DEFINED should be true")
	}
	if evaluateCondition(store, "ifdef", "MISSING") {
		t.Error("ifdef MISSING should be false")
	}
	if evaluateCondition(store, "ifndef", "DEFINED") {
		t.Error("ifndef DEFINED should be false")
	}
	if !evaluateCondition(store, "ifndef", "MISSING") {
		t.Error("ifndef MISSING should be true")
	}
}

func TestRogueConditionalErrorsByDefault(t *testing.T) {
	cfg := cfgWithSources(map[string]string{"main": "#endif"})
	_, err := Run(cfg)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "without accompanying starting conditional") {
		t.Errorf("error = %q, want it to mention the missing opener", err.Error())
	}
}

func TestRogueConditionalIgnoredWhenConfigured(t *testing.T) {
	cfg := cfgWithSources(map[string]string{"main": "#endif"})
	cfg.IgnoreUnmatchedConditionalDirectives = true
	got, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got.Sources["main"] != "#endif" {
		t.Errorf("got %q, want unchanged %q", got.Sources["main"], "#endif")
	}
}

func TestDuplicateElseErrors(t *testing.T) {
	cfg := cfgWithSources(map[string]string{
		"main": "#if X\nA\n#else\nB\n#else\nC\n#endif",
	})
	_, err := Run(cfg)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "defined multiple times") {
		t.Errorf("error = %q, want it to mention duplicate #else", err.Error())
	}
}

func TestUnterminatedConditionalErrors(t *testing.T) {
	cfg := cfgWithSources(map[string]string{
		"main": "#ifdef X\nbody with no terminator",
	})
	_, err := Run(cfg)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "Unexpected end of file") {
		t.Errorf("error = %q, want it to mention EOF", err.Error())
	}
}
