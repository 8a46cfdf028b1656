package cpre

import (
	"strings"
	"testing"
)

func TestDefineWithQuotedValue(t *testing.T) {
	cfg := cfgWithSources(map[string]string{"main": `#define GREETING "hello there"` + "\n__GREETING__"})
	got, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.TrimSpace(got.Sources["main"]) != "hello there" {
		t.Errorf("got %q, want %q", got.Sources["main"], "hello there")
	}
}

func TestDefineWithNoValueIsEmptyButExists(t *testing.T) {
	cfg := cfgWithSources(map[string]string{"main": "#define SWITCH\n#ifdef SWITCH\non\n#endif"})
	got, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(got.Sources["main"], "on") {
		t.Errorf("got %q, want it to contain %q", got.Sources["main"], "on")
	}
}

func TestDefineMissingNameErrors(t *testing.T) {
	cfg := cfgWithSources(map[string]string{"main": "#define \n"})
	_, err := Run(cfg)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "missing name of macro") {
		t.Errorf("error = %q, want it to mention the missing name", err.Error())
	}
}

func TestUndefMissingNameErrors(t *testing.T) {
	cfg := cfgWithSources(map[string]string{"main": "#undef \n"})
	_, err := Run(cfg)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "missing name of macro") {
		t.Errorf("error = %q, want it to mention the missing name", err.Error())
	}
}

func TestPragmaUnsupportedExtensionErrors(t *testing.T) {
	cfg := cfgWithSources(map[string]string{"main": "#pragma pack(1)"})
	_, err := Run(cfg)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "is unsupported") {
		t.Errorf("error = %q, want it to mention the unsupported extension", err.Error())
	}
}

func TestErrorDirectiveInsideFalseBranchIsNeverEvaluated(t *testing.T) {
	cfg := cfgWithSources(map[string]string{
		"main": `#ifdef NEVER_DEFINED` + "\n" + `#error "should never fire"` + "\n" + `#endif` + "\n" + `safe`,
	})
	got, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.TrimSpace(got.Sources["main"]) != "safe" {
		t.Errorf("got %q, want %q", got.Sources["main"], "safe")
	}
}
