package domain

import (
	"strings"
	"testing"
)

func TestStarterCode_KnownLanguages(t *testing.T) {
	if got := StarterCode("python"); got != `print("Hello World")` {
		t.Fatalf("unexpected python starter: %q", got)
	}
	if got := StarterCode("go"); !strings.HasPrefix(got, "package main") {
		t.Fatalf("go starter should begin with package main, got %q", got)
	}
	for _, lang := range []string{"python", "java", "javascript", "cpp", "c", "go", "bash"} {
		if got := StarterCode(lang); got == "" || got == StarterNotSupported {
			t.Fatalf("expected starter for %s, got %q", lang, got)
		}
	}
}

func TestStarterCode_CaseInsensitive(t *testing.T) {
	if StarterCode("Python") != StarterCode("python") {
		t.Fatalf("matching should be case-insensitive")
	}
	if StarterCode("GO") != StarterCode("go") {
		t.Fatalf("matching should be case-insensitive")
	}
}

func TestStarterCode_Unknown(t *testing.T) {
	if got := StarterCode("cobol"); got != StarterNotSupported {
		t.Fatalf("expected %q, got %q", StarterNotSupported, got)
	}
	if got := StarterCode(""); got != StarterNotSupported {
		t.Fatalf("expected %q for empty tag, got %q", StarterNotSupported, got)
	}
}
