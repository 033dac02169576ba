package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestGetFallsBackOnUnknownKey(t *testing.T) {
	b := New(language.AmericanEnglish, map[string]string{"greeting": "Hello."})

	if got := b.Get("greeting", "nope"); got != "Hello." {
		t.Fatalf("expected registered message, got %q", got)
	}
	if got := b.Get("missing", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestFormatRendersArguments(t *testing.T) {
	b := New(language.AmericanEnglish, map[string]string{"count": "Collect %d %s."})

	if got := b.Format("count", 50, "copper"); got != "Collect 50 copper." {
		t.Fatalf("unexpected formatted message: %q", got)
	}
	if got := b.Format("missing", 1); got != "missing" {
		t.Fatalf("expected key passthrough, got %q", got)
	}
}

func TestFormatStringDegradesOnMalformedTemplate(t *testing.T) {
	b := Default()

	if got := b.FormatString("Hold for %s", "4:20"); got != "Hold for 4:20" {
		t.Fatalf("unexpected inline format: %q", got)
	}
	malformed := "Hold for %d"
	if got := b.FormatString(malformed, "4:20"); got != "" {
		t.Fatalf("expected empty string for malformed template, got %q", got)
	}
}

func TestDefaultBundleCarriesObjectiveMessages(t *testing.T) {
	if got := Default().Format("objective.item", 0, 50, "copper"); got != "Obtain items: 0/50 copper." {
		t.Fatalf("unexpected objective message: %q", got)
	}
}
