package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("structural_mismatch", nil); msg == "structural_mismatch" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("structural_mismatch", nil); msg == "structures are incompatible" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code passthrough, got %q", msg)
	}
}

func TestSetTranslator_NilRestoresDefault(t *testing.T) {
	SetTranslator(nil)
	if msg := T("parse_error", nil); msg != "parse error" {
		t.Fatalf("expected default en message, got %q", msg)
	}
}
