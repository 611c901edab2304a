package detector

import (
	"strings"
	"testing"
)

func TestDetectISO_English(t *testing.T) {
	d := New()

	code, ok := d.DetectISO("The quick brown fox jumps over the lazy dog near the river bank.")
	if !ok {
		t.Fatal("expected a detection")
	}
	if !strings.EqualFold(code, "en") {
		t.Errorf("expected en, got %q", code)
	}
}

func TestDetectISO_ShortTextUndetermined(t *testing.T) {
	d := New()

	if _, ok := d.DetectISO("hi"); ok {
		t.Error("very short texts must be reported as undetermined")
	}
	if _, ok := d.DetectISO(""); ok {
		t.Error("empty text must be reported as undetermined")
	}
}
