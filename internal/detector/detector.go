// Package detector identifies the language of incoming text so messages
// already in the user's own language skip the translation round trip.
package detector

import (
	lingua "github.com/pemistahl/lingua-go"
)

// shortTextLimit is the minimum rune count for a reliable detection;
// shorter texts are reported as undetermined.
const shortTextLimit = 12

type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector over all languages lingua knows. Construction is
// expensive; reuse the instance.
func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &Detector{detector: detector}
}

// DetectISO returns the ISO 639-1 code of the most likely language of
// text, or ("", false) when the text is too short or ambiguous.
func (d *Detector) DetectISO(text string) (string, bool) {
	if len([]rune(text)) < shortTextLimit {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return lang.IsoCode639_1().String(), true
}
