// Package pipeline runs the segmenter and the segment translator over a
// whole message and folds the per-unit outcomes into one aggregate.
package pipeline

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/linguarelay/linguarelay/internal/segmenter"
	"github.com/linguarelay/linguarelay/internal/translator"
)

// UnitTranslator performs one round trip for one unit. *translator.Client
// implements it.
type UnitTranslator interface {
	TranslateUnit(ctx context.Context, unit segmenter.Unit, source, target string) translator.Outcome
}

// Memory is an optional cache of unit translations. *store.Store implements
// it. Memory failures are never fatal; a failing memory degrades to plain
// network translation.
type Memory interface {
	Lookup(ctx context.Context, sourceText, sourceLang, targetLang string) (string, bool, error)
	Save(ctx context.Context, sourceText, sourceLang, targetLang, translated string) error
}

// Aggregate is the combined result of translating every unit of one
// message. Text holds the translated text for succeeded units and the
// original text for failed ones, in original order. An empty Errors set
// means a full, clean translation; otherwise Text is a best-effort partial
// result.
type Aggregate struct {
	Text        string
	Errors      []string
	RateLimited bool
}

// Clean reports whether every unit translated successfully.
func (a Aggregate) Clean() bool {
	return len(a.Errors) == 0
}

// ErrorSummary joins the distinct error descriptions into one display
// string.
func (a Aggregate) ErrorSummary() string {
	return strings.Join(a.Errors, "; ")
}

type Pipeline struct {
	units  UnitTranslator
	memory Memory
	log    *slog.Logger
}

// New creates a Pipeline. memory may be nil to translate without a cache.
func New(units UnitTranslator, memory Memory, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{units: units, memory: memory, log: log}
}

// TranslateMessage translates text unit by unit, in strict original order,
// and aggregates the outcomes. Failed units contribute their original text;
// no user content is ever dropped. Error descriptions are deduplicated and
// sorted lexicographically.
func (p *Pipeline) TranslateMessage(ctx context.Context, text, source, target string) Aggregate {
	var out strings.Builder
	failures := make(map[string]struct{})
	rateLimited := false

	for unit := range segmenter.Units(text) {
		if cached, ok := p.fromMemory(ctx, unit, source, target); ok {
			out.WriteString(cached)
			continue
		}

		outcome := p.units.TranslateUnit(ctx, unit, source, target)
		switch outcome.Failure {
		case translator.FailureNone:
			out.WriteString(outcome.Translated)
			p.remember(ctx, unit, source, target, outcome.Translated)
		case translator.FailureRateLimited:
			out.WriteString(unit.Text)
			failures[outcome.Detail] = struct{}{}
			rateLimited = true
		case translator.FailureTransient, translator.FailureBadResponse:
			out.WriteString(unit.Text)
			failures[outcome.Detail] = struct{}{}
		}
	}

	return Aggregate{
		Text:        out.String(),
		Errors:      slices.Sorted(maps.Keys(failures)),
		RateLimited: rateLimited,
	}
}

func (p *Pipeline) fromMemory(ctx context.Context, unit segmenter.Unit, source, target string) (string, bool) {
	if p.memory == nil {
		return "", false
	}
	cached, found, err := p.memory.Lookup(ctx, unit.Text, source, target)
	if err != nil {
		p.log.Warn("translation memory lookup failed", "error", err)
		return "", false
	}
	if !found {
		return "", false
	}
	if unit.TrailingSpace {
		cached += " "
	}
	return cached, true
}

func (p *Pipeline) remember(ctx context.Context, unit segmenter.Unit, source, target, translated string) {
	if p.memory == nil {
		return
	}
	// Store without the restored trailing space; it is re-appended on hit
	// according to each unit's own flag.
	if err := p.memory.Save(ctx, unit.Text, source, target, strings.TrimRight(translated, " ")); err != nil {
		p.log.Warn("translation memory save failed", "error", err)
	}
}
