package query

import (
	"fmt"
	"regexp"

	"github.com/nino-chavez/gallery-query/pkg/gallery"
)

/**************************************************************************************************
** TSearchPattern pairs a query regex with the predicate it selects. The matcher walks the
** table in declaration order and the first regex that matches the query wins outright, so
** the table is ordered most-specific-first: quality phrasing, then emotions, then play
** types, then composition and time-of-day, then use cases. A query matching an emotion
** pattern and a later play-type pattern always resolves to the emotion pattern; that
** precedence is the contract, keep the declaration order stable.
**************************************************************************************************/
type TSearchPattern struct {
	Category string
	Regex    *regexp.Regexp
	Match    func(photo gallery.TPhoto) bool
}

/**************************************************************************************************
** mustPattern compiles a table pattern through the shared regex cache. The table is fixed at
** build time, so a pattern that fails to compile is a programming error and panics at init.
**************************************************************************************************/
func mustPattern(pattern string) *regexp.Regexp {
	re, err := gallery.RegexCompile(pattern)
	if err != nil {
		panic(fmt.Sprintf("invalid search pattern %q: %v", pattern, err))
	}
	return re
}

// metadataFlag builds a predicate over a single boolean enrichment flag
func metadataFlag(get func(m *gallery.TPhotoMetadata) bool) func(gallery.TPhoto) bool {
	return func(p gallery.TPhoto) bool {
		return p.Metadata != nil && get(p.Metadata)
	}
}

// metadataField builds a predicate matching a scalar enrichment field against a value
func metadataField(get func(m *gallery.TPhotoMetadata) string, want string) func(gallery.TPhoto) bool {
	return func(p gallery.TPhoto) bool {
		return p.Metadata != nil && get(p.Metadata) == want
	}
}

func emotionIs(want string) func(gallery.TPhoto) bool {
	return metadataField(func(m *gallery.TPhotoMetadata) string { return m.Emotion }, want)
}

func playTypeIs(want string) func(gallery.TPhoto) bool {
	return metadataField(func(m *gallery.TPhotoMetadata) string { return m.PlayType }, want)
}

func compositionIs(want string) func(gallery.TPhoto) bool {
	return metadataField(func(m *gallery.TPhotoMetadata) string { return m.Composition }, want)
}

func timeOfDayIs(want string) func(gallery.TPhoto) bool {
	return metadataField(func(m *gallery.TPhotoMetadata) string { return m.TimeOfDay }, want)
}

func useCaseHas(want string) func(gallery.TPhoto) bool {
	return func(p gallery.TPhoto) bool {
		return p.Metadata != nil && gallery.Contains(p.Metadata.UseCases, want)
	}
}

/**************************************************************************************************
** searchPatterns is the ordered pattern table. Declaration order is load-bearing (see
** TSearchPattern); append new synonyms to an existing pattern rather than adding a new
** earlier entry.
**************************************************************************************************/
var searchPatterns = []TSearchPattern{
	// Quality phrasing resolves before anything else
	{
		Category: "quality",
		Regex:    mustPattern(`portfolio|quality|best|stunning|showcase|top shot`),
		Match:    metadataFlag(func(m *gallery.TPhotoMetadata) bool { return m.PortfolioWorthy }),
	},
	{
		Category: "quality",
		Regex:    mustPattern(`\bprint|wall art|canvas`),
		Match:    metadataFlag(func(m *gallery.TPhotoMetadata) bool { return m.PrintReady }),
	},
	{
		Category: "quality",
		Regex:    mustPattern(`social|instagram|shareable`),
		Match:    metadataFlag(func(m *gallery.TPhotoMetadata) bool { return m.SocialMediaOptimized }),
	},

	// Emotions resolve before play types: "victory celebration" is a triumph query, not a
	// celebration play-type query
	{Category: "emotion", Regex: mustPattern(`triumph|victor|celebrat|winning moment`), Match: emotionIs("triumph")},
	{Category: "emotion", Regex: mustPattern(`\bfocus|concentrat|locked in`), Match: emotionIs("focus")},
	{Category: "emotion", Regex: mustPattern(`intens|fierce`), Match: emotionIs("intensity")},
	{Category: "emotion", Regex: mustPattern(`determin|grit|resolve`), Match: emotionIs("determination")},
	{Category: "emotion", Regex: mustPattern(`excit|energy|hype`), Match: emotionIs("excitement")},
	{Category: "emotion", Regex: mustPattern(`seren|calm|quiet moment`), Match: emotionIs("serenity")},

	// Play types and action intensity
	{
		Category: "action",
		Regex:    mustPattern(`peak action|action shot|explosive`),
		Match: func(p gallery.TPhoto) bool {
			return p.Metadata != nil && (p.Metadata.ActionIntensity == "peak" || p.Metadata.ActionIntensity == "high")
		},
	},
	{Category: "play_type", Regex: mustPattern(`attack|spike|\bhit|\bkill`), Match: playTypeIs("attack")},
	{Category: "play_type", Regex: mustPattern(`\bblock|stuff|roof`), Match: playTypeIs("block")},
	{Category: "play_type", Regex: mustPattern(`\bdig\b|defensive save|floor defense`), Match: playTypeIs("dig")},
	{Category: "play_type", Regex: mustPattern(`\bserve|\bace\b`), Match: playTypeIs("serve")},
	{Category: "play_type", Regex: mustPattern(`\bset\b|assist`), Match: playTypeIs("set")},
	{Category: "play_type", Regex: mustPattern(`\bpass|receive|\bbump`), Match: playTypeIs("pass")},

	// Composition and time of day
	{Category: "composition", Regex: mustPattern(`golden.?hour|sunset light`), Match: timeOfDayIs("golden-hour")},
	{Category: "composition", Regex: mustPattern(`motion.?blur|sense of motion`), Match: compositionIs("motion-blur")},
	{Category: "composition", Regex: mustPattern(`rule.?of.?thirds|\bthirds\b`), Match: compositionIs("rule-of-thirds")},
	{Category: "composition", Regex: mustPattern(`close.?up|tight shot`), Match: compositionIs("close-up")},
	{Category: "composition", Regex: mustPattern(`wide.?angle|wide shot`), Match: compositionIs("wide-angle")},
	{Category: "composition", Regex: mustPattern(`\bmorning\b`), Match: timeOfDayIs("morning")},
	{Category: "composition", Regex: mustPattern(`\bafternoon\b`), Match: timeOfDayIs("afternoon")},
	{Category: "composition", Regex: mustPattern(`\bevening\b|\bnight\b`), Match: timeOfDayIs("evening")},

	// Use cases
	{Category: "use_case", Regex: mustPattern(`\bhero\b|banner`), Match: useCaseHas("website-hero")},
	{Category: "use_case", Regex: mustPattern(`athlete portfolio|player page`), Match: useCaseHas("athlete-portfolio")},
	{Category: "use_case", Regex: mustPattern(`editorial|story worthy`), Match: useCaseHas("editorial")},
}

/**************************************************************************************************
** searchTypePatterns drives the coarse query classification used for analytics reporting.
** It is deliberately independent of the main table: priority is quality, play_type,
** emotion, composition, then keyword, which may disagree with the pattern that actually
** fired. That disagreement is fine, the classification exists purely for reporting.
**************************************************************************************************/
var searchTypePatterns = []struct {
	Type  string
	Regex *regexp.Regexp
}{
	{"quality", mustPattern(`portfolio|quality|best|print|social`)},
	{"play_type", mustPattern(`attack|spike|\bblock|\bdig\b|\bserve|\bset\b|\bpass`)},
	{"emotion", mustPattern(`triumph|victor|celebrat|focus|intens|determin|excit|seren`)},
	{"composition", mustPattern(`golden|blur|thirds|close|wide|morning|afternoon|evening|night`)},
}
