package gallery

/**************************************************************************************************
** PlayTypeNone is the sentinel for photos whose enrichment carries no play type (e.g. crowd
** or venue shots). It is the empty string so that membership tests against criteria lists
** behave the same as the enrichment pipeline's absent-field coercion.
**************************************************************************************************/
const PlayTypeNone = ""

/**************************************************************************************************
** Controlled vocabularies for the enrichment metadata. The engine never validates photo
** fields against these; they feed search suggestions and CLI flag help.
**************************************************************************************************/
var Emotions = []string{"triumph", "focus", "intensity", "determination", "excitement", "serenity"}

var PlayTypes = []string{"attack", "block", "dig", "set", "serve", "pass", "celebration", "timeout"}

var Compositions = []string{"rule-of-thirds", "leading-lines", "symmetry", "motion-blur", "close-up", "wide-angle", "dramatic-angle"}

var TimesOfDay = []string{"morning", "afternoon", "golden-hour", "evening", "night", "midday"}

var ActionIntensities = []string{"low", "medium", "high", "peak"}

var UseCases = []string{"social-media", "website-hero", "athlete-portfolio", "print", "editorial"}

/**************************************************************************************************
** Default result limits for the recommendation entry points.
**************************************************************************************************/
const (
	DefaultSimilarLimit     = 6
	DefaultRecommendLimit   = 10
	DefaultTrendingLimit    = 12
	DefaultCategoryLimit    = 8
	MaxSearchSuggestions    = 8
	DefaultQualityThreshold = 7.0
)
