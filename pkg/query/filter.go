// Package query implements the photo query engine: declarative filtering, pattern-first
// free-text search, and similarity/preference-based recommendations. Every function here is
// a pure, synchronous transform over the caller's in-memory photo slice; inputs are never
// mutated and no state survives between calls.
package query

import (
	"github.com/nino-chavez/gallery-query/pkg/gallery"
)

/**************************************************************************************************
** FilterPhotos applies a sparse criteria specification to a photo collection and returns
** the matching subset in input order. Populated criteria fields combine with AND semantics;
** list-valued fields require membership of the photo's scalar value (use cases are the one
** any-overlap clause). Photos without enrichment metadata never match: absence is a
** distinct state, not a record of zeroes and falses.
**
** Predicates are evaluated in a fixed order and short-circuit on the first failure; since
** every clause is ANDed, the order only affects work done, never the outcome. Unknown or
** malformed criteria values simply never match, no error is ever raised.
**
** @param photos - Photos to filter, order preserved in the output
** @param criteria - Sparse filter specification; the zero value matches every enriched photo
** @return []gallery.TPhoto - Matching photos, freshly allocated
**************************************************************************************************/
func FilterPhotos(photos []gallery.TPhoto, criteria gallery.TFilterCriteria) []gallery.TPhoto {
	result := make([]gallery.TPhoto, 0, len(photos))

	for _, photo := range photos {
		if matchesCriteria(photo, criteria) {
			result = append(result, photo)
		}
	}

	return result
}

/**************************************************************************************************
** matchesCriteria evaluates a single photo against the criteria. Kept separate from the
** loop so the short-circuit chain reads top to bottom in evaluation order.
**************************************************************************************************/
func matchesCriteria(photo gallery.TPhoto, criteria gallery.TFilterCriteria) bool {
	m := photo.Metadata
	if m == nil {
		return false
	}

	if criteria.PortfolioWorthy && !m.PortfolioWorthy {
		return false
	}
	if criteria.PrintReady && !m.PrintReady {
		return false
	}
	if criteria.SocialMediaOptimized && !m.SocialMediaOptimized {
		return false
	}

	if criteria.MinQualityScore > 0 && gallery.AverageQualityScore(m) < criteria.MinQualityScore {
		return false
	}

	if len(criteria.Emotions) > 0 && !gallery.Contains(criteria.Emotions, m.Emotion) {
		return false
	}
	if len(criteria.Compositions) > 0 && !gallery.Contains(criteria.Compositions, m.Composition) {
		return false
	}
	if len(criteria.TimeOfDay) > 0 && !gallery.Contains(criteria.TimeOfDay, m.TimeOfDay) {
		return false
	}
	if len(criteria.PlayTypes) > 0 && !gallery.Contains(criteria.PlayTypes, m.PlayType) {
		return false
	}
	if len(criteria.ActionIntensities) > 0 && !gallery.Contains(criteria.ActionIntensities, m.ActionIntensity) {
		return false
	}

	if len(criteria.UseCases) > 0 && !gallery.ContainsAny(m.UseCases, criteria.UseCases) {
		return false
	}

	return true
}
