package query

import (
	"strings"
	"time"

	"github.com/nino-chavez/gallery-query/pkg/gallery"
)

/**************************************************************************************************
** Search maps a free-text query to a result set: pattern-first, keyword-fallback,
** first-match-wins. The query is tested case-insensitively against the pattern table in
** declaration order; the first matching pattern's predicate is applied to the whole
** collection and later patterns are never consulted. When no pattern matches, the query
** falls back to a substring scan over each photo's text blob (title, caption, keywords and
** the scalar metadata fields). An empty query therefore matches every photo, empty
** substring semantics, and the function never fails.
**
** @param query - Free-text query, any casing
** @param photos - Photos to search, output preserves input order
** @return []gallery.TPhoto - Matching photos
**************************************************************************************************/
func Search(query string, photos []gallery.TPhoto) []gallery.TPhoto {
	for _, pattern := range searchPatterns {
		if pattern.Regex.MatchString(query) {
			result := make([]gallery.TPhoto, 0, len(photos))
			for _, photo := range photos {
				if pattern.Match(photo) {
					result = append(result, photo)
				}
			}
			return result
		}
	}

	return keywordScan(query, photos)
}

/**************************************************************************************************
** keywordScan is the fallback path: keep photos whose lowercased text blob contains the
** lowercased query as a substring.
**************************************************************************************************/
func keywordScan(query string, photos []gallery.TPhoto) []gallery.TPhoto {
	needle := strings.ToLower(query)
	result := make([]gallery.TPhoto, 0, len(photos))

	for _, photo := range photos {
		if strings.Contains(searchBlob(photo), needle) {
			result = append(result, photo)
		}
	}

	return result
}

/**************************************************************************************************
** searchBlob concatenates the searchable text of a photo into one lowercased string:
** title, caption, keywords, and the scalar enrichment fields that read like words.
**************************************************************************************************/
func searchBlob(photo gallery.TPhoto) string {
	parts := []string{photo.Title, photo.Caption}
	parts = append(parts, photo.Keywords...)
	if m := photo.Metadata; m != nil {
		parts = append(parts, m.Emotion, m.PlayType, m.Composition, m.TimeOfDay)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

/**************************************************************************************************
** SearchWithAnalytics runs Search and wraps the results with reporting data: a coarse
** query-type classification, wall-clock elapsed time for the match itself, and match
** counts. The classification is computed independently of which pattern fired and may
** disagree with it; it exists purely for reporting.
**
** @param query - Free-text query
** @param photos - Photos to search
** @return gallery.TSearchAnalytics - Results plus reporting wrapper
**************************************************************************************************/
func SearchWithAnalytics(query string, photos []gallery.TPhoto) gallery.TSearchAnalytics {
	start := time.Now()
	results := Search(query, photos)
	elapsed := time.Since(start)

	analytics := gallery.TSearchAnalytics{
		Results:      results,
		SearchType:   classifySearchType(query),
		SearchTimeMs: float64(elapsed.Nanoseconds()) / 1e6,
	}
	analytics.Metadata.Query = query
	analytics.Metadata.TotalPhotos = len(photos)
	analytics.Metadata.MatchedPhotos = len(results)
	return analytics
}

/**************************************************************************************************
** classifySearchType buckets a query for analytics: quality, play_type, emotion,
** composition, or keyword, in that priority order.
**************************************************************************************************/
func classifySearchType(query string) string {
	for _, p := range searchTypePatterns {
		if p.Regex.MatchString(query) {
			return p.Type
		}
	}
	return "keyword"
}

/**************************************************************************************************
** GetSearchSuggestions returns up to MaxSearchSuggestions deduplicated suggestion strings
** whose text contains the lowercased query as a substring. Suggestions are drawn from the
** fixed vocabularies in order: emotions, play types, compositions (hyphens replaced by
** spaces), then the conditional quality/social/action phrases, truncated to the cap.
**
** @param query - Partial query the user is typing
** @param photos - Photo collection (reserved for collection-aware suggestions)
** @return []string - Ordered, deduplicated suggestions
**************************************************************************************************/
func GetSearchSuggestions(query string, photos []gallery.TPhoto) []string {
	_ = photos
	needle := strings.ToLower(query)

	suggestions := make([]string, 0, gallery.MaxSearchSuggestions)
	seen := make(map[string]bool)

	add := func(candidates []string) {
		for _, candidate := range candidates {
			if len(suggestions) >= gallery.MaxSearchSuggestions {
				return
			}
			if seen[candidate] || !strings.Contains(candidate, needle) {
				continue
			}
			seen[candidate] = true
			suggestions = append(suggestions, candidate)
		}
	}

	add(gallery.Emotions)
	add(gallery.PlayTypes)

	compositions := make([]string, len(gallery.Compositions))
	for i, c := range gallery.Compositions {
		compositions[i] = strings.ReplaceAll(c, "-", " ")
	}
	add(compositions)

	add([]string{"portfolio quality", "print ready", "social media", "peak action"})

	return suggestions
}
