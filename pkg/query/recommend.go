package query

import (
	"math"
	"sort"
	"time"

	"github.com/nino-chavez/gallery-query/pkg/gallery"
)

// Similarity weights. Maximum possible score is 105: 30+25+15+15+10 plus up to 10 for
// quality closeness.
const (
	weightEmotion         = 30
	weightPlayType        = 25
	weightComposition     = 15
	weightActionIntensity = 15
	weightTimeOfDay       = 10
)

// Preference-match weights
const (
	prefWeightEmotion     = 20
	prefWeightPlayType    = 15
	prefWeightComposition = 10
	prefBonusQuality      = 25
	prefBonusPortfolio    = 20
)

/**************************************************************************************************
** CalculateSimilarityScore computes a pairwise similarity score between two photos. Photos
** without enrichment metadata score 0 against everything. Otherwise the score is the sum of
** weighted exact matches on emotion, play type, composition, action intensity and time of
** day, plus a quality-closeness term of max(0, 10 - |Δ composition score|).
**
** The function is symmetric: score(a, b) == score(b, a).
**
** @param a - First photo
** @param b - Second photo
** @return float64 - Similarity score in [0, 105] for sane metadata
**************************************************************************************************/
func CalculateSimilarityScore(a gallery.TPhoto, b gallery.TPhoto) float64 {
	if a.Metadata == nil || b.Metadata == nil {
		return 0
	}

	score := 0.0
	if a.Metadata.Emotion == b.Metadata.Emotion {
		score += weightEmotion
	}
	if a.Metadata.PlayType == b.Metadata.PlayType {
		score += weightPlayType
	}
	if a.Metadata.Composition == b.Metadata.Composition {
		score += weightComposition
	}
	if a.Metadata.ActionIntensity == b.Metadata.ActionIntensity {
		score += weightActionIntensity
	}
	if a.Metadata.TimeOfDay == b.Metadata.TimeOfDay {
		score += weightTimeOfDay
	}

	score += math.Max(0, 10-math.Abs(a.Metadata.CompositionScore-b.Metadata.CompositionScore))
	return score
}

/**************************************************************************************************
** FindSimilarPhotos scores every photo in the collection against the target, excluding the
** target itself by ID, and returns the top limit photos by descending score. Equal scores
** keep their original relative order (stable sort, no secondary key).
**
** @param target - Photo to find neighbours for
** @param allPhotos - Collection to score
** @param limit - Maximum number of results (DefaultSimilarLimit when <= 0)
** @return []gallery.TPhoto - Up to limit most similar photos
**************************************************************************************************/
func FindSimilarPhotos(target gallery.TPhoto, allPhotos []gallery.TPhoto, limit int) []gallery.TPhoto {
	if limit <= 0 {
		limit = gallery.DefaultSimilarLimit
	}

	type scored struct {
		photo gallery.TPhoto
		score float64
	}

	candidates := make([]scored, 0, len(allPhotos))
	for _, photo := range allPhotos {
		if photo.ID == target.ID {
			continue
		}
		candidates = append(candidates, scored{photo: photo, score: CalculateSimilarityScore(target, photo)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]gallery.TPhoto, len(candidates))
	for i, c := range candidates {
		result[i] = c.photo
	}
	return result
}

/**************************************************************************************************
** BuildUserPreferences derives a preference profile from a view history: frequency maps of
** emotion, play type and composition over enriched entries, plus the average composition
** score of the history as the quality threshold. An empty or fully unenriched history
** yields empty maps and the default threshold. The empty-string play type sentinel is not
** counted, so photos without a play type contribute and receive no play-type preference.
**
** @param viewHistory - Previously viewed photos, oldest to newest (order is not used)
** @return gallery.TUserPreferences - Derived profile
**************************************************************************************************/
func BuildUserPreferences(viewHistory []gallery.TPhoto) gallery.TUserPreferences {
	prefs := gallery.TUserPreferences{
		Emotions:            make(map[string]int),
		PlayTypes:           make(map[string]int),
		Compositions:        make(map[string]int),
		AvgQualityThreshold: gallery.DefaultQualityThreshold,
	}

	scoreSum := 0.0
	scored := 0
	for _, photo := range viewHistory {
		m := photo.Metadata
		if m == nil {
			continue
		}
		if m.Emotion != "" {
			prefs.Emotions[m.Emotion]++
		}
		if m.PlayType != gallery.PlayTypeNone {
			prefs.PlayTypes[m.PlayType]++
		}
		if m.Composition != "" {
			prefs.Compositions[m.Composition]++
		}
		scoreSum += m.CompositionScore
		scored++
	}

	if scored > 0 {
		prefs.AvgQualityThreshold = scoreSum / float64(scored)
	}
	return prefs
}

/**************************************************************************************************
** CalculatePreferenceMatch scores a photo against a preference profile: frequency of the
** photo's emotion, play type and composition weighted 20/15/10, a +25 bonus when the
** composition score clears the profile threshold, and a +20 bonus for portfolio-worthy
** photos. Unenriched photos score 0.
**
** @param photo - Photo to score
** @param prefs - Preference profile from BuildUserPreferences
** @return float64 - Preference score, 0 or positive
**************************************************************************************************/
func CalculatePreferenceMatch(photo gallery.TPhoto, prefs gallery.TUserPreferences) float64 {
	m := photo.Metadata
	if m == nil {
		return 0
	}

	score := float64(prefs.Emotions[m.Emotion]*prefWeightEmotion +
		prefs.PlayTypes[m.PlayType]*prefWeightPlayType +
		prefs.Compositions[m.Composition]*prefWeightComposition)

	if m.CompositionScore >= prefs.AvgQualityThreshold {
		score += prefBonusQuality
	}
	if m.PortfolioWorthy {
		score += prefBonusPortfolio
	}
	return score
}

/**************************************************************************************************
** GetRecommendations produces personalized recommendations from a view history: photos
** already viewed are excluded, only portfolio-worthy photos are considered, and the
** remainder is ranked by CalculatePreferenceMatch descending (stable on ties) and
** truncated to limit.
**
** @param viewHistory - Previously viewed photos
** @param allPhotos - Collection to recommend from
** @param limit - Maximum number of results (DefaultRecommendLimit when <= 0)
** @return []gallery.TPhoto - Ranked recommendations
**************************************************************************************************/
func GetRecommendations(viewHistory []gallery.TPhoto, allPhotos []gallery.TPhoto, limit int) []gallery.TPhoto {
	if limit <= 0 {
		limit = gallery.DefaultRecommendLimit
	}

	prefs := BuildUserPreferences(viewHistory)

	viewed := make(map[string]bool, len(viewHistory))
	for _, photo := range viewHistory {
		viewed[photo.ID] = true
	}

	type scored struct {
		photo gallery.TPhoto
		score float64
	}

	candidates := make([]scored, 0, len(allPhotos))
	for _, photo := range allPhotos {
		if viewed[photo.ID] {
			continue
		}
		if photo.Metadata == nil || !photo.Metadata.PortfolioWorthy {
			continue
		}
		candidates = append(candidates, scored{photo: photo, score: CalculatePreferenceMatch(photo, prefs)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]gallery.TPhoto, len(candidates))
	for i, c := range candidates {
		result[i] = c.photo
	}
	return result
}

/**************************************************************************************************
** GetTrendingPhotos ranks portfolio-worthy photos by combined emotional impact plus
** composition score, descending. When two photos' combined scores differ by less than 1
** the comparison falls back to recency (createdAt descending) for that pair. The fuzzy tie
** is evaluated per comparison, not as a two-level sort, so the comparator is not a strict
** weak ordering; the sort must stay stable and the comparator must stay per-pair to keep
** output parity with the gallery frontend.
**
** @param allPhotos - Collection to rank
** @param limit - Maximum number of results (DefaultTrendingLimit when <= 0)
** @return []gallery.TPhoto - Trending photos
**************************************************************************************************/
func GetTrendingPhotos(allPhotos []gallery.TPhoto, limit int) []gallery.TPhoto {
	if limit <= 0 {
		limit = gallery.DefaultTrendingLimit
	}

	trending := make([]gallery.TPhoto, 0, len(allPhotos))
	for _, photo := range allPhotos {
		if photo.Metadata != nil && photo.Metadata.PortfolioWorthy {
			trending = append(trending, photo)
		}
	}

	sort.SliceStable(trending, func(i, j int) bool {
		scoreI := trending[i].Metadata.EmotionalImpact + trending[i].Metadata.CompositionScore
		scoreJ := trending[j].Metadata.EmotionalImpact + trending[j].Metadata.CompositionScore
		if math.Abs(scoreI-scoreJ) < 1 {
			return parseCreatedAt(trending[i].CreatedAt).After(parseCreatedAt(trending[j].CreatedAt))
		}
		return scoreI > scoreJ
	})

	if len(trending) > limit {
		trending = trending[:limit]
	}
	return trending
}

/**************************************************************************************************
** GetPhotosByEmotion returns portfolio-worthy photos with the given emotion, ranked by
** emotional impact descending.
**
** @param allPhotos - Collection to rank
** @param emotion - Exact emotion value to match
** @param limit - Maximum number of results (DefaultCategoryLimit when <= 0)
** @return []gallery.TPhoto - Matching photos
**************************************************************************************************/
func GetPhotosByEmotion(allPhotos []gallery.TPhoto, emotion string, limit int) []gallery.TPhoto {
	return topByScore(allPhotos, limit, func(m *gallery.TPhotoMetadata) bool {
		return m.Emotion == emotion
	}, func(m *gallery.TPhotoMetadata) float64 {
		return m.EmotionalImpact
	})
}

/**************************************************************************************************
** GetPhotosByPlayType returns portfolio-worthy photos with the given play type, ranked by
** composition score descending.
**
** @param allPhotos - Collection to rank
** @param playType - Exact play type value to match
** @param limit - Maximum number of results (DefaultCategoryLimit when <= 0)
** @return []gallery.TPhoto - Matching photos
**************************************************************************************************/
func GetPhotosByPlayType(allPhotos []gallery.TPhoto, playType string, limit int) []gallery.TPhoto {
	return topByScore(allPhotos, limit, func(m *gallery.TPhotoMetadata) bool {
		return m.PlayType == playType
	}, func(m *gallery.TPhotoMetadata) float64 {
		return m.CompositionScore
	})
}

/**************************************************************************************************
** topByScore filters to portfolio-worthy photos passing the match predicate and returns the
** top limit by the score field, descending, stable on ties.
**************************************************************************************************/
func topByScore(allPhotos []gallery.TPhoto, limit int, match func(*gallery.TPhotoMetadata) bool, score func(*gallery.TPhotoMetadata) float64) []gallery.TPhoto {
	if limit <= 0 {
		limit = gallery.DefaultCategoryLimit
	}

	result := make([]gallery.TPhoto, 0, len(allPhotos))
	for _, photo := range allPhotos {
		if photo.Metadata != nil && photo.Metadata.PortfolioWorthy && match(photo.Metadata) {
			result = append(result, photo)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return score(result[i].Metadata) > score(result[j].Metadata)
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

/**************************************************************************************************
** parseCreatedAt parses a photo timestamp for recency comparison. Unparseable or empty
** timestamps compare as the zero time, i.e. older than everything.
**************************************************************************************************/
func parseCreatedAt(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
