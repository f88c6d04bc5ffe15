package gallery

/**************************************************************************************************
** TPhoto represents a single gallery image record as delivered by the photo source.
** The metadata pointer is nil for photos the enrichment pipeline has not processed yet;
** "unenriched" is a distinct state, not a zero-value metadata record, and the query engine
** treats it as such everywhere (unenriched photos never satisfy metadata-reading filters).
**************************************************************************************************/
type TPhoto struct {
	ID        string          `json:"id"`        // Unique identifier, stable across queries
	ImageKey  string          `json:"imageKey"`  // External-system identifier, may differ from ID
	ImageURL  string          `json:"imageUrl"`  // Resolvable URI to the displayable asset
	Title     string          `json:"title"`     // Free text, may be empty
	Caption   string          `json:"caption"`   // Free text, may be empty
	Keywords  []string        `json:"keywords"`  // Order preserved for display, irrelevant for matching
	CreatedAt string          `json:"createdAt"` // RFC3339 capture/upload time, used for recency ordering
	Metadata  *TPhotoMetadata `json:"metadata,omitempty"`
}

/**************************************************************************************************
** TPhotoMetadata is the AI-derived enrichment attached to a photo. It is produced by the
** external ingestion pipeline and is read-only to this module. Quality scores are nominally
** 0-10 but nothing here validates that; out-of-range garbage skews scoring without crashing.
**************************************************************************************************/
type TPhotoMetadata struct {
	Sharpness        float64 `json:"sharpness"`        // Quality score, nominal 0-10
	ExposureAccuracy float64 `json:"exposureAccuracy"` // Quality score, nominal 0-10
	CompositionScore float64 `json:"compositionScore"` // Quality score, nominal 0-10
	EmotionalImpact  float64 `json:"emotionalImpact"`  // Quality score, nominal 0-10

	PortfolioWorthy      bool `json:"portfolioWorthy"`      // Showcase-suitable flag
	PrintReady           bool `json:"printReady"`           // Print-quality flag
	SocialMediaOptimized bool `json:"socialMediaOptimized"` // Social-crop flag

	Emotion         string `json:"emotion"`         // One of the Emotions vocabulary
	Composition     string `json:"composition"`     // One of the Compositions vocabulary
	TimeOfDay       string `json:"timeOfDay"`       // One of the TimesOfDay vocabulary
	PlayType        string `json:"playType"`        // One of the PlayTypes vocabulary, or PlayTypeNone
	ActionIntensity string `json:"actionIntensity"` // One of the ActionIntensities vocabulary

	UseCases []string `json:"useCases"` // Tags from the UseCases vocabulary

	AIProvider string  `json:"aiProvider"` // Provenance: which model enriched this photo
	AICost     float64 `json:"aiCost"`     // Provenance: enrichment cost
	EnrichedAt string  `json:"enrichedAt"` // Provenance: enrichment time
}

/**************************************************************************************************
** TFilterCriteria is a sparse filter specification. Populated fields are combined with AND
** semantics; within a multi-valued field the photo's value must be a member of the list
** (OR semantics). Zero values impose no constraint: a false boolean field means "don't care",
** not "must be false", and a zero MinQualityScore disables the quality threshold.
**************************************************************************************************/
type TFilterCriteria struct {
	PortfolioWorthy      bool    `json:"portfolioWorthy,omitempty"`
	PrintReady           bool    `json:"printReady,omitempty"`
	SocialMediaOptimized bool    `json:"socialMediaOptimized,omitempty"`
	MinQualityScore      float64 `json:"minQualityScore,omitempty"`

	Emotions          []string `json:"emotions,omitempty"`
	Compositions      []string `json:"compositions,omitempty"`
	TimeOfDay         []string `json:"timeOfDay,omitempty"`
	PlayTypes         []string `json:"playTypes,omitempty"`
	ActionIntensities []string `json:"actionIntensities,omitempty"`
	UseCases          []string `json:"useCases,omitempty"`
}

/**************************************************************************************************
** TUserPreferences is a viewing-history profile consumed by the recommendation scorer.
** The frequency maps count how often each metadata value appeared in the history; the
** threshold is the average composition score of viewed photos (default when history is
** empty or unenriched).
**************************************************************************************************/
type TUserPreferences struct {
	Emotions            map[string]int `json:"emotions"`
	PlayTypes           map[string]int `json:"playTypes"`
	Compositions        map[string]int `json:"compositions"`
	AvgQualityThreshold float64        `json:"avgQualityThreshold"`
}

/**************************************************************************************************
** TSearchAnalytics wraps a search result set with reporting data. SearchType is a coarse
** classification of the query computed independently of which pattern actually fired, so
** the two may disagree; it exists purely for reporting.
**************************************************************************************************/
type TSearchAnalytics struct {
	Results      []TPhoto `json:"results"`
	SearchType   string   `json:"searchType"`
	SearchTimeMs float64  `json:"searchTimeMs"`
	Metadata     struct {
		Query         string `json:"query"`
		TotalPhotos   int    `json:"totalPhotos"`
		MatchedPhotos int    `json:"matchedPhotos"`
	} `json:"metadata"`
}
