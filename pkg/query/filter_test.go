package query

import (
	"testing"

	"github.com/nino-chavez/gallery-query/pkg/gallery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/************************************************************************************************
** Test helper functions and types
************************************************************************************************/

func photoFactory(id string, metadata *gallery.TPhotoMetadata) gallery.TPhoto {
	return gallery.TPhoto{
		ID:        id,
		ImageKey:  "key-" + id,
		ImageURL:  "https://photos.example.com/" + id,
		Title:     "Photo " + id,
		CreatedAt: "2025-06-01T12:00:00Z",
		Metadata:  metadata,
	}
}

func enrichedFactory(id string, mutate func(m *gallery.TPhotoMetadata)) gallery.TPhoto {
	m := &gallery.TPhotoMetadata{
		Sharpness:        8,
		ExposureAccuracy: 8,
		CompositionScore: 8,
		EmotionalImpact:  8,
		Emotion:          "focus",
		Composition:      "rule-of-thirds",
		TimeOfDay:        "afternoon",
		PlayType:         "attack",
		ActionIntensity:  "high",
		UseCases:         []string{"social-media"},
	}
	if mutate != nil {
		mutate(m)
	}
	return photoFactory(id, m)
}

func photoIDs(photos []gallery.TPhoto) []string {
	ids := make([]string, len(photos))
	for i, p := range photos {
		ids[i] = p.ID
	}
	return ids
}

/************************************************************************************************
** Test cases for the filter evaluator
************************************************************************************************/

func TestFilterPhotos(t *testing.T) {
	tests := []struct {
		name     string
		photos   []gallery.TPhoto
		criteria gallery.TFilterCriteria
		wantIDs  []string
	}{
		{
			name: "empty criteria keeps enriched photos only",
			photos: []gallery.TPhoto{
				enrichedFactory("a", nil),
				photoFactory("b", nil),
				enrichedFactory("c", nil),
			},
			criteria: gallery.TFilterCriteria{},
			wantIDs:  []string{"a", "c"},
		},
		{
			name: "portfolio flag excludes false and missing metadata",
			photos: []gallery.TPhoto{
				enrichedFactory("a", func(m *gallery.TPhotoMetadata) { m.PortfolioWorthy = true }),
				enrichedFactory("b", nil),
				photoFactory("c", nil),
			},
			criteria: gallery.TFilterCriteria{PortfolioWorthy: true},
			wantIDs:  []string{"a"},
		},
		{
			name: "print ready and social flags combine with AND",
			photos: []gallery.TPhoto{
				enrichedFactory("a", func(m *gallery.TPhotoMetadata) { m.PrintReady = true }),
				enrichedFactory("b", func(m *gallery.TPhotoMetadata) { m.PrintReady = true; m.SocialMediaOptimized = true }),
			},
			criteria: gallery.TFilterCriteria{PrintReady: true, SocialMediaOptimized: true},
			wantIDs:  []string{"b"},
		},
		{
			name: "min quality score uses mean of four scores",
			photos: []gallery.TPhoto{
				enrichedFactory("a", nil), // mean 8
				enrichedFactory("b", func(m *gallery.TPhotoMetadata) { m.Sharpness = 2; m.ExposureAccuracy = 2 }), // mean 5
			},
			criteria: gallery.TFilterCriteria{MinQualityScore: 7},
			wantIDs:  []string{"a"},
		},
		{
			name: "missing sub-score drags the average down",
			photos: []gallery.TPhoto{
				// 9+9+9+0 = 27, divided by 4 is 6.75, below the threshold
				enrichedFactory("a", func(m *gallery.TPhotoMetadata) { m.Sharpness = 9; m.ExposureAccuracy = 9; m.CompositionScore = 9; m.EmotionalImpact = 0 }),
			},
			criteria: gallery.TFilterCriteria{MinQualityScore: 7},
			wantIDs:  []string{},
		},
		{
			name: "emotion membership is OR within the list",
			photos: []gallery.TPhoto{
				enrichedFactory("a", func(m *gallery.TPhotoMetadata) { m.Emotion = "triumph" }),
				enrichedFactory("b", func(m *gallery.TPhotoMetadata) { m.Emotion = "serenity" }),
				enrichedFactory("c", nil),
			},
			criteria: gallery.TFilterCriteria{Emotions: []string{"triumph", "serenity"}},
			wantIDs:  []string{"a", "b"},
		},
		{
			name: "absent play type never matches a play type list",
			photos: []gallery.TPhoto{
				enrichedFactory("a", func(m *gallery.TPhotoMetadata) { m.PlayType = gallery.PlayTypeNone }),
				enrichedFactory("b", func(m *gallery.TPhotoMetadata) { m.PlayType = "block" }),
			},
			criteria: gallery.TFilterCriteria{PlayTypes: []string{"block", "dig"}},
			wantIDs:  []string{"b"},
		},
		{
			name: "use cases require any overlap",
			photos: []gallery.TPhoto{
				enrichedFactory("a", func(m *gallery.TPhotoMetadata) { m.UseCases = []string{"print", "editorial"} }),
				enrichedFactory("b", func(m *gallery.TPhotoMetadata) { m.UseCases = []string{"social-media"} }),
				enrichedFactory("c", func(m *gallery.TPhotoMetadata) { m.UseCases = nil }),
			},
			criteria: gallery.TFilterCriteria{UseCases: []string{"editorial", "website-hero"}},
			wantIDs:  []string{"a"},
		},
		{
			name: "unknown criteria values match nothing without error",
			photos: []gallery.TPhoto{
				enrichedFactory("a", nil),
			},
			criteria: gallery.TFilterCriteria{Emotions: []string{"not-an-emotion"}},
			wantIDs:  []string{},
		},
		{
			name:     "empty input yields empty output",
			photos:   nil,
			criteria: gallery.TFilterCriteria{PortfolioWorthy: true, MinQualityScore: 9},
			wantIDs:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterPhotos(tt.photos, tt.criteria)
			assert.Equal(t, tt.wantIDs, photoIDs(result))
		})
	}
}

func TestFilterPhotosPreservesInputOrder(t *testing.T) {
	photos := []gallery.TPhoto{
		enrichedFactory("z", nil),
		enrichedFactory("a", nil),
		enrichedFactory("m", nil),
	}

	result := FilterPhotos(photos, gallery.TFilterCriteria{})
	assert.Equal(t, []string{"z", "a", "m"}, photoIDs(result))
}

func TestFilterPhotosIdempotent(t *testing.T) {
	photos := []gallery.TPhoto{
		enrichedFactory("a", func(m *gallery.TPhotoMetadata) { m.PortfolioWorthy = true }),
		enrichedFactory("b", nil),
		photoFactory("c", nil),
	}
	criteria := gallery.TFilterCriteria{PortfolioWorthy: true}

	once := FilterPhotos(photos, criteria)
	twice := FilterPhotos(once, criteria)
	assert.Equal(t, once, twice)
}

func TestFilterPhotosMonotonicity(t *testing.T) {
	photos := []gallery.TPhoto{
		enrichedFactory("a", func(m *gallery.TPhotoMetadata) { m.PortfolioWorthy = true; m.Emotion = "triumph" }),
		enrichedFactory("b", func(m *gallery.TPhotoMetadata) { m.PortfolioWorthy = true }),
		enrichedFactory("c", nil),
	}

	loose := gallery.TFilterCriteria{PortfolioWorthy: true}
	tight := gallery.TFilterCriteria{PortfolioWorthy: true, Emotions: []string{"triumph"}}

	looseResult := FilterPhotos(photos, loose)
	tightResult := FilterPhotos(photos, tight)

	require.LessOrEqual(t, len(tightResult), len(looseResult))
	for _, p := range tightResult {
		assert.Contains(t, photoIDs(looseResult), p.ID)
	}
}

func TestFilterPhotosDoesNotMutateInput(t *testing.T) {
	photos := []gallery.TPhoto{
		enrichedFactory("a", nil),
		photoFactory("b", nil),
	}
	before := photoIDs(photos)

	FilterPhotos(photos, gallery.TFilterCriteria{PortfolioWorthy: true})

	assert.Equal(t, before, photoIDs(photos))
	assert.Nil(t, photos[1].Metadata)
}
