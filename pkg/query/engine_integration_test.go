package query

import (
	"testing"

	"github.com/nino-chavez/gallery-query/pkg/gallery"
	"github.com/stretchr/testify/assert"
)

/************************************************************************************************
** End-to-end scenario: one small collection driven through all three components.
************************************************************************************************/

func TestEngineEndToEnd(t *testing.T) {
	p1 := gallery.TPhoto{
		ID:        "p1",
		Title:     "Match point",
		CreatedAt: "2025-06-01T12:00:00Z",
		Metadata: &gallery.TPhotoMetadata{
			Emotion:          "triumph",
			PortfolioWorthy:  true,
			CompositionScore: 9,
		},
	}
	p2 := gallery.TPhoto{
		ID:        "p2",
		Title:     "Warmup",
		CreatedAt: "2025-06-02T12:00:00Z",
		Metadata: &gallery.TPhotoMetadata{
			Emotion:          "focus",
			CompositionScore: 6,
		},
	}
	p3 := gallery.TPhoto{
		ID:        "p3",
		Title:     "Unprocessed upload",
		CreatedAt: "2025-06-03T12:00:00Z",
	}
	photos := []gallery.TPhoto{p1, p2, p3}

	filtered := FilterPhotos(photos, gallery.TFilterCriteria{PortfolioWorthy: true})
	assert.Equal(t, []string{"p1"}, photoIDs(filtered))

	searched := Search("victory celebration", photos)
	assert.Equal(t, []string{"p1"}, photoIDs(searched))

	trending := GetTrendingPhotos(photos, 0)
	assert.Equal(t, []string{"p1"}, photoIDs(trending))
}
