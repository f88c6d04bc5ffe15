/**************************************************************************************************
** Recommendation command implementations for the gallery-query CLI: similar, recommend and
** trending. These are thin wrappers over the recommendation scorer; the view history comes
** from the history store.
**************************************************************************************************/

package main

import (
	"github.com/nino-chavez/gallery-query/pkg/gallery"
	"github.com/nino-chavez/gallery-query/pkg/history"
	"github.com/nino-chavez/gallery-query/pkg/query"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

/**************************************************************************************************
** findPhotoByID locates a photo in the collection by ID, falling back to the external
** image key so either identifier works at the CLI.
**
** @param photos - Collection to search
** @param id - Photo ID or image key
** @return gallery.TPhoto - The matching photo
** @return bool - True when found
**************************************************************************************************/
func findPhotoByID(photos []gallery.TPhoto, id string) (gallery.TPhoto, bool) {
	for _, photo := range photos {
		if photo.ID == id || photo.ImageKey == id {
			return photo, true
		}
	}
	return gallery.TPhoto{}, false
}

func loadViewHistory(logger *logrus.Logger) []gallery.TPhoto {
	store := history.NewStore(historyFile, logger)
	if store == nil {
		logger.Fatal("Invalid history configuration")
	}
	viewed, err := store.Photos()
	if err != nil {
		logger.Fatalf("Failed to read view history: %v", err)
	}
	return viewed
}

func runSimilar(cmd *cobra.Command, args []string) {
	logger := loadEnv()
	photos := loadPhotos(logger)

	target, ok := findPhotoByID(photos, args[0])
	if !ok {
		logger.Fatalf("Photo %s not found in collection", args[0])
	}

	results := query.FindSimilarPhotos(target, photos, limit)
	gallery.PrintPhotos("Similar photos", results)
}

func runRecommend(cmd *cobra.Command, args []string) {
	logger := loadEnv()
	photos := loadPhotos(logger)
	viewed := loadViewHistory(logger)

	if len(viewed) == 0 {
		logger.Warn("View history is empty, recommendations are portfolio-ranked only")
	}

	results := query.GetRecommendations(viewed, photos, limit)
	gallery.PrintPhotos("Recommended photos", results)

	if verbose {
		gallery.Dump(query.BuildUserPreferences(viewed))
	}
}

func runTrending(cmd *cobra.Command, args []string) {
	logger := loadEnv()
	photos := loadPhotos(logger)

	switch {
	case byEmotion != "":
		results := query.GetPhotosByEmotion(photos, byEmotion, limit)
		gallery.PrintPhotos("Top "+byEmotion+" photos", results)
	case byPlayType != "":
		results := query.GetPhotosByPlayType(photos, byPlayType, limit)
		gallery.PrintPhotos("Top "+byPlayType+" photos", results)
	default:
		results := query.GetTrendingPhotos(photos, limit)
		gallery.PrintPhotos("Trending photos", results)
	}
}
