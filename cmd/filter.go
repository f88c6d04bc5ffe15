/**************************************************************************************************
** Filter command implementation for the gallery-query CLI. Builds a criteria record from
** the command flags and runs the filter evaluator over the loaded collection.
**************************************************************************************************/

package main

import (
	"github.com/nino-chavez/gallery-query/pkg/gallery"
	"github.com/nino-chavez/gallery-query/pkg/query"
	"github.com/spf13/cobra"
)

func runFilter(cmd *cobra.Command, args []string) {
	logger := loadEnv()
	photos := loadPhotos(logger)

	criteria := gallery.TFilterCriteria{
		PortfolioWorthy:      portfolioWorthy,
		PrintReady:           printReady,
		SocialMediaOptimized: socialOptimized,
		MinQualityScore:      minQuality,
		Emotions:             gallery.RemoveEmptyStrings(emotions),
		Compositions:         gallery.RemoveEmptyStrings(compositions),
		TimeOfDay:            gallery.RemoveEmptyStrings(timesOfDay),
		PlayTypes:            gallery.RemoveEmptyStrings(playTypes),
		ActionIntensities:    gallery.RemoveEmptyStrings(intensities),
		UseCases:             gallery.RemoveEmptyStrings(useCases),
	}

	results := query.FilterPhotos(photos, criteria)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	logger.Infof("🔍 %d of %d photos match", len(results), len(photos))
	gallery.PrintPhotos("Filtered photos", results)

	if verbose {
		gallery.Dump(criteria)
	}
}
