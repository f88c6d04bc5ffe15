/**************************************************************************************************
** Search and suggest command implementations for the gallery-query CLI.
**************************************************************************************************/

package main

import (
	"github.com/nino-chavez/gallery-query/pkg/gallery"
	"github.com/nino-chavez/gallery-query/pkg/query"
	"github.com/spf13/cobra"
)

func runSearch(cmd *cobra.Command, args []string) {
	logger := loadEnv()
	photos := loadPhotos(logger)

	searchQuery := ""
	if len(args) > 0 {
		searchQuery = args[0]
	}

	analytics := query.SearchWithAnalytics(searchQuery, photos)
	results := analytics.Results
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	gallery.PrintAnalytics(analytics)
	gallery.PrintPhotos("Search results", results)

	if verbose {
		gallery.Dump(analytics)
	}
}

func runSuggest(cmd *cobra.Command, args []string) {
	logger := loadEnv()
	photos := loadPhotos(logger)

	searchQuery := ""
	if len(args) > 0 {
		searchQuery = args[0]
	}

	gallery.PrintSuggestions(query.GetSearchSuggestions(searchQuery, photos))
}
