/**************************************************************************************************
** Main entry point for the gallery-query CLI. This tool runs the photo query engine over a
** sports-photography collection: declarative filtering, free-text search, and
** similarity/preference-based recommendations on AI-enriched photo records.
**************************************************************************************************/

package main

import (
	"os"

	"github.com/spf13/cobra"
)

/**************************************************************************************************
** Application entry point. Sets up the CLI command structure using Cobra, including all
** available commands and their associated flags. Handles command execution and error
** reporting.
**************************************************************************************************/
func main() {
	var rootCmd = &cobra.Command{
		Use:   "gallery-query",
		Short: "Gallery photo query CLI",
		Long:  "Filter, search and rank AI-enriched sports photos from a gallery collection.",
	}

	var filterCmd = &cobra.Command{
		Use:   "filter",
		Short: "Filter photos by enrichment criteria",
		Long:  "Apply quality flags, score thresholds and metadata criteria to the photo collection.",
		Run:   runFilter,
	}

	var searchCmd = &cobra.Command{
		Use:   "search [query]",
		Short: "Search photos with a free-text query",
		Long:  "Match a query against the search pattern table, falling back to a keyword scan.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSearch,
	}

	var suggestCmd = &cobra.Command{
		Use:   "suggest [query]",
		Short: "Suggest search completions",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSuggest,
	}

	var similarCmd = &cobra.Command{
		Use:   "similar <photo-id>",
		Short: "Find photos similar to a given photo",
		Args:  cobra.ExactArgs(1),
		Run:   runSimilar,
	}

	var recommendCmd = &cobra.Command{
		Use:   "recommend",
		Short: "Recommend photos from the view history",
		Run:   runRecommend,
	}

	var trendingCmd = &cobra.Command{
		Use:   "trending",
		Short: "Rank trending portfolio photos",
		Run:   runTrending,
	}

	var viewCmd = &cobra.Command{
		Use:   "view <photo-id>",
		Short: "Record a photo view in the history",
		Args:  cobra.ExactArgs(1),
		Run:   runView,
	}

	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gallery API key (or set API_KEY env var)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Gallery API URL (or set API_URL env var)")
	rootCmd.PersistentFlags().StringVar(&photosFile, "photos", "", "Local photos JSON file, used instead of the API (or set PHOTOS_FILE env var)")
	rootCmd.PersistentFlags().StringVar(&historyFile, "history", "", "View-history JSON file (or set HISTORY_FILE env var)")
	rootCmd.PersistentFlags().IntVar(&limit, "limit", 0, "Maximum number of results (0 = per-command default)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Dump full analytics and profiles")

	filterCmd.Flags().BoolVar(&portfolioWorthy, "portfolio-worthy", false, "Only portfolio-worthy photos")
	filterCmd.Flags().BoolVar(&printReady, "print-ready", false, "Only print-ready photos")
	filterCmd.Flags().BoolVar(&socialOptimized, "social", false, "Only social-media-optimized photos")
	filterCmd.Flags().Float64Var(&minQuality, "min-quality", 0, "Minimum average quality score")
	filterCmd.Flags().StringSliceVar(&emotions, "emotions", nil, "Emotions to match (any of)")
	filterCmd.Flags().StringSliceVar(&compositions, "compositions", nil, "Compositions to match (any of)")
	filterCmd.Flags().StringSliceVar(&timesOfDay, "time-of-day", nil, "Times of day to match (any of)")
	filterCmd.Flags().StringSliceVar(&playTypes, "play-types", nil, "Play types to match (any of)")
	filterCmd.Flags().StringSliceVar(&intensities, "intensities", nil, "Action intensities to match (any of)")
	filterCmd.Flags().StringSliceVar(&useCases, "use-cases", nil, "Use-case tags to match (any of)")

	trendingCmd.Flags().StringVar(&byEmotion, "emotion", "", "Rank within a single emotion instead")
	trendingCmd.Flags().StringVar(&byPlayType, "play-type", "", "Rank within a single play type instead")

	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(similarCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
