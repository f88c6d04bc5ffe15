/**************************************************************************************************
** Configuration and environment management for the gallery-query CLI.
** Handles logger configuration, environment variable loading, and global configuration state.
**************************************************************************************************/

package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/nino-chavez/gallery-query/pkg/gallery"
	"github.com/nino-chavez/gallery-query/pkg/source"
	"github.com/sirupsen/logrus"
)

// Global configuration variables
var apiKey string
var apiURL string
var photosFile string
var historyFile string
var limit int
var verbose bool

// Filter flags
var portfolioWorthy bool
var printReady bool
var socialOptimized bool
var minQuality float64
var emotions []string
var compositions []string
var timesOfDay []string
var playTypes []string
var intensities []string
var useCases []string

// Trending flags
var byEmotion string
var byPlayType string

/**************************************************************************************************
** Configures the logger based on environment variables. Sets up the log level and format
** according to LOG_LEVEL and LOG_FORMAT environment variables.
**
** @return *logrus.Logger - Configured logger instance
**************************************************************************************************/
func configureLogger() *logrus.Logger {
	logger := logrus.New()

	// Set log level from environment variable
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if parsedLevel, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(parsedLevel)
		} else {
			logger.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", level)
			logger.SetLevel(logrus.InfoLevel)
		}
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// Set log format from environment variable
	if format := os.Getenv("LOG_FORMAT"); format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			FullTimestamp:    false,
			TimestampFormat:  time.RFC3339,
		})
	}

	return logger
}

/**************************************************************************************************
** Loads environment variables and command-line flags, with flags taking precedence over env
** variables. Either a local photos file or an API URL + key must be resolvable; the photos
** file wins when both are configured.
**
** @return *logrus.Logger - Configured logger instance
**************************************************************************************************/
func loadEnv() *logrus.Logger {
	_ = godotenv.Load()
	logger := configureLogger()

	if photosFile == "" {
		photosFile = os.Getenv("PHOTOS_FILE")
	}
	if apiKey == "" {
		apiKey = os.Getenv("API_KEY")
	}
	if apiURL == "" {
		apiURL = os.Getenv("API_URL")
	}
	if historyFile == "" {
		historyFile = os.Getenv("HISTORY_FILE")
	}
	if historyFile == "" {
		historyFile = "gallery-history.json"
	}

	if photosFile == "" && (apiURL == "" || apiKey == "") {
		logger.Fatal("No photo source configured: set PHOTOS_FILE or API_URL and API_KEY")
	}

	return logger
}

/**************************************************************************************************
** loadPhotos resolves the configured photo source and returns the full collection: the
** local JSON file when set, otherwise the gallery API.
**
** @param logger - Logger instance for output
** @return []gallery.TPhoto - Loaded photo collection
**************************************************************************************************/
func loadPhotos(logger *logrus.Logger) []gallery.TPhoto {
	if photosFile != "" {
		photos, err := source.LoadPhotosFromFile(photosFile)
		if err != nil {
			logger.Fatalf("Failed to load photos from %s: %v", photosFile, err)
		}
		logger.Debugf("Loaded %d photos from %s", len(photos), photosFile)
		return photos
	}

	client := source.NewClient(apiURL, apiKey, logger)
	if client == nil {
		logger.Fatal("Invalid gallery API configuration")
	}
	photos, err := client.FetchPhotos(0)
	if err != nil {
		logger.Fatalf("Failed to fetch photos: %v", err)
	}
	return photos
}
