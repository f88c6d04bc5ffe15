/**************************************************************************************************
** View command implementation for the gallery-query CLI. Records a photo view in the
** history file so later recommend runs can build a preference profile from it.
**************************************************************************************************/

package main

import (
	"github.com/nino-chavez/gallery-query/pkg/history"
	"github.com/spf13/cobra"
)

func runView(cmd *cobra.Command, args []string) {
	logger := loadEnv()
	photos := loadPhotos(logger)

	photo, ok := findPhotoByID(photos, args[0])
	if !ok {
		logger.Fatalf("Photo %s not found in collection", args[0])
	}

	store := history.NewStore(historyFile, logger)
	if store == nil {
		logger.Fatal("Invalid history configuration")
	}
	if err := store.Record(photo); err != nil {
		logger.Fatalf("Failed to record view: %v", err)
	}

	logger.Infof("👁️  Recorded view of %s (session %s)", photo.ID, store.SessionID())
}
