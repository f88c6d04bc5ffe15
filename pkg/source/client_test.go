package source

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/nino-chavez/gallery-query/pkg/gallery"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		apiURL  string
		logger  *logrus.Logger
		wantNil bool
	}{
		{
			name:   "valid config",
			apiKey: "test-key",
			apiURL: "http://gallery.test",
			logger: logrus.New(),
		},
		{
			name:    "missing api key",
			apiKey:  "",
			apiURL:  "http://gallery.test",
			logger:  logrus.New(),
			wantNil: true,
		},
		{
			name:    "missing api url",
			apiKey:  "test-key",
			apiURL:  "",
			logger:  logrus.New(),
			wantNil: true,
		},
		{
			name:    "unparseable api url",
			apiKey:  "test-key",
			apiURL:  "not a url",
			logger:  logrus.New(),
			wantNil: true,
		},
		{
			name:    "missing logger",
			apiKey:  "test-key",
			apiURL:  "http://gallery.test",
			logger:  nil,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.apiURL, tt.apiKey, tt.logger)
			if tt.wantNil {
				assert.Nil(t, client)
			} else {
				require.NotNil(t, client)
				assert.Equal(t, tt.apiKey, client.apiKey)
				assert.Equal(t, tt.apiURL+"/api", client.apiURL)
			}
		})
	}
}

func TestFetchPhotos(t *testing.T) {
	pages := map[string]TPhotosResponse{
		"1": {
			Photos: []gallery.TPhoto{
				{ID: "p1", Metadata: &gallery.TPhotoMetadata{Emotion: "triumph"}},
				{ID: "p2"},
			},
			NextPage: "2",
		},
		"2": {
			Photos:   []gallery.TPhoto{{ID: "p3"}},
			NextPage: "",
		},
	}

	var gotKeys []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKeys = append(gotKeys, r.Header.Get("x-api-key"))
		page := r.URL.Query().Get("page")
		response, ok := pages[page]
		if !ok {
			http.Error(w, "no such page", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	client := NewClient(server.URL, "test-key", logger)
	require.NotNil(t, client)
	// The handler ignores the /api prefix distinction, point the client straight at the server
	client.apiURL = server.URL

	photos, err := client.FetchPhotos(2)
	require.NoError(t, err)

	assert.Len(t, photos, 3)
	assert.Equal(t, "p1", photos[0].ID)
	assert.Equal(t, "p3", photos[2].ID)
	assert.NotNil(t, photos[0].Metadata)
	assert.Nil(t, photos[1].Metadata)
	for _, key := range gotKeys {
		assert.Equal(t, "test-key", key)
	}
}

func TestFetchPhotosServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	client := NewClient(server.URL, "test-key", logger)
	require.NotNil(t, client)
	client.apiURL = server.URL

	_, err := client.FetchPhotos(10)
	assert.Error(t, err)
}

func TestLoadPhotosFromFile(t *testing.T) {
	t.Run("decodes a photo export", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photos.json")
		payload := []gallery.TPhoto{
			{ID: "p1", Title: "Match point", Metadata: &gallery.TPhotoMetadata{PortfolioWorthy: true}},
			{ID: "p2"},
		}
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		photos, err := LoadPhotosFromFile(path)
		require.NoError(t, err)
		assert.Len(t, photos, 2)
		assert.True(t, photos[0].Metadata.PortfolioWorthy)
		assert.Nil(t, photos[1].Metadata)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadPhotosFromFile(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := LoadPhotosFromFile(path)
		assert.Error(t, err)
	})
}
