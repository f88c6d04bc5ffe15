// Package source supplies photo collections to the query engine, either from the gallery
// API or from a local JSON export.
package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/nino-chavez/gallery-query/pkg/gallery"
	"github.com/sirupsen/logrus"
)

// HTTP client configuration constants
const (
	defaultHTTPTimeout  = 120 * time.Second
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	retryBaseDelay      = 500 * time.Millisecond
	maxRetries          = 3
	defaultPageSize     = 500
)

/**************************************************************************************************
** Client talks to the gallery API that serves the merged photo records (image data joined
** with enrichment metadata by the sync pipeline). It handles authentication, request
** retries with backoff, pagination, and response decoding. The query engine itself never
** touches the network; this client is the photo source collaborator feeding it.
**************************************************************************************************/
type Client struct {
	client *http.Client
	apiURL string
	apiKey string
	logger *logrus.Logger
}

/**************************************************************************************************
** NewClient creates a gallery API client. Returns nil when the configuration is unusable
** (missing key, missing or unparseable URL, nil logger); callers treat nil as "no API
** source configured" and fall back to file input.
**
** @param apiURL - Base URL of the gallery API
** @param apiKey - API key for authentication
** @param logger - Logger instance for output
** @return *Client - Configured client, or nil for unusable configuration
**************************************************************************************************/
func NewClient(apiURL, apiKey string, logger *logrus.Logger) *Client {
	if apiKey == "" || apiURL == "" || logger == nil {
		return nil
	}

	parsedURL, err := url.Parse(apiURL)
	if err != nil || parsedURL.Host == "" {
		return nil
	}

	return &Client{
		client: &http.Client{
			Timeout: defaultHTTPTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        maxIdleConns,
				MaxIdleConnsPerHost: maxIdleConnsPerHost,
				IdleConnTimeout:     idleConnTimeout,
			},
		},
		apiURL: fmt.Sprintf("%s://%s/api", parsedURL.Scheme, parsedURL.Host),
		apiKey: apiKey,
		logger: logger,
	}
}

/**************************************************************************************************
** doRequest handles an HTTP request with retry logic and proper error handling. Retries
** only transport errors, with linear backoff; an error status from the server is returned
** immediately.
**
** @param method - HTTP method (GET, POST, etc.)
** @param path - API endpoint path
** @param body - Request body (optional)
** @param result - Pointer to store decoded response data
** @return error - Any error that occurred during the request
**************************************************************************************************/
func (c *Client) doRequest(method, path string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.apiURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for i := 0; i < maxRetries; i++ {
		resp, err := c.client.Do(req)
		if err != nil {
			if i == maxRetries-1 {
				return fmt.Errorf("error making request after %d retries: %w", maxRetries, err)
			}
			time.Sleep(retryBaseDelay * time.Duration(i+1))
			continue
		}

		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if result != nil {
				if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
					return fmt.Errorf("error decoding response: %w", err)
				}
			}
			return nil
		}

		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("error response: %s - %s", resp.Status, string(respBody))
	}

	return fmt.Errorf("failed after %d retries", maxRetries)
}

/**************************************************************************************************
** TPhotosResponse is one page of the gallery photo listing. NextPage is empty on the last
** page.
**************************************************************************************************/
type TPhotosResponse struct {
	Photos   []gallery.TPhoto `json:"photos"`
	NextPage string           `json:"nextPage"`
}

/**************************************************************************************************
** FetchPhotos retrieves the full photo collection from the gallery API with pagination.
** Pages are requested in creation order so downstream input-order guarantees hold across
** runs.
**
** @param size - Number of photos per page (defaultPageSize when <= 0)
** @return []gallery.TPhoto - All fetched photos
** @return error - Any error that occurred during the fetch
**************************************************************************************************/
func (c *Client) FetchPhotos(size int) ([]gallery.TPhoto, error) {
	if size <= 0 {
		size = defaultPageSize
	}

	var allPhotos []gallery.TPhoto
	page := 1

	c.logger.Infof("⬇️  Fetching photos:")
	for {
		c.logger.Debugf("Fetching page %d", page)
		var response TPhotosResponse
		path := fmt.Sprintf("/photos?page=%d&size=%d&order=asc", page, size)
		if err := c.doRequest(http.MethodGet, path, nil, &response); err != nil {
			c.logger.Errorf("Error fetching photos: %v", err)
			return nil, fmt.Errorf("error fetching photos: %w", err)
		}

		allPhotos = append(allPhotos, response.Photos...)

		if response.NextPage == "" || response.NextPage == "0" {
			break
		}
		nextPageInt, err := strconv.Atoi(response.NextPage)
		if err != nil || nextPageInt == 0 {
			break
		}
		page = nextPageInt
	}

	enriched := 0
	for _, photo := range allPhotos {
		if photo.Metadata != nil {
			enriched++
		}
	}
	c.logger.Infof("🌄 %d photos fetched (%d enriched)", len(allPhotos), enriched)

	return allPhotos, nil
}

/**************************************************************************************************
** LoadPhotosFromFile reads a JSON array of photo records from a local export, for offline
** use of the CLI.
**
** @param path - Path to the JSON file
** @return []gallery.TPhoto - Decoded photos
** @return error - Any error that occurred while reading or decoding
**************************************************************************************************/
func LoadPhotosFromFile(path string) ([]gallery.TPhoto, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading photos file: %w", err)
	}

	var photos []gallery.TPhoto
	if err := json.Unmarshal(data, &photos); err != nil {
		return nil, fmt.Errorf("error decoding photos file %s: %w", path, err)
	}
	return photos, nil
}
