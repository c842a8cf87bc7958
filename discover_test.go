package opensubtitles

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverPopular(t *testing.T) {
	lang := LanguageCode("en")
	featureType := FeatureMovie

	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/discover/popular", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "en", query.Get("language"))
		assert.Equal(t, "movie", query.Get("type"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		resp := DiscoverPopularResponse{
			Data: []Feature{
				{
					ApiDataWrapper: ApiDataWrapper{ID: "126826", Type: "movie"},
					Attributes: FeatureAttributes{
						FeatureID:      "126826",
						FeatureType:    "Movie",
						Title:          "Tenet",
						Year:           "2020",
						SubtitlesCount: 382,
					},
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}

	_, client := setupTestServer(t, handler)

	resp, err := client.DiscoverPopular(context.Background(), DiscoverParams{Language: &lang, Type: &featureType})

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Tenet", resp.Data[0].Attributes.Title)
	assert.Equal(t, 382, resp.Data[0].Attributes.SubtitlesCount)
}

func TestDiscoverLatest(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/discover/latest", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		resp := DiscoverLatestResponse{
			TotalPages: 1,
			TotalCount: 60,
			Page:       1,
			Data: []Subtitle{
				{ApiDataWrapper: ApiDataWrapper{ID: "7061050", Type: "subtitle"}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}

	_, client := setupTestServer(t, handler)

	resp, err := client.DiscoverLatest(context.Background(), DiscoverParams{})

	require.NoError(t, err)
	assert.Equal(t, 60, resp.TotalCount)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "7061050", resp.Data[0].ID)
}

func TestDiscoverMostDownloaded(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/discover/most_downloaded", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		resp := DiscoverMostDownloadedResponse{
			PaginatedResponse: PaginatedResponse{TotalCount: 2, TotalPages: 1, Page: 1},
			Data: []Subtitle{
				{ApiDataWrapper: ApiDataWrapper{ID: "1", Type: "subtitle"}},
				{ApiDataWrapper: ApiDataWrapper{ID: "2", Type: "subtitle"}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}

	_, client := setupTestServer(t, handler)

	resp, err := client.DiscoverMostDownloaded(context.Background(), DiscoverParams{})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	assert.Len(t, resp.Data, 2)
}
