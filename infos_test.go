package opensubtitles

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLanguages(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/infos/languages", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data": [
			{"language_code": "en", "language_name": "English"},
			{"language_code": "pt-BR", "language_name": "Portuguese (BR)"}
		]}`))
	}

	_, client := setupTestServer(t, handler)

	resp, err := client.GetLanguages(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, LanguageCode("en"), resp.Data[0].LanguageCode)
	assert.Equal(t, "Portuguese (BR)", resp.Data[1].LanguageName)
}

func TestGetFormats(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/infos/formats", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data": {"output_formats": ["srt", "sub", "mpl", "webvtt"]}}`))
	}

	_, client := setupTestServer(t, handler)

	resp, err := client.GetFormats(context.Background())

	require.NoError(t, err)
	assert.Contains(t, resp.Data.OutputFormats, "srt")
	assert.Contains(t, resp.Data.OutputFormats, "webvtt")
}
