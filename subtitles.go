package opensubtitles

import (
	"context"
	"fmt"

	"github.com/dusking/opensubtitles-go/pkg/fileops"
)

// Methods related to subtitles (Search, Download).

// SearchSubtitles searches for subtitles based on various criteria. For
// hash-based lookup set params.Moviehash to the 16-digit hex fingerprint of
// the video file (see pkg/fileops.MovieHashString).
func (c *Client) SearchSubtitles(ctx context.Context, params SearchSubtitlesParams) (*SearchSubtitlesResponse, error) {
	var response SearchSubtitlesResponse
	err := c.httpClient.Get(ctx, "/subtitles", params, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Download requests a download link for a subtitle file. Requires
// authentication; each successful call consumes one unit of the account's
// download quota.
func (c *Client) Download(ctx context.Context, params DownloadRequest) (*DownloadResponse, error) {
	var response DownloadResponse
	err := c.httpClient.Post(ctx, "/download", params, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// DownloadContent requests a download link and fetches the subtitle payload
// behind it.
func (c *Client) DownloadContent(ctx context.Context, params DownloadRequest) ([]byte, *DownloadResponse, error) {
	response, err := c.Download(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	content, err := c.httpClient.Fetch(ctx, response.Link)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching subtitle payload: %w", err)
	}
	return content, response, nil
}

// DownloadToFile downloads a subtitle file and writes the payload to dest,
// creating parent directories as needed. The payload is either fully written
// or dest is left untouched.
func (c *Client) DownloadToFile(ctx context.Context, params DownloadRequest, dest string) (*DownloadResponse, error) {
	content, response, err := c.DownloadContent(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := fileops.Write(dest, content); err != nil {
		return nil, fmt.Errorf("saving subtitle to %q: %w", dest, err)
	}
	return response, nil
}
