package opensubtitles

import "context"

// Guessit parses structured information (title, year, season, episode, ...)
// out of a release filename using the OpenSubtitles guessit utility.
func (c *Client) Guessit(ctx context.Context, params GuessitParams) (*GuessitResponse, error) {
	var response GuessitResponse
	err := c.httpClient.Get(ctx, "/utilities/guessit", params, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
