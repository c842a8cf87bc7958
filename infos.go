package opensubtitles

import "context"

// Methods for the static infos endpoints (languages, formats).

// GetLanguages lists the subtitle languages the API supports.
func (c *Client) GetLanguages(ctx context.Context) (*GetLanguagesResponse, error) {
	var response GetLanguagesResponse
	err := c.httpClient.Get(ctx, "/infos/languages", nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetFormats lists the subtitle formats the /download endpoint can convert
// to.
func (c *Client) GetFormats(ctx context.Context) (*GetFormatsResponse, error) {
	var response GetFormatsResponse
	err := c.httpClient.Get(ctx, "/infos/formats", nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
