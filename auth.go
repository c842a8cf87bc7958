package opensubtitles

import "context"

// Methods related to authentication (Login, Logout, GetUserInfo).

// Login authenticates with username and password and stores the returned
// token in the client for subsequent requests. When the API returns a
// different base URL for the session (VIP hosts), the client switches to it.
func (c *Client) Login(ctx context.Context, params LoginRequest) (*LoginResponse, error) {
	var response LoginResponse
	err := c.httpClient.Post(ctx, "/login", params, &response)
	if err != nil {
		// Clear any stale token from a previous session.
		_ = c.SetAuthToken("", "")
		return nil, err
	}

	if err := c.SetAuthToken(response.Token, response.BaseURL); err != nil {
		return nil, err
	}
	return &response, nil
}

// Logout invalidates the current token server-side and clears it from the
// client. The token is kept if the API call fails, since it may still be
// valid.
func (c *Client) Logout(ctx context.Context) (*LogoutResponse, error) {
	var response LogoutResponse
	err := c.httpClient.Delete(ctx, "/logout", &response)
	if err != nil {
		return nil, err
	}

	_ = c.SetAuthToken("", "")
	return &response, nil
}

// GetUserInfo retrieves information about the authenticated user, including
// the remaining download quota. Requires a valid token; without one the API
// responds 401 which surfaces as ErrUnauthorized.
func (c *Client) GetUserInfo(ctx context.Context) (*GetUserInfoResponse, error) {
	var response GetUserInfoResponse
	err := c.httpClient.Get(ctx, "/infos/user", nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
