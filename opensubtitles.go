// Package opensubtitles is a client for the OpenSubtitles.com REST API
// (https://api.opensubtitles.com/api/v1): authentication, subtitle search
// (including hash-based lookup of local video files), downloads and the
// discover/infos/utilities endpoints.
package opensubtitles

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/dusking/opensubtitles-go/internal/constants"
	"github.com/dusking/opensubtitles-go/internal/httpclient"
)

// Config holds the configuration for the OpenSubtitles client.
type Config struct {
	ApiKey    string
	UserAgent string // e.g. "MyApp v1.2.3", required by the API
	BaseURL   string // optional override of the default base URL
	// HTTPClient is used for all requests when set; defaults to
	// http.DefaultClient.
	HTTPClient *http.Client
}

// Client is the main OpenSubtitles API client. Session state (auth token,
// current base URL) is held per Client instance, never globally, so multiple
// clients with different credentials can coexist in one process.
type Client struct {
	config         Config
	httpClient     *httpclient.Client
	mu             sync.RWMutex // protects authToken and currentBaseURL
	authToken      string
	currentBaseURL string
}

// NewClient creates a new OpenSubtitles API client.
func NewClient(config Config) (*Client, error) {
	if config.ApiKey == "" {
		return nil, errors.New("API key is required")
	}
	if config.UserAgent == "" {
		return nil, errors.New("User-Agent is required")
	}

	baseURL := constants.DefaultBaseURL
	if config.BaseURL != "" {
		if _, err := url.ParseRequestURI(config.BaseURL); err != nil {
			return nil, fmt.Errorf("invalid BaseURL provided: %w", err)
		}
		baseURL = config.BaseURL
	}

	return &Client{
		config:         config,
		httpClient:     httpclient.New(baseURL, config.ApiKey, config.UserAgent, config.HTTPClient),
		currentBaseURL: baseURL,
	}, nil
}

// SetAuthToken sets the auth token manually (e.g. restored from storage).
// An empty token clears the session. baseURL, when non-empty, switches the
// client to the host the API asked for (the login response may return a bare
// VIP hostname without scheme or path).
func (c *Client) SetAuthToken(token, baseURL string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token == "" {
		c.authToken = ""
		c.httpClient.SetAuthToken("")
		return nil
	}

	if baseURL != "" {
		parsed, err := url.ParseRequestURI(baseURL)
		if err != nil || parsed.Scheme == "" {
			baseURL = "https://" + baseURL
			parsed, err = url.ParseRequestURI(baseURL)
			if err != nil {
				return fmt.Errorf("invalid base URL provided: %w", err)
			}
		}
		if parsed.Path == "" {
			baseURL += constants.ApiPath
		}
		c.currentBaseURL = baseURL
		c.httpClient.SetBaseURL(baseURL)
	}

	c.authToken = token
	c.httpClient.SetAuthToken(token)
	return nil
}

// CurrentToken returns the auth token held by the client, or "" when not
// logged in.
func (c *Client) CurrentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authToken
}

// CurrentBaseURL returns the base URL currently used by the client.
func (c *Client) CurrentBaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentBaseURL
}

// IsAuthenticated reports whether a session token is set.
func (c *Client) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authToken != ""
}
