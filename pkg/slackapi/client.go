package slackapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Client is a minimal Slack Web API client for the calls the dashboard
// needs: auth.test connection probes and conversations.list.
type Client struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a Slack Web API client with the given bot token.
func NewClient(token string) *Client {
	return &Client{
		token:      token,
		apiURL:     "https://slack.com/api",
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Slack API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// AuthTest checks whether the configured token is valid and returns
// the workspace identity.
func (c *Client) AuthTest(ctx context.Context) (AuthTestResponse, error) {
	var resp AuthTestResponse
	if err := c.call(ctx, "auth.test", nil, &resp); err != nil {
		return AuthTestResponse{}, err
	}
	if !resp.OK {
		return AuthTestResponse{}, fmt.Errorf("slack auth.test failed: %s", resp.Error)
	}
	return resp, nil
}

// ListConversations returns the public channels visible to the bot,
// following cursor pagination to the end.
func (c *Client) ListConversations(ctx context.Context) ([]Channel, error) {
	var channels []Channel
	cursor := ""

	for {
		params := url.Values{
			"types": {"public_channel"},
			"limit": {"200"},
		}
		if cursor != "" {
			params.Set("cursor", cursor)
		}

		var resp conversationsListResponse
		if err := c.call(ctx, "conversations.list", params, &resp); err != nil {
			return nil, err
		}
		if !resp.OK {
			return nil, fmt.Errorf("slack conversations.list failed: %s", resp.Error)
		}

		channels = append(channels, resp.Channels...)
		cursor = resp.ResponseMetadata.NextCursor
		if cursor == "" {
			return channels, nil
		}
	}
}

// call performs one Web API request and decodes the JSON body.
func (c *Client) call(ctx context.Context, method string, params url.Values, out any) error {
	endpoint := fmt.Sprintf("%s/%s", c.apiURL, method)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("slack %s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack %s API error %d", method, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	return nil
}
