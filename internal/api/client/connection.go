package client

import "context"

// TestConnectionResponse is the connection test response body.
type TestConnectionResponse struct {
	Status string `json:"status"`
}

// TestConnection asks the gateway to verify partner connectivity.
func (c *Client) TestConnection(ctx context.Context) (*TestConnectionResponse, error) {
	var resp TestConnectionResponse
	if err := c.post(ctx, "/api/v1/connection/test", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
