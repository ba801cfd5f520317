package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dropship-gateway/internal/cj"
)

// ConnectionHandler verifies partner credentials and reachability.
type ConnectionHandler struct {
	client cj.Client
}

// NewConnectionHandler creates a new ConnectionHandler.
func NewConnectionHandler(client cj.Client) *ConnectionHandler {
	return &ConnectionHandler{client: client}
}

// TestConnectionOutput is the response body for the connection test endpoint.
type TestConnectionOutput struct {
	Body struct {
		Status string `json:"status" example:"ok"`
	}
}

// TestConnection authenticates against the partner API and performs a
// minimal catalog call through the full pacing pipeline.
func (h *ConnectionHandler) TestConnection(
	ctx context.Context,
	_ *struct{},
) (*TestConnectionOutput, error) {
	if err := h.client.TestConnection(ctx); err != nil {
		return nil, partnerError(err)
	}

	out := &TestConnectionOutput{}
	out.Body.Status = "ok"
	return out, nil
}

// RegisterConnectionRoutes registers the connection test endpoint with the
// Huma API.
func RegisterConnectionRoutes(api huma.API, h *ConnectionHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "test-connection",
		Method:      http.MethodPost,
		Path:        "/api/v1/connection/test",
		Summary:     "Test partner connectivity",
		Description: "Authenticates and performs a minimal catalog request against the partner API.",
		Tags:        []string{"connection"},
		Errors:      []int{http.StatusBadGateway, http.StatusTooManyRequests},
	}, h.TestConnection)
}
