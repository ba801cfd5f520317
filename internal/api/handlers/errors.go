package handlers

import (
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dropship-gateway/internal/cj"
)

// partnerError maps a classified partner client error onto the HTTP status
// this service reports. Rate limiting surfaces as 429 so callers can apply
// their own backoff; everything else is a bad gateway.
func partnerError(err error) error {
	var rateErr *cj.RateLimitError
	if errors.As(err, &rateErr) {
		return huma.Error429TooManyRequests("partner rate limit exceeded: " + rateErr.Message)
	}

	var authErr *cj.AuthError
	if errors.As(err, &authErr) {
		return huma.Error502BadGateway("partner authentication failed: " + authErr.Message)
	}

	var remoteErr *cj.RemoteError
	if errors.As(err, &remoteErr) {
		return huma.Error502BadGateway(
			fmt.Sprintf("partner error %d: %s", remoteErr.Code, remoteErr.Message),
		)
	}

	return huma.Error502BadGateway("partner unreachable: " + err.Error())
}
