package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/gordonmaloney/testify-admin/pkg/models"
)

// RequestError is returned when the API answers with a non-2xx status. The
// message keeps the status line and the raw body together because the server
// reports failures (bad token, unknown site) as plain-text bodies.
type RequestError struct {
	StatusCode int
	Status     string // e.g. "401 Unauthorized"
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Body)
}

// FetchEvents performs one GET /api/fetch with the given query parameters.
// A response without an "events" field is treated as zero results, not an
// error; a body that is not JSON at all surfaces as a fetch error.
func (c *TestifyClient) FetchEvents(ctx context.Context, params url.Values) ([]models.Event, error) {
	var respData models.EventListResponse

	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString()).
		SetQueryParamsFromValues(params).
		SetResult(&respData).
		Get("/api/fetch")

	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, &RequestError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       resp.String(),
		}
	}

	if respData.Events == nil {
		return []models.Event{}, nil
	}
	return respData.Events, nil
}
