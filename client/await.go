package client

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// AwaitReady polls the backend's welcome endpoint with exponential
// backoff until it answers or ctx expires. This is a readiness probe for
// tooling; individual API operations are never retried.
func (c *Client) AwaitReady(ctx context.Context) (*MessageResponse, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.Multiplier = 2
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 0 // bounded by ctx only

	var out *MessageResponse
	probe := func() error {
		h, err := c.Health(ctx)
		if err != nil {
			return err
		}
		out = h
		return nil
	}
	if err := backoff.Retry(probe, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return out, nil
}
