package bulkload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// SystemSubmitter adapts an in-process creation function into a Submitter,
// discarding the created entity.
func SystemSubmitter[T, E any](create func(ctx context.Context, cmd T) (*E, error)) Submitter[T] {
	return func(ctx context.Context, cmd T) error {
		_, err := create(ctx, cmd)
		return err
	}
}

// HTTPSubmitter posts each command as JSON to a creation endpoint of a
// running server. Any non-2xx response marks the row as failed.
func HTTPSubmitter[T any](client *http.Client, target string) Submitter[T] {
	return func(ctx context.Context, cmd T) error {
		body, err := json.Marshal(cmd)
		if err != nil {
			return fmt.Errorf("encode command: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("post %s: %w", target, err)
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("post %s: status %d", target, resp.StatusCode)
		}

		return nil
	}
}
