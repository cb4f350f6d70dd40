package store

import (
	"context"
	"fmt"
	"os"
)

type osFileSource struct{}

// NewOSFileSource returns a [FileSource] that reads from the local filesystem.
func NewOSFileSource() FileSource {
	return &osFileSource{}
}

type readResult struct {
	content []byte
	err     error
}

// ReadFile reads path on a separate goroutine so that a cancelled ctx
// releases the caller immediately. The abandoned read finishes in the
// background and its result is dropped.
func (s *osFileSource) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	done := make(chan readResult, 1)
	go func() {
		content, err := os.ReadFile(path)
		done <- readResult{content: content, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("%w '%s': %w", ErrFileRead, path, res.err)
		}
		return string(res.content), nil
	}
}
