package client

import (
	"errors"
	"fmt"
)

// ErrNoAPIKey means no credential could be resolved; the client refuses
// to construct without one.
var ErrNoAPIKey = errors.New("no API key found: set AXODEN_API_KEY or run 'axoden config --api-key YOUR_KEY'")

// MethodologyNotFoundError means the remote call produced no usable
// recommendation: non-OK status, transport failure, or a success body
// with no recognizable methodology fields.
type MethodologyNotFoundError struct {
	Problem string
	Status  int // 0 when the request never completed
	Detail  string
}

func (e *MethodologyNotFoundError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("no methodology available for %q: API returned status %d: %s", e.Problem, e.Status, e.Detail)
	}
	return fmt.Sprintf("no methodology available for %q: %s", e.Problem, e.Detail)
}
