package ports

import "context"

// Generator produces one structured model reply for a rendered prompt.
// Implementations own all network I/O; callers never see transport details
// beyond the error taxonomy in errors.go.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
}
