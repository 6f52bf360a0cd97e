package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var ErrNoCandidates = errors.New("no model candidate could be initialized")

const probePrompt = "Reply with the single word OK."

// Named is a Generator along with the candidate it was created from.
type Named struct {
	Generator
	Candidate Candidate
}

// Select returns the first candidate that initializes. If probe is set, the
// candidate must also respond to a short prompt.
func Select(ctx context.Context, log *slog.Logger, candidates []Candidate, factory Factory, probe bool) (n Named, err error) {
	var errs []error
	for _, c := range candidates {
		g, err := factory(ctx, c)
		if err != nil {
			log.Warn("model candidate failed to initialize", slog.String("model", c.String()), slog.Any("error", err))
			errs = append(errs, fmt.Errorf("%s: %w", c, err))
			continue
		}
		if probe {
			if _, err = g.Generate(ctx, probePrompt); err != nil {
				log.Warn("model candidate failed probe", slog.String("model", c.String()), slog.Any("error", err))
				errs = append(errs, fmt.Errorf("%s: probe failed: %w", c, err))
				continue
			}
		}
		log.Info("selected model", slog.String("model", c.String()))
		return Named{Generator: g, Candidate: c}, nil
	}
	return n, errors.Join(append([]error{ErrNoCandidates}, errs...)...)
}
