package source

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fffcards/fff/internal/question"
)

// Result is the outcome of a load.
type Result struct {
	// Questions holds the parsed questions; empty when Failed.
	Questions []question.Question

	// Source names the source that served Questions.
	Source string

	// FellBack is true when the primary failed and the fallback served.
	FellBack bool

	// Failed is true when no source produced any questions.
	Failed bool

	// Err carries the underlying failures, if any.
	Err error
}

// Loader loads questions from a primary source and substitutes a fallback
// once when the primary fails.
type Loader struct {
	primary  Source
	fallback Source
	logger   *zap.Logger
}

// NewLoader creates a Loader. Either source may be nil.
func NewLoader(primary, fallback Source, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{primary: primary, fallback: fallback, logger: logger}
}

// Load fetches and parses the primary source, falling back to the secondary
// on a network error, a bad status, or an empty parse. It never returns an
// error directly: a total failure is reported through Result.Failed.
func (l *Loader) Load(ctx context.Context) Result {
	var errs []error

	if l.primary != nil {
		qs, err := load(ctx, l.primary)
		if err == nil {
			l.logger.Info("questions loaded",
				zap.String("source", l.primary.Name()),
				zap.Int("count", len(qs)))
			return Result{Questions: qs, Source: l.primary.Name()}
		}
		l.logger.Warn("primary source failed",
			zap.String("source", l.primary.Name()),
			zap.Error(err))
		errs = append(errs, err)
	}

	if l.fallback != nil {
		qs, err := load(ctx, l.fallback)
		if err == nil {
			l.logger.Info("questions loaded from fallback",
				zap.String("source", l.fallback.Name()),
				zap.Int("count", len(qs)))
			return Result{
				Questions: qs,
				Source:    l.fallback.Name(),
				FellBack:  l.primary != nil,
				Err:       errors.Join(errs...),
			}
		}
		l.logger.Error("fallback source failed",
			zap.String("source", l.fallback.Name()),
			zap.Error(err))
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		errs = append(errs, ErrNoSource)
	}
	return Result{Failed: true, Err: errors.Join(errs...)}
}

func load(ctx context.Context, src Source) ([]question.Question, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.Name(), err)
	}
	qs, err := question.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src.Name(), err)
	}
	return qs, nil
}
