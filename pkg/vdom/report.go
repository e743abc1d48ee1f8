package vdom

import (
	"log/slog"

	"github.com/vango-dev/djed/internal/errors"
	"github.com/vango-dev/djed/pkg/metrics"
)

// collector returns the metrics collector of the scope's scheduler.
func collector(scope Scope) *metrics.Collector {
	if scope == nil {
		return nil
	}
	if s := scope.Scheduler(); s != nil {
		return s.Metrics()
	}
	return nil
}

func logger(scope Scope) *slog.Logger {
	base := slog.Default()
	if scope != nil {
		if s := scope.Scheduler(); s != nil {
			base = s.Logger()
		}
	}
	return base.With("component", "vdom")
}

// hostFailure logs and counts a rejected host mutation. The mutation is
// skipped; reconciliation continues.
func hostFailure(scope Scope, op string, err error, args ...any) {
	attrs := append([]any{"op", op, "error", errors.FromError(err, "E220")}, args...)
	logger(scope).Warn("host mutation skipped", attrs...)
	collector(scope).RecordHostError(op)
}

// fatal aborts the current unit of work with a registered logic error.
func fatal(code, detail string) {
	e := errors.New(code)
	if detail != "" {
		e = e.WithDetail(detail)
	}
	panic(e)
}
