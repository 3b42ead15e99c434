package catalog

import (
	"context"
	"fmt"

	"github.com/nerrad567/gray-logic-units/internal/units"
)

// Logger is the subset of logging.Logger used by Sync.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...any) {}
func (noopLogger) Warn(string, ...any) {}

// Sync compares the compiled registry with the stored snapshot and stores
// the registry as the new snapshot.
//
// Every removed or changed member is logged as a warning. When strict is
// true and the diff is breaking, Sync returns ErrBreakingChange and leaves
// the stored snapshot unchanged, so the next run reports the same diff.
//
// Parameters:
//   - ctx: Context for the database operations
//   - repo: Snapshot storage
//   - logger: Receives the per-member report (nil discards it)
//   - strict: Refuse breaking changes
//
// Returns:
//   - Report: The diff that was found
//   - error: ErrBreakingChange in strict mode, or a storage error
func Sync(ctx context.Context, repo Repository, logger Logger, strict bool) (Report, error) {
	return syncRefs(ctx, repo, units.All(), logger, strict)
}

func syncRefs(ctx context.Context, repo Repository, current []units.Ref, logger Logger, strict bool) (Report, error) {
	if logger == nil {
		logger = noopLogger{}
	}

	previous, err := repo.Load(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("loading catalog snapshot: %w", err)
	}

	report := Diff(previous, current)
	report.Initial = len(previous) == 0

	for _, ref := range report.Removed {
		logger.Warn("unit removed from catalog",
			"category", ref.Category,
			"name", ref.Name,
			"symbol", ref.Symbol,
		)
	}
	for _, ch := range report.Changed {
		logger.Warn("unit symbol changed",
			"category", ch.Category,
			"name", ch.Name,
			"old", ch.Old,
			"new", ch.New,
		)
	}

	for _, c := range report.Reordered {
		logger.Warn("unit order changed", "category", c)
	}
	if report.CategoriesReordered {
		logger.Warn("category order changed")
	}

	if report.Breaking() && strict {
		return report, fmt.Errorf("%w: %d removed, %d changed, %d reordered",
			ErrBreakingChange, len(report.Removed), len(report.Changed), len(report.Reordered))
	}

	if report.Empty() {
		logger.Info("unit catalog unchanged", "members", len(current))
		return report, nil
	}

	if err := repo.Replace(ctx, current); err != nil {
		return report, fmt.Errorf("storing catalog snapshot: %w", err)
	}

	logger.Info("unit catalog snapshot stored",
		"members", len(current),
		"initial", report.Initial,
		"added", len(report.Added),
		"removed", len(report.Removed),
		"changed", len(report.Changed),
		"reordered", len(report.Reordered),
	)

	return report, nil
}
