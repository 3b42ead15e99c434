// Package catalog persists a snapshot of the unit registry and detects
// breaking changes between builds.
//
// Unit display strings are stored in configuration, shown on wall panels and
// used as tags on historic telemetry. A build that renames or removes one
// silently orphans that data, so at startup the service compares the
// compiled registry with the snapshot written by the previous run:
//
//   - Added members are reported and stored
//   - Removed or changed members are logged as warnings
//   - In strict mode a breaking diff aborts startup and the stored snapshot
//     is left untouched
//
// # Usage
//
//	repo := catalog.NewSQLiteRepository(db.DB)
//	report, err := catalog.Sync(ctx, repo, logger, cfg.Database.StrictCatalog)
//	if errors.Is(err, catalog.ErrBreakingChange) {
//	    // refuse to serve a catalog that breaks stored references
//	}
package catalog
