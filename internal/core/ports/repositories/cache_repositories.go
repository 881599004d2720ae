package repositories

import "context"

// ReportCache stores serialized report outputs per data revision.
// A miss is reported as found == false with a nil error.
//
// Callers read Revision before loading the data a report is computed from and
// pass that same revision to Get and Set, so a report computed while a write
// is in flight is never stored under the revision that write produced.
type ReportCache interface {
	// Revision returns the current data revision.
	Revision(ctx context.Context) (uint64, error)
	Get(ctx context.Context, revision uint64, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, revision uint64, key string, value []byte) error

	// Invalidate bumps the data revision so every cached report is stale.
	Invalidate(ctx context.Context) error
}
