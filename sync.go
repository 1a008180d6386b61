package ghcas

import (
	"context"

	"go.uber.org/zap"
)

// ProgressObserver receives sync progress.
type ProgressObserver interface {
	// Progress is called after each record is written.
	Progress(done, total int)
	// Done is called once after the last record.
	Done(total int)
}

// ProgressFunc adapts a function to ProgressObserver. Done is a no-op.
type ProgressFunc func(done, total int)

func (f ProgressFunc) Progress(done, total int) { f(done, total) }
func (f ProgressFunc) Done(int)                 {}

type nopObserver struct{}

func (nopObserver) Progress(int, int) {}
func (nopObserver) Done(int)          {}

// Sync records every fingerprint-named asset on the branch into store and
// returns how many were recorded. Records are written sequentially; the
// first store error stops the run and is returned unmodified.
func (u *Uploader) Sync(ctx context.Context, store RecordStore, observer ProgressObserver) (int, error) {
	if store == nil {
		return 0, ErrNilStore
	}
	if observer == nil {
		observer = nopObserver{}
	}

	assets, err := u.Assets(ctx)
	if err != nil {
		return 0, err
	}

	u.logger.Info("syncing records", zap.Int("assets", len(assets)))

	total := len(assets)
	for i, a := range assets {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := store.AddRecord(ctx, a.Name, Name); err != nil {
			return i, err
		}
		observer.Progress(i+1, total)
	}

	observer.Done(total)
	return total, nil
}
