package explorer

import (
	"context"
	"errors"
	"fmt"
)

// Drive resumes e until its final round, passing every Snapshot to visit
// in order. It returns the last Snapshot delivered.
//
// ctx is checked between rounds only; a round itself is never interrupted.
// If visit returns ErrStop, Drive stops and returns a nil error. Any other
// visit error is wrapped and returned. A nil visit just runs to completion.
func Drive(ctx context.Context, e *Explorer, visit func(Snapshot) error) (Snapshot, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var last Snapshot
	for {
		if err := ctx.Err(); err != nil {
			return last, err
		}
		snap, more, err := e.Step()
		if err != nil {
			return last, err
		}
		last = snap
		if visit != nil {
			if err := visit(snap); err != nil {
				if errors.Is(err, ErrStop) {
					return last, nil
				}
				return last, fmt.Errorf("explorer: visit round %d: %w", snap.Round, err)
			}
		}
		if !more {
			return last, nil
		}
	}
}
