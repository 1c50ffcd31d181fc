package repository

import "context"

// CounterRepository is the atomic sequence abstraction behind order codes.
// One counter row exists per sequence name.
type CounterRepository interface {
	// Next upserts the named counter, increments its value by exactly one
	// and returns the new value. The increment-and-fetch is a single atomic
	// statement against the store: N concurrent callers observe N distinct,
	// gapless values.
	Next(ctx context.Context, name string) (int64, error)
}

// OrderSequenceName is the counter that feeds order codes.
const OrderSequenceName = "order"
