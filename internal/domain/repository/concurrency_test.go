package repository_test

import (
	"context"
	"sync"
	"testing"

	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCounterRepository is a mutex-guarded fake honouring the
// CounterRepository contract: every call yields the next value of the named
// sequence, with no duplicates and no gaps.
type memCounterRepository struct {
	mu   sync.Mutex
	seqs map[string]int64
}

func newMemCounterRepository() *memCounterRepository {
	return &memCounterRepository{seqs: make(map[string]int64)}
}

func (r *memCounterRepository) Next(_ context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seqs[name]++

	return r.seqs[name], nil
}

// memStockStore is a mutex-guarded fake honouring the DecrementStock
// contract: the availability check and the mutation happen as one step.
type memStockStore struct {
	mu    sync.Mutex
	stock map[uuid.UUID]int
}

func newMemStockStore() *memStockStore {
	return &memStockStore{stock: make(map[uuid.UUID]int)}
}

func (s *memStockStore) DecrementStock(_ context.Context, id uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, ok := s.stock[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	if remaining < quantity {
		return repository.ErrInsufficientStock
	}

	s.stock[id] = remaining - quantity

	return nil
}

func TestCounterNext_ConcurrentCallsAreDistinctAndGapless(t *testing.T) {
	const callers = 50

	counter := newMemCounterRepository()
	ctx := context.Background()

	results := make(chan int64, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			seq, err := counter.Next(ctx, repository.OrderSequenceName)
			assert.NoError(t, err)
			results <- seq
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool, callers)
	for seq := range results {
		assert.False(t, seen[seq], "sequence value %d issued twice", seq)
		seen[seq] = true
	}

	require.Len(t, seen, callers)
	for want := int64(1); want <= callers; want++ {
		assert.True(t, seen[want], "sequence value %d missing, numbering has a gap", want)
	}
}

func TestCounterNext_SequencesAreIndependent(t *testing.T) {
	counter := newMemCounterRepository()
	ctx := context.Background()

	first, err := counter.Next(ctx, repository.OrderSequenceName)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	other, err := counter.Next(ctx, "invoice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)

	second, err := counter.Next(ctx, repository.OrderSequenceName)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)
}

func TestDecrementStock_ConcurrentBuyersSingleUnit(t *testing.T) {
	store := newMemStockStore()
	productID := uuid.New()
	store.stock[productID] = 1

	ctx := context.Background()
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.DecrementStock(ctx, productID, 1)
		}()
	}
	wg.Wait()
	close(errs)

	var successes, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, repository.ErrInsufficientStock):
			conflicts++
		}
	}

	assert.Equal(t, 1, successes, "exactly one buyer gets the last unit")
	assert.Equal(t, 1, conflicts, "the other buyer sees insufficient stock")
	assert.Equal(t, 0, store.stock[productID])
}

func TestDecrementStock_ConcurrentBuyersNeverOversell(t *testing.T) {
	const buyers = 20
	const stock = 7

	store := newMemStockStore()
	productID := uuid.New()
	store.stock[productID] = stock

	ctx := context.Background()
	errs := make(chan error, buyers)
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.DecrementStock(ctx, productID, 1)
		}()
	}
	wg.Wait()
	close(errs)

	var successes int
	for err := range errs {
		if err == nil {
			successes++
		}
	}

	assert.Equal(t, stock, successes)
	assert.Equal(t, 0, store.stock[productID], "stock never goes negative")
}
