package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 3)
	ctx := context.Background()

	_, err := f.svc.Ledger.Reserve(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, f.slots(t, "s1"))

	_, err = f.svc.Ledger.Release(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, f.slots(t, "s1"))
}

func TestLedgerNeverNegative(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 2)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, _ = f.svc.Ledger.Reserve(ctx, "s1")
		assert.GreaterOrEqual(t, f.slots(t, "s1"), 0)
	}

	_, err := f.svc.Ledger.Reserve(ctx, "s1")
	assert.ErrorIs(t, err, ErrSeminarFull)
	assert.Equal(t, KindCapacityExhausted, KindOf(err))
}

func TestLedgerUnknownSeminar(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Ledger.Reserve(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSeminarNotFound)

	_, err = f.svc.Ledger.Release(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSeminarNotFound)
}

func TestLedgerApplyNone(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 1)

	require.NoError(t, f.svc.Ledger.Apply(context.Background(), "s1", DeltaNone))
	assert.Equal(t, 1, f.slots(t, "s1"))
}
