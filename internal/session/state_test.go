package session

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"

	"github.com/theirongolddev/safespend/internal/simulate"
)

type fixed struct{ v int }

func (f fixed) Intn(n int) int { return f.v % n }

func newState(t *testing.T, mutate func(*Options)) *State {
	t.Helper()
	opts := DefaultOptions()
	opts.Source = simulate.NewSource(11)
	if mutate != nil {
		mutate(&opts)
	}
	s, err := New(opts)
	require.NoError(t, err)
	return s
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestInitialBudget(t *testing.T) {
	s := newState(t, nil)
	b := s.Budget()
	assert.True(t, b.Current.Equal(dec("120")), "current %s", b.Current)
	assert.True(t, b.Remaining.Equal(dec("78")), "remaining %s", b.Remaining)
	assert.Len(t, s.History(), 14)
	assert.False(t, s.BigPurchaseActive())
}

func TestToggleLunchDeliveries(t *testing.T) {
	s := newState(t, nil)
	require.True(t, s.Toggle("4"))

	b := s.Budget()
	assert.True(t, b.Current.Equal(dec("138")))
	assert.True(t, b.Remaining.Equal(dec("96")))

	require.True(t, s.Toggle("4"))
	assert.True(t, s.Budget().Current.Equal(dec("120")), "round trip")
}

func TestToggleUnknownKeepsState(t *testing.T) {
	s := newState(t, nil)
	before := s.Leaks()
	assert.False(t, s.Toggle("ghost"))
	assert.Equal(t, before, s.Leaks())
}

func TestStartupDisabled(t *testing.T) {
	s := newState(t, func(o *Options) {
		o.Disabled = []string{"1", "2", "3", "4", "5", "missing"}
		o.StartSpent = dec("150")
	})
	b := s.Budget()
	assert.True(t, b.Current.Equal(dec("163")))
	assert.True(t, b.Remaining.Equal(dec("13")))
	assert.Equal(t, 5, b.DisabledCount)
}

func TestSimulateDayScripted(t *testing.T) {
	s := newState(t, func(o *Options) { o.Source = fixed{v: 25} })

	amt := s.SimulateDay()
	assert.True(t, amt.Equal(dec("35")), "amount %s", amt)
	assert.True(t, s.Spent().Equal(dec("77")))
	assert.True(t, s.Budget().Remaining.Equal(dec("43")))
}

func TestSimulateDayFloorsRemaining(t *testing.T) {
	s := newState(t, func(o *Options) { o.Source = fixed{v: 39} })
	for i := 0; i < 5; i++ {
		s.SimulateDay()
	}
	// 42 + 5*49
	assert.True(t, s.Spent().Equal(dec("287")))
	assert.True(t, s.Budget().Remaining.IsZero())
}

func TestBigPurchaseLeavesSpendAlone(t *testing.T) {
	s := newState(t, nil)
	spent := s.Spent()

	tok := s.SimulateBigPurchase()
	assert.True(t, s.BigPurchaseActive())
	assert.True(t, s.Spent().Equal(spent))
	assert.True(t, s.Budget().Remaining.Equal(dec("78")))

	assert.True(t, s.ExpireBigPurchase(tok))
	assert.False(t, s.BigPurchaseActive())
	assert.True(t, s.Spent().Equal(spent))
}

func TestBigPurchaseRestartSupersedesExpiry(t *testing.T) {
	s := newState(t, nil)
	first := s.SimulateBigPurchase()
	second := s.SimulateBigPurchase()

	assert.False(t, s.ExpireBigPurchase(first))
	assert.True(t, s.BigPurchaseActive())
	assert.True(t, s.ExpireBigPurchase(second))
}

func TestPurchaseWarning(t *testing.T) {
	s := newState(t, nil)
	assert.Equal(t,
		"Warning: This spend would reduce your daily budget by $14.29 for the next 7 days.",
		s.PurchaseWarning())
}

func TestNewRejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Base = dec("-1")
	_, err := New(opts)
	assert.Error(t, err)

	opts = DefaultOptions()
	opts.HistoryDays = 0
	_, err = New(opts)
	assert.Error(t, err)

	opts = DefaultOptions()
	opts.Catalog = append(opts.Catalog, opts.Catalog[0])
	_, err = New(opts)
	assert.Error(t, err)
}

func TestMutationsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := newState(t, func(o *Options) { o.Logger = zap.New(core) })

	s.Toggle("1")
	s.Toggle("nope")
	s.SimulateDay()
	s.SimulateBigPurchase()

	var ops []string
	for _, e := range logs.All() {
		ops = append(ops, e.ContextMap()["op"].(string))
	}
	assert.Equal(t, []string{
		"session.New",
		"session.Toggle",
		"session.Toggle",
		"session.SimulateDay",
		"session.SimulateBigPurchase",
	}, ops)
}
