package depot

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransaction_DirectionFromQuantitySign(t *testing.T) {
	if got := trade(t, "a", "2020-01-02 15:30", 10, 10, -100).Type(); got != Buy {
		t.Errorf("Type() = %s, want BUY", got)
	}
	if got := trade(t, "b", "2020-01-02 15:30", -10, 10, 100).Type(); got != Sell {
		t.Errorf("Type() = %s, want SELL", got)
	}
}

func TestTransaction_Identity(t *testing.T) {
	a := trade(t, "a", "2020-01-02 15:30", 10, 10, -100)
	same := trade(t, "a", "2020-01-02 15:30", -4, 12, 48) // same identity, other fields differ
	other := trade(t, "b", "2020-01-02 15:30", 10, 10, -100)

	if !a.Equal(same) {
		t.Error("transactions with same (id, timestamp) must be equal")
	}
	if a.Equal(other) {
		t.Error("transactions with different ids must not be equal")
	}
}

func TestTransaction_Ordering(t *testing.T) {
	txs := []Transaction{
		trade(t, "b", "2020-01-02 15:30", 1, 1, -1),
		trade(t, "a", "2020-01-02 15:30", 1, 1, -1),
		trade(t, "z", "2020-01-01 09:00", 1, 1, -1),
	}
	slices.SortFunc(txs, Transaction.Compare)

	want := []string{"z", "a", "b"}
	for i, tx := range txs {
		if tx.ID() != want[i] {
			t.Fatalf("order[%d] = %s, want %s", i, tx.ID(), want[i])
		}
	}
}

func TestTransaction_ExchangeFee(t *testing.T) {
	t.Run("mismatched currencies, buy", func(t *testing.T) {
		// 1200 USD at 1.2000 is 999.96 EUR after half-even inverse-rate
		// conversion, 0.96 more than the 999 EUR booked.
		tx := fxTrade(t, "a", "2020-03-02 10:00", 10, 120, -1200, -999, "1.2000")
		if got, want := tx.ExchangeFee(), M(-0.96, "EUR"); !got.Equal(want) {
			t.Errorf("ExchangeFee() = %s, want %s", got, want)
		}
	})
	t.Run("mismatched currencies, sell", func(t *testing.T) {
		tx := fxTrade(t, "a", "2020-03-02 10:00", -10, 120, 1200, 999, "1.2000")
		if got, want := tx.ExchangeFee(), M(-0.96, "EUR"); !got.Equal(want) {
			t.Errorf("ExchangeFee() = %s, want %s", got, want)
		}
	})
	t.Run("matching currencies", func(t *testing.T) {
		tx := trade(t, "a", "2020-03-02 10:00", 10, 10, -100)
		if got := tx.ExchangeFee(); !got.Equal(M(0, "EUR")) || got.Currency() != "EUR" {
			t.Errorf("ExchangeFee() = %s, want exactly zero EUR", got)
		}
	})
	t.Run("no settlement amounts", func(t *testing.T) {
		tx := NewTransaction("a", mustTime(t, "2020-03-02 10:00"), "ACME CORP", "DE000ACME001", "XET",
			Q(0), Money{}, Money{}, Money{}, decimal.New(1, 0), Money{}, M(0, "EUR"))
		if got := tx.ExchangeFee(); !got.Equal(M(0, "EUR")) || got.Currency() != "EUR" {
			t.Errorf("ExchangeFee() = %s, want exactly zero EUR", got)
		}
	})
}

func TestTransaction_Fee(t *testing.T) {
	declared := NewTransaction("a", mustTime(t, "2020-03-02 10:00"), "ACME CORP", "DE000ACME001", "XET",
		Q(10), M(10, "EUR"), M(-100, "EUR"), M(-100, "EUR"), decimal.New(1, 0), M(-2.5, "EUR"), M(-102.5, "EUR"))
	if got := declared.Fee(); !got.Equal(M(-2.5, "EUR")) {
		t.Errorf("Fee() = %s, want -2.50 EUR", got)
	}

	none := trade(t, "b", "2020-03-02 10:00", 10, 10, -100)
	if got := none.Fee(); !got.Equal(M(0, "EUR")) || got.Currency() != "EUR" {
		t.Errorf("Fee() = %s, want zero in the reporting currency", got)
	}
	if !none.DeclaredFee().IsAbsent() {
		t.Error("DeclaredFee() must stay absent when the export declared none")
	}
}

func TestTransaction_ReduceQuantityBy(t *testing.T) {
	buy := trade(t, "a", "2020-01-02 15:30", 10, 10, -100)
	if got := buy.ReduceQuantityBy(Q(4)).Quantity(); !got.Equal(Q(6)) {
		t.Errorf("ReduceQuantityBy(4) on +10 = %s, want 6", got)
	}

	sell := trade(t, "b", "2020-01-02 15:30", -10, 10, 100)
	if got := sell.ReduceQuantityBy(Q(4)).Quantity(); !got.Equal(Q(-6)) {
		t.Errorf("ReduceQuantityBy(4) on -10 = %s, want -6", got)
	}

	// the receiver is a value: the original is untouched
	if !buy.Quantity().Equal(Q(10)) {
		t.Error("ReduceQuantityBy must not mutate the receiver")
	}
}
