package depot

import (
	"testing"
)

func TestProfitLoss_ExactMatch(t *testing.T) {
	pl := newProfitLoss("EUR")
	pl.add(trade(t, "buy", "2020-01-02 15:30", 10, 10, -100))
	pl.add(trade(t, "sell", "2020-06-02 15:30", -10, 12, 120))

	if len(pl.queue) != 0 {
		t.Fatalf("queue holds %d lots, want 0 after an exact match", len(pl.queue))
	}
	if got, want := pl.get(2020), M(20, "EUR"); !got.Equal(want) {
		t.Errorf("profit/loss 2020 = %s, want %s", got, want)
	}
	if len(pl.byYear) != 1 {
		t.Errorf("got %d year buckets, want 1", len(pl.byYear))
	}
	if pl.err != nil {
		t.Errorf("unexpected error: %v", pl.err)
	}
}

func TestProfitLoss_LotLargerThanSell(t *testing.T) {
	pl := newProfitLoss("EUR")
	pl.add(trade(t, "buy", "2020-01-02 15:30", 10, 10, -100))
	pl.add(trade(t, "sell", "2020-06-02 15:30", -4, 12, 48))

	if len(pl.queue) != 1 {
		t.Fatalf("queue holds %d lots, want the reduced lot", len(pl.queue))
	}
	if got := pl.queue[0].Quantity(); !got.Equal(Q(6)) {
		t.Errorf("remaining lot quantity = %s, want 6", got)
	}
	// cost basis of 4 units at 10 is -40, plus 48 proceeds
	if got, want := pl.get(2020), M(8, "EUR"); !got.Equal(want) {
		t.Errorf("profit/loss 2020 = %s, want %s", got, want)
	}
}

func TestProfitLoss_SellSpansMultipleLots(t *testing.T) {
	pl := newProfitLoss("EUR")
	pl.add(trade(t, "buy1", "2020-01-02 15:30", 4, 10, -40))
	pl.add(trade(t, "buy2", "2020-02-02 15:30", 6, 10.5, -63))
	pl.add(trade(t, "sell", "2020-06-02 15:30", -10, 12, 120))

	if len(pl.queue) != 0 {
		t.Fatalf("queue holds %d lots, want 0: both lots consumed in purchase order", len(pl.queue))
	}
	// first lot: -40 cost plus 12x4=48 proportional proceeds; second lot,
	// an exact remainder match: -63 plus the sell settlement of 120.
	if got, want := pl.get(2020), M(65, "EUR"); !got.Equal(want) {
		t.Errorf("profit/loss 2020 = %s, want %s", got, want)
	}
	if pl.err != nil {
		t.Errorf("unexpected error: %v", pl.err)
	}
}

func TestProfitLoss_InsufficientHistory(t *testing.T) {
	pl := newProfitLoss("EUR")
	pl.add(trade(t, "buy", "2020-01-02 15:30", 4, 10, -40))
	pl.add(trade(t, "sell", "2020-06-02 15:30", -10, 12, 120))

	if pl.err == nil {
		t.Fatal("selling more than the queue holds must flag the engine")
	}
	if len(pl.queue) != 0 {
		t.Errorf("queue holds %d lots, want 0", len(pl.queue))
	}
	// further transactions keep flowing, the engine never raises
	pl.add(trade(t, "buy2", "2020-07-02 15:30", 5, 10, -50))
	if got := pl.remainingQuantity(); !got.Equal(Q(5)) {
		t.Errorf("remaining quantity = %s, want 5", got)
	}
}

func TestProfitLoss_ZeroQuantityIsIgnored(t *testing.T) {
	pl := newProfitLoss("EUR")
	pl.add(trade(t, "buy", "2020-01-02 15:30", 10, 10, -100))
	pl.add(trade(t, "generated", "2020-03-02 15:30", -0.0, 0, 0))

	if len(pl.queue) != 1 {
		t.Errorf("queue holds %d lots, want 1: zero-quantity rows are not trades", len(pl.queue))
	}
	if len(pl.byYear) != 0 {
		t.Errorf("got %d year buckets, want none", len(pl.byYear))
	}
	if pl.err != nil {
		t.Errorf("unexpected error: %v", pl.err)
	}
}

func TestProfitLoss_AttributedToSellYear(t *testing.T) {
	pl := newProfitLoss("EUR")
	pl.add(trade(t, "buy", "2019-01-02 15:30", 10, 10, -100))
	pl.add(trade(t, "sell", "2021-06-02 15:30", -10, 12, 120))

	if got := pl.get(2019); !got.IsZero() {
		t.Errorf("profit/loss 2019 = %s, want zero: gains belong to the sell's year", got)
	}
	if got, want := pl.get(2021), M(20, "EUR"); !got.Equal(want) {
		t.Errorf("profit/loss 2021 = %s, want %s", got, want)
	}
	if got, want := pl.total(), M(20, "EUR"); !got.Equal(want) {
		t.Errorf("total profit/loss = %s, want %s", got, want)
	}
}

func TestProfitLoss_QuantityConservation(t *testing.T) {
	pl := newProfitLoss("EUR")
	pl.add(trade(t, "buy1", "2020-01-02 15:30", 4, 10, -40))
	pl.add(trade(t, "buy2", "2020-02-02 15:30", 6, 10, -60))
	pl.add(trade(t, "sell", "2020-06-02 15:30", -7, 12, 84))

	// 10 bought, 7 consumed
	if got := pl.remainingQuantity(); !got.Equal(Q(3)) {
		t.Errorf("remaining quantity = %s, want 3", got)
	}
}

func TestProfitLoss_ProportionalConversionUsesLotRate(t *testing.T) {
	pl := newProfitLoss("EUR")
	// buy 10 at 120 USD, booked -999 EUR at rate 1.2000
	pl.add(fxTrade(t, "buy", "2020-01-02 15:30", 10, 120, -1200, -999, "1.2000"))
	// sell 4 at 150 USD, booked +480 EUR at rate 1.2500
	pl.add(fxTrade(t, "sell", "2020-06-02 15:30", -4, 150, 600, 480, "1.2500"))

	// cost basis: 120 x -4 = -480 USD at the lot's inverse rate 0.8333
	// gives -399.984 EUR; plus the 480 EUR proceeds.
	if got, want := pl.get(2020), M(80.016, "EUR"); !got.Equal(want) {
		t.Errorf("profit/loss 2020 = %s, want %s", got, want)
	}
}
