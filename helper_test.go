package depot

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", s, err)
	}
	return ts
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad test decimal %q: %v", s, err)
	}
	return d
}

// trade builds a single-currency EUR transaction: positive qty is a buy,
// negative a sell. The amount is the signed settlement (negative for buys).
func trade(t *testing.T, id, when string, qty, price, amount float64) Transaction {
	t.Helper()
	return NewTransaction(id, mustTime(t, when), "ACME CORP", "DE000ACME001", "XET",
		Q(qty), M(price, "EUR"), M(amount, "EUR"), M(amount, "EUR"),
		decimal.New(1, 0), Money{}, M(amount, "EUR"))
}

// fxTrade builds a transaction settled in USD locally and booked in EUR at
// the given exchange rate (USD per EUR).
func fxTrade(t *testing.T, id, when string, qty, price, amountLocal, amount float64, rate string) Transaction {
	t.Helper()
	return NewTransaction(id, mustTime(t, when), "ACME CORP", "US000ACME002", "NSY",
		Q(qty), M(price, "USD"), M(amount, "EUR"), M(amountLocal, "USD"),
		mustDecimal(t, rate), Money{}, M(amount, "EUR"))
}
