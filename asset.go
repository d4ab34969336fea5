package depot

import (
	"fmt"
	"strings"
)

// AssetType is a coarse classification of an instrument.
type AssetType string

const (
	Stock AssetType = "STOCK"
	Other AssetType = "OTHER" // derivative-like (knock-outs, warrants, ...)
)

// knockoutKeywords mark derivative-like product names. The scan is
// case-sensitive: the vendor prints these tokens in upper case.
var knockoutKeywords = []string{"CALL", "PUT", "TURBOL", "TURBOC", "TURBOS", "TURBOP", "TUBULL", "MINIL", "MINIS"}

// ParseAssetType classifies an instrument from its display name.
func ParseAssetType(name string) AssetType {
	for _, kw := range knockoutKeywords {
		if strings.Contains(name, kw) {
			return Other
		}
	}
	return Stock
}

func (t AssetType) rank() int {
	if t == Stock {
		return 0
	}
	return 1
}

// Asset aggregates all transactions of one instrument, keyed by ISIN.
//
// The name and classification come from the first transaction seen; the
// quantity and overall run over every added transaction. Fees, exchange
// fees and realized profit/loss are bucketed per calendar year.
type Asset struct {
	isin string
	name string
	typ  AssetType

	quantity Quantity
	overall  Money

	fees         *yearlySum
	exchangeFees *yearlySum
	profitLoss   *profitLoss
	transactions *transactionIndex
}

// NewAsset creates an empty asset. The currency is the reporting currency
// used for all zero-valued aggregates.
func NewAsset(isin, name, currency string) *Asset {
	return &Asset{
		isin:         isin,
		name:         name,
		typ:          ParseAssetType(name),
		overall:      M(0, currency),
		fees:         newYearlySum(currency),
		exchangeFees: newYearlySum(currency),
		profitLoss:   newProfitLoss(currency),
		transactions: newTransactionIndex(),
	}
}

// AddTransaction feeds one transaction into every aggregate. Re-adding a
// transaction already seen (by identity) is a no-op.
func (a *Asset) AddTransaction(t Transaction) {
	if !a.transactions.add(t) {
		return
	}
	a.quantity = a.quantity.Add(t.Quantity())
	a.overall = a.overall.Add(t.Overall())
	a.fees.add(t.Year(), t.DeclaredFee())
	a.exchangeFees.add(t.Year(), t.ExchangeFee())
	a.profitLoss.add(t)
}

func (a *Asset) ISIN() string       { return a.isin }
func (a *Asset) Name() string       { return a.name }
func (a *Asset) Type() AssetType    { return a.typ }
func (a *Asset) Quantity() Quantity { return a.quantity }
func (a *Asset) Overall() Money     { return a.overall }

// IsLiquidated reports whether the position is fully closed.
func (a *Asset) IsLiquidated() bool { return a.quantity.IsZero() }

// Err is non-nil when a sell could not be fully matched against the lot
// queue; the asset's profit/loss figure is then unreliable for this run.
func (a *Asset) Err() error { return a.profitLoss.err }

func (a *Asset) ProfitLoss() Money            { return a.profitLoss.total() }
func (a *Asset) ProfitLossIn(year int) Money  { return a.profitLoss.get(year) }
func (a *Asset) PaidFees() Money              { return a.fees.total() }
func (a *Asset) PaidFeesIn(year int) Money    { return a.fees.get(year) }
func (a *Asset) PaidExchangeFees() Money      { return a.exchangeFees.total() }
func (a *Asset) PaidExchangeFeesIn(year int) Money { return a.exchangeFees.get(year) }

// ProfitLossTotal is the realized profit/loss with declared and exchange
// fees included.
func (a *Asset) ProfitLossTotal() Money {
	return a.ProfitLoss().Add(a.PaidFees()).Add(a.PaidExchangeFees())
}

func (a *Asset) ProfitLossTotalIn(year int) Money {
	return a.ProfitLossIn(year).Add(a.PaidFeesIn(year)).Add(a.PaidExchangeFeesIn(year))
}

func (a *Asset) Transactions() []Transaction           { return a.transactions.all() }
func (a *Asset) TransactionsIn(year int) []Transaction { return a.transactions.transactions(year) }

func (a *Asset) TradeCount() int                          { return a.transactions.tradeCountAll() }
func (a *Asset) TradeCountIn(year int) int                { return a.transactions.tradeCount(year) }
func (a *Asset) TradeCountOf(d Direction) int             { return a.transactions.tradeCountOfAll(d) }
func (a *Asset) TradeCountOfIn(d Direction, year int) int { return a.transactions.tradeCountOf(d, year) }

// Compare orders assets by type (stocks first), then name, then ISIN.
func (a *Asset) Compare(o *Asset) int {
	if c := a.typ.rank() - o.typ.rank(); c != 0 {
		return c
	}
	if c := strings.Compare(a.name, o.name); c != 0 {
		return c
	}
	return strings.Compare(a.isin, o.isin)
}

func (a *Asset) String() string {
	return fmt.Sprintf("%s: %s (%s), %s pcs. Total (fees included): %s, Paid fees: %s, Profit/Loss (fees not included): %s",
		a.typ, a.name, a.isin, a.quantity, a.overall, a.PaidFees(), a.ProfitLoss())
}
