package renderer

import (
	"fmt"

	"github.com/etnz/depot"
)

// Report is the full depot report, one section per trading year plus an
// all-time overview.
type Report struct {
	Currency string
	Overall  Section
	Years    []Section
	Issues   []string
}

// Section groups the summary and the per-asset views for one scope
// (a single year, or all time).
type Section struct {
	Title   string
	Summary Summary
	Assets  []AssetView
}

// Summary holds the per-kind trade counts and totals of a section.
type Summary struct {
	StockBuys  int
	StockSells int
	OtherBuys  int
	OtherSells int

	StockProfitLoss  depot.Money
	OtherProfitLoss  depot.Money
	PaidFees         depot.Money
	PaidExchangeFees depot.Money

	// Overall is the net settlement over all booked transactions.
	// It is only set on the all-time section and absent otherwise.
	Overall depot.Money
}

// AssetView is the per-asset block of a section.
type AssetView struct {
	Name       string
	ISIN       string
	Type       depot.AssetType
	Warning    string
	Liquidated bool

	// Quantity is the running position. Only meaningful on the all-time
	// section, where transactions from every year contributed to it.
	Quantity depot.Quantity

	Buys  int
	Sells int

	ProfitLoss       depot.Money
	PaidFees         depot.Money
	PaidExchangeFees depot.Money
	ProfitLossTotal  depot.Money

	Transactions []TransactionRow
}

// TransactionRow holds the data for a single transaction line in a report.
type TransactionRow struct {
	When        string
	Type        depot.Direction
	Product     string
	ISIN        string
	Quantity    depot.Quantity
	Price       depot.Money
	AmountLocal depot.Money
	Rate        string
	ExchangeFee depot.Money
	Amount      depot.Money
	Fee         depot.Money
	Overall     depot.Money
}

// TransactionList is a flat transaction listing, optionally scoped to a
// single asset or year.
type TransactionList struct {
	Title        string
	Transactions []TransactionRow
}

// NewReport builds the report view from the depot.
func NewReport(d *depot.Depot) *Report {
	r := &Report{Currency: d.Currency()}

	for _, e := range d.ParseErrors() {
		r.Issues = append(r.Issues, e.Error())
	}
	for _, e := range d.MatchErrors() {
		r.Issues = append(r.Issues, e.Error())
	}

	r.Overall = overallSection(d)

	min, max := d.Years()
	for year := max; year >= min; year-- {
		s, ok := yearSection(d, year)
		if !ok {
			continue
		}
		r.Years = append(r.Years, s)
	}
	return r
}

// NewTransactionList builds a transaction listing from the depot. An empty
// isin selects every asset, a zero year selects every year.
func NewTransactionList(d *depot.Depot, isin string, year int) *TransactionList {
	l := &TransactionList{Title: "Transactions"}
	switch {
	case isin != "" && year != 0:
		l.Title = fmt.Sprintf("Transactions for %s in %d", isin, year)
	case isin != "":
		l.Title = fmt.Sprintf("Transactions for %s", isin)
	case year != 0:
		l.Title = fmt.Sprintf("Transactions in %d", year)
	}
	for _, t := range d.Transactions() {
		if isin != "" && t.ISIN() != isin {
			continue
		}
		if year != 0 && t.Year() != year {
			continue
		}
		l.Transactions = append(l.Transactions, newTransactionRow(t))
	}
	return l
}

func overallSection(d *depot.Depot) Section {
	s := Section{
		Title: "Overall",
		Summary: Summary{
			StockBuys:        d.TradeCount(depot.Stock, depot.Buy),
			StockSells:       d.TradeCount(depot.Stock, depot.Sell),
			OtherBuys:        d.TradeCount(depot.Other, depot.Buy),
			OtherSells:       d.TradeCount(depot.Other, depot.Sell),
			StockProfitLoss:  d.ProfitLoss(depot.Stock),
			OtherProfitLoss:  d.ProfitLoss(depot.Other),
			PaidFees:         d.PaidFees(depot.Stock).Add(d.PaidFees(depot.Other)),
			PaidExchangeFees: d.PaidExchangeFees(depot.Stock).Add(d.PaidExchangeFees(depot.Other)),
			Overall:          d.Overall(),
		},
	}
	for _, a := range d.Assets() {
		v := AssetView{
			Name:             a.Name(),
			ISIN:             a.ISIN(),
			Type:             a.Type(),
			Liquidated:       a.IsLiquidated(),
			Quantity:         a.Quantity(),
			Buys:             a.TradeCountOf(depot.Buy),
			Sells:            a.TradeCountOf(depot.Sell),
			ProfitLoss:       a.ProfitLoss(),
			PaidFees:         a.PaidFees(),
			PaidExchangeFees: a.PaidExchangeFees(),
			ProfitLossTotal:  a.ProfitLossTotal(),
		}
		if err := a.Err(); err != nil {
			v.Warning = err.Error()
		}
		s.Assets = append(s.Assets, v)
	}
	return s
}

// yearSection builds the section for one year. It reports false when no
// asset traded that year, so gap years do not produce empty sections.
func yearSection(d *depot.Depot, year int) (Section, bool) {
	s := Section{
		Title: fmt.Sprintf("Year %d", year),
		Summary: Summary{
			StockBuys:        d.TradeCountIn(depot.Stock, depot.Buy, year),
			StockSells:       d.TradeCountIn(depot.Stock, depot.Sell, year),
			OtherBuys:        d.TradeCountIn(depot.Other, depot.Buy, year),
			OtherSells:       d.TradeCountIn(depot.Other, depot.Sell, year),
			StockProfitLoss:  d.ProfitLossIn(depot.Stock, year),
			OtherProfitLoss:  d.ProfitLossIn(depot.Other, year),
			PaidFees:         d.PaidFeesIn(depot.Stock, year).Add(d.PaidFeesIn(depot.Other, year)),
			PaidExchangeFees: d.PaidExchangeFeesIn(depot.Stock, year).Add(d.PaidExchangeFeesIn(depot.Other, year)),
		},
	}
	for _, a := range d.Assets() {
		if a.TradeCountIn(year) == 0 {
			continue
		}
		v := AssetView{
			Name:             a.Name(),
			ISIN:             a.ISIN(),
			Type:             a.Type(),
			Buys:             a.TradeCountOfIn(depot.Buy, year),
			Sells:            a.TradeCountOfIn(depot.Sell, year),
			ProfitLoss:       a.ProfitLossIn(year),
			PaidFees:         a.PaidFeesIn(year),
			PaidExchangeFees: a.PaidExchangeFeesIn(year),
			ProfitLossTotal:  a.ProfitLossTotalIn(year),
		}
		for _, t := range a.TransactionsIn(year) {
			v.Transactions = append(v.Transactions, newTransactionRow(t))
		}
		s.Assets = append(s.Assets, v)
	}
	if len(s.Assets) == 0 {
		return Section{}, false
	}
	return s, true
}

func newTransactionRow(t depot.Transaction) TransactionRow {
	return TransactionRow{
		When:        t.Timestamp().Format("2006-01-02 15:04"),
		Type:        t.Type(),
		Product:     t.Product(),
		ISIN:        t.ISIN(),
		Quantity:    t.Quantity(),
		Price:       t.Price(),
		AmountLocal: t.AmountLocal(),
		Rate:        t.ExchangeRate().String(),
		ExchangeFee: t.ExchangeFee(),
		Amount:      t.Amount(),
		Fee:         t.DeclaredFee(),
		Overall:     t.Overall(),
	}
}
