package depot

import (
	"maps"
	"slices"
)

// Depot is the top-level aggregate over all assets of one export.
//
// It owns the unique, ordered transaction set, one asset per ISIN, the
// observed [MinYear, MaxYear] range and the reporting currency (taken from
// the first transaction's overall settlement). The depot is read-only once
// built; it is the sole object the reporting layer consumes.
type Depot struct {
	transactions []Transaction
	assets       map[string]*Asset
	minYear      int
	maxYear      int
	currency     string
	parseErrors  []ParseError
}

// NewDepot builds a depot from parsed transactions and the parse errors
// collected alongside them. The transactions are sorted by (timestamp, id)
// and deduplicated by identity before aggregation, so the per-asset FIFO
// queues always consume events in chronological order.
func NewDepot(transactions []Transaction, parseErrors []ParseError) *Depot {
	txs := slices.Clone(transactions)
	slices.SortFunc(txs, Transaction.Compare)
	txs = slices.CompactFunc(txs, Transaction.Equal)

	d := &Depot{
		transactions: txs,
		assets:       make(map[string]*Asset),
		parseErrors:  slices.Clone(parseErrors),
	}
	for _, t := range txs {
		isin := t.ISIN()
		if _, ok := d.assets[isin]; !ok {
			d.assets[isin] = NewAsset(isin, t.Product(), t.Overall().Currency())
		}
		d.assets[isin].AddTransaction(t)

		year := t.Year()
		if d.minYear == 0 || year < d.minYear {
			d.minYear = year
		}
		if year > d.maxYear {
			d.maxYear = year
		}
		if d.currency == "" {
			d.currency = t.Overall().Currency()
		}
	}
	return d
}

// Currency is the reporting currency every zero-valued aggregate uses.
func (d *Depot) Currency() string { return d.currency }

// Years returns the inclusive [min, max] calendar-year range observed.
// Both are zero for an empty depot.
func (d *Depot) Years() (min, max int) { return d.minYear, d.maxYear }

// Transactions returns all transactions ordered by (timestamp, id).
func (d *Depot) Transactions() []Transaction { return slices.Clone(d.transactions) }

// Asset returns the asset for an ISIN, or nil if the export never traded it.
func (d *Depot) Asset(isin string) *Asset { return d.assets[isin] }

// Assets returns every asset, ordered by type, name, ISIN.
func (d *Depot) Assets() []*Asset {
	assets := slices.Collect(maps.Values(d.assets))
	slices.SortFunc(assets, (*Asset).Compare)
	return assets
}

// AssetsOf returns the assets of one classification, in Asset order.
func (d *Depot) AssetsOf(kind AssetType) []*Asset {
	var assets []*Asset
	for _, a := range d.Assets() {
		if a.Type() == kind {
			assets = append(assets, a)
		}
	}
	return assets
}

// LiquidatedAssets returns the assets whose position is fully closed.
func (d *Depot) LiquidatedAssets() []*Asset {
	var assets []*Asset
	for _, a := range d.Assets() {
		if a.IsLiquidated() {
			assets = append(assets, a)
		}
	}
	return assets
}

// ProfitLoss sums realized profit/loss over all assets of a kind.
func (d *Depot) ProfitLoss(kind AssetType) Money {
	total := M(0, d.currency)
	for _, a := range d.assets {
		if a.Type() == kind {
			total = total.Add(a.ProfitLoss())
		}
	}
	return total
}

// ProfitLossIn sums realized profit/loss of one calendar year over all
// assets of a kind.
func (d *Depot) ProfitLossIn(kind AssetType, year int) Money {
	total := M(0, d.currency)
	for _, a := range d.assets {
		if a.Type() == kind {
			total = total.Add(a.ProfitLossIn(year))
		}
	}
	return total
}

// PaidFees sums declared fees over all assets of a kind.
func (d *Depot) PaidFees(kind AssetType) Money {
	total := M(0, d.currency)
	for _, a := range d.assets {
		if a.Type() == kind {
			total = total.Add(a.PaidFees())
		}
	}
	return total
}

func (d *Depot) PaidFeesIn(kind AssetType, year int) Money {
	total := M(0, d.currency)
	for _, a := range d.assets {
		if a.Type() == kind {
			total = total.Add(a.PaidFeesIn(year))
		}
	}
	return total
}

// PaidExchangeFees sums derived currency-exchange fees over all assets of
// a kind.
func (d *Depot) PaidExchangeFees(kind AssetType) Money {
	total := M(0, d.currency)
	for _, a := range d.assets {
		if a.Type() == kind {
			total = total.Add(a.PaidExchangeFees())
		}
	}
	return total
}

func (d *Depot) PaidExchangeFeesIn(kind AssetType, year int) Money {
	total := M(0, d.currency)
	for _, a := range d.assets {
		if a.Type() == kind {
			total = total.Add(a.PaidExchangeFeesIn(year))
		}
	}
	return total
}

// TradeCount counts trades of one direction over all assets of a kind.
func (d *Depot) TradeCount(kind AssetType, dir Direction) int {
	n := 0
	for _, a := range d.assets {
		if a.Type() == kind {
			n += a.TradeCountOf(dir)
		}
	}
	return n
}

func (d *Depot) TradeCountIn(kind AssetType, dir Direction, year int) int {
	n := 0
	for _, a := range d.assets {
		if a.Type() == kind {
			n += a.TradeCountOfIn(dir, year)
		}
	}
	return n
}

// Overall is the net settlement total over every asset, fees included.
func (d *Depot) Overall() Money {
	total := M(0, d.currency)
	for _, a := range d.assets {
		total = total.Add(a.Overall())
	}
	return total
}

// HasParseErrors reports whether any export row was rejected.
func (d *Depot) HasParseErrors() bool { return len(d.parseErrors) > 0 }

// ParseErrors returns the rejected rows, in input order.
func (d *Depot) ParseErrors() []ParseError { return slices.Clone(d.parseErrors) }

// MatchErrors returns the lot-matching failures of every flagged asset, in
// Asset order.
func (d *Depot) MatchErrors() []error {
	var errs []error
	for _, a := range d.Assets() {
		if err := a.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// HasErrors reports whether the run recorded any parse or match failure.
// The reporting layer is expected to render a prominent warning then.
func (d *Depot) HasErrors() bool {
	return d.HasParseErrors() || len(d.MatchErrors()) > 0
}
