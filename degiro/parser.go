package degiro

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/etnz/depot"
	"github.com/shopspring/decimal"
)

// dateTimeLayout is the export's timestamp: day-month-year immediately
// followed by hour:minute, date and time cells concatenated.
const dateTimeLayout = "02-01-200615:04"

// Fixed column offsets of one repaired data row.
const (
	colDate = iota
	colTime
	colProduct
	colISIN
	colExchange
	colQuantity
	colPrice
	colPriceCurrency
	colAmountLocal
	colAmountLocalCurrency
	colAmount
	colAmountCurrency
	colExchangeRate
	colFee
	colFeeCurrency
	colOverall
	colOverallCurrency
	colID
)

// rowParser reads typed values out of one table row. The first failure
// sticks: subsequent reads are no-ops, and the offending cell is kept for
// the error message.
type rowParser struct {
	table *Table
	row   int
	cell  string // last raw cell visited
	err   error
}

func (p *rowParser) text(column int) string {
	if p.err != nil {
		return ""
	}
	v, err := p.table.Cell(p.row, column)
	if err != nil {
		p.err = err
		return ""
	}
	p.cell = v
	return v
}

func (p *rowParser) timestamp(dateCol, timeCol int) time.Time {
	v := p.text(dateCol) + p.text(timeCol)
	if p.err != nil {
		return time.Time{}
	}
	p.cell = v
	ts, err := time.Parse(dateTimeLayout, v)
	if err != nil {
		p.err = err
	}
	return ts
}

func (p *rowParser) quantity(column int) depot.Quantity {
	v := p.text(column)
	if p.err != nil {
		return depot.Quantity{}
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		p.err = err
		return depot.Quantity{}
	}
	return depot.Q(d)
}

// rate parses the exchange rate cell; an empty cell defaults to 1.
func (p *rowParser) rate(column int) decimal.Decimal {
	v := p.text(column)
	if p.err != nil {
		return decimal.Decimal{}
	}
	if v == "" {
		return decimal.New(1, 0)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		p.err = err
	}
	return d
}

// money parses a (value, currency) column pair. Both cells empty means the
// value is absent, not zero.
func (p *rowParser) money(valueCol, currencyCol int) depot.Money {
	v, c := p.text(valueCol), p.text(currencyCol)
	if p.err != nil {
		return depot.Money{}
	}
	p.cell = v + c
	if v == "" && c == "" {
		return depot.Money{}
	}
	if v == "" || c == "" {
		p.err = fmt.Errorf("incomplete money value %q", v+c)
		return depot.Money{}
	}
	if money.GetCurrency(c) == nil {
		p.err = fmt.Errorf("unknown currency %q", c)
		return depot.Money{}
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		p.err = err
		return depot.Money{}
	}
	return depot.M(d, c)
}

// requiredMoney is money for columns the record cannot live without.
func (p *rowParser) requiredMoney(valueCol, currencyCol int) depot.Money {
	m := p.money(valueCol, currencyCol)
	if p.err == nil && m.IsAbsent() {
		p.err = fmt.Errorf("missing required amount")
	}
	return m
}

// Parse maps every data row of the table to a transaction. The header row
// is dropped first. A row whose cells cannot be parsed yields one
// depot.ParseError carrying the offending cell, the 1-based CSV row number
// and the raw row; parsing then continues with the next row. The result is
// unique by identity and ordered by (timestamp, id).
func Parse(table *Table) ([]depot.Transaction, []depot.ParseError) {
	RegisterCurrencies()

	// the headline carries no data
	if table.Rows() > 0 {
		table.DeleteRow(0)
	}

	var transactions []depot.Transaction
	var parseErrors []depot.ParseError
	for i := 0; i < table.Rows(); i++ {
		p := &rowParser{table: table, row: i}

		timestamp := p.timestamp(colDate, colTime)
		product := p.text(colProduct)
		isin := p.text(colISIN)
		exchange := p.text(colExchange)
		quantity := p.quantity(colQuantity)
		price := p.money(colPrice, colPriceCurrency)
		amountLocal := p.money(colAmountLocal, colAmountLocalCurrency)
		amount := p.money(colAmount, colAmountCurrency)
		rate := p.rate(colExchangeRate)
		fee := p.money(colFee, colFeeCurrency)
		overall := p.requiredMoney(colOverall, colOverallCurrency)
		id := p.text(colID)

		if p.err != nil {
			raw, _ := table.Row(i)
			// +2 to compare with the csv: rows are zero-based here and the
			// headline was stripped.
			parseErrors = append(parseErrors, depot.ParseError{Row: i + 2, Cell: p.cell, Line: raw, Err: p.err})
			continue
		}

		transactions = append(transactions, depot.NewTransaction(
			id, timestamp, product, isin, exchange,
			quantity, price, amount, amountLocal, rate, fee, overall))
	}

	slices.SortFunc(transactions, depot.Transaction.Compare)
	transactions = slices.CompactFunc(transactions, depot.Transaction.Equal)
	return transactions, parseErrors
}

// Load reads and parses a full export in one call and builds the depot
// from it.
func Load(r io.Reader) (*depot.Depot, error) {
	table, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	transactions, parseErrors := Parse(table)
	return depot.NewDepot(transactions, parseErrors), nil
}
