package depot

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Direction is the side of a trade, derived from the sign of the quantity.
type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
)

// Transaction is one immutable row of the brokerage export.
//
// Identity is the pair (id, timestamp); the total order is by timestamp,
// then id. Price, amount, local amount and fee may be absent (non-trade
// events carry no settlement); overall is always present and its currency
// is the reporting currency of the transaction.
type Transaction struct {
	id           string
	timestamp    time.Time // minute precision
	product      string
	isin         string
	exchange     string
	quantity     Quantity
	price        Money
	amount       Money
	amountLocal  Money
	exchangeRate decimal.Decimal
	fee          Money
	overall      Money

	typ         Direction // derived from the quantity sign
	exchangeFee Money     // derived at construction, see ExchangeFee
}

// NewTransaction builds a transaction record. The direction and the implicit
// exchange fee are derived here, once.
func NewTransaction(id string, timestamp time.Time, product, isin, exchange string,
	quantity Quantity, price, amount, amountLocal Money, exchangeRate decimal.Decimal,
	fee, overall Money) Transaction {

	t := Transaction{
		id:           id,
		timestamp:    timestamp,
		product:      product,
		isin:         isin,
		exchange:     exchange,
		quantity:     quantity,
		price:        price,
		amount:       amount,
		amountLocal:  amountLocal,
		exchangeRate: exchangeRate,
		fee:          fee,
		overall:      overall,
	}
	if quantity.IsPositive() {
		t.typ = Buy
	} else {
		t.typ = Sell
	}
	t.exchangeFee = t.calculateExchangeFee()
	return t
}

func (t Transaction) ID() string                     { return t.id }
func (t Transaction) Timestamp() time.Time           { return t.timestamp }
func (t Transaction) Year() int                      { return t.timestamp.Year() }
func (t Transaction) Product() string                { return t.product }
func (t Transaction) ISIN() string                   { return t.isin }
func (t Transaction) Exchange() string               { return t.exchange }
func (t Transaction) Quantity() Quantity             { return t.quantity }
func (t Transaction) Price() Money                   { return t.price }
func (t Transaction) Amount() Money                  { return t.amount }
func (t Transaction) AmountLocal() Money             { return t.amountLocal }
func (t Transaction) ExchangeRate() decimal.Decimal  { return t.exchangeRate }
func (t Transaction) Overall() Money                 { return t.overall }
func (t Transaction) Type() Direction                { return t.typ }
func (t Transaction) ExchangeFee() Money             { return t.exchangeFee }

// DeclaredFee returns the fee column as parsed: absent when the export left
// it empty. Aggregation must use this form to keep absent and zero apart.
func (t Transaction) DeclaredFee() Money { return t.fee }

// Fee returns the declared fee, or zero in the reporting currency when the
// export declared none.
func (t Transaction) Fee() Money {
	total := M(0, t.overall.Currency())
	if t.fee.IsAbsent() {
		return total
	}
	return total.Add(t.fee)
}

// calculateExchangeFee derives the hidden currency-conversion cost: it is
// listed in the vendor's price guide but never itemized in any report.
// The local amount is converted into the reporting currency at the inverse
// of the transaction's own exchange rate; the difference against the booked
// amount is the fee. When the currencies match (or the row carries no
// settlement amounts) the fee is exactly zero in the reporting currency.
func (t Transaction) calculateExchangeFee() Money {
	zero := M(0, t.overall.Currency())
	if t.amountLocal.IsAbsent() || t.amount.IsAbsent() {
		return zero
	}
	if t.amountLocal.Currency() == t.overall.Currency() {
		return zero
	}
	exchanged := t.amountLocal.ConvertAt(t.overall.Currency(), t.exchangeRate)
	if t.typ == Buy {
		return exchanged.Sub(t.amount)
	}
	return t.amount.Sub(exchanged)
}

// ReduceQuantityBy returns a copy of the transaction whose quantity
// magnitude is reduced by q (a non-negative amount), preserving the sign.
// The receiver is left untouched; lot matching never mutates a transaction
// already in the queue.
func (t Transaction) ReduceQuantityBy(q Quantity) Transaction {
	reduced := t.quantity.Abs().Sub(q)
	if t.quantity.IsNegative() {
		reduced = reduced.Neg()
	}
	t.quantity = reduced
	return t
}

// Equal reports identity: same id and same timestamp.
func (t Transaction) Equal(o Transaction) bool {
	return t.id == o.id && t.timestamp.Equal(o.timestamp)
}

// Compare orders transactions by timestamp, then id.
func (t Transaction) Compare(o Transaction) int {
	if c := t.timestamp.Compare(o.timestamp); c != 0 {
		return c
	}
	return strings.Compare(t.id, o.id)
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s: %s (%s, %s, %s) - %s, %s pcs. at %s p.p. Total: %s, Local: %s, Exchange rate: %s Fee: %s Overall: %s",
		t.typ, t.timestamp.Format("02-01-2006 15:04"), t.product, t.isin, t.id,
		t.exchange, t.quantity, t.price, t.amount, t.amountLocal, t.exchangeRate,
		t.Fee(), t.overall)
}
