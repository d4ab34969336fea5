package depot

import (
	"fmt"
	"slices"
)

// profitLoss is the FIFO lot-matching engine of one asset.
//
// Buys enter the lot queue unconsumed; each sell drains the queue oldest
// lot first, realizing profit or loss in the calendar year of the sell.
// The queue holds only buy transactions with remaining quantity > 0,
// ordered by (timestamp, id).
type profitLoss struct {
	cur    string
	byYear map[int]Money
	queue  []Transaction
	err    error
}

func newProfitLoss(currency string) *profitLoss {
	return &profitLoss{cur: currency, byYear: make(map[int]Money)}
}

func (p *profitLoss) add(t Transaction) {
	if t.Type() == Buy {
		p.push(t)
		return
	}
	p.sell(t)
}

func (p *profitLoss) push(t Transaction) {
	i, _ := slices.BinarySearchFunc(p.queue, t, Transaction.Compare)
	p.queue = slices.Insert(p.queue, i, t)
}

func (p *profitLoss) credit(year int, m Money) {
	p.byYear[year] = p.byYear[year].Add(m)
}

// sell matches t against the queued lots. Three scenarios per iteration:
//
//  1. the oldest lot holds exactly the remaining sell quantity: net the
//     lot's settlement against the sell's and drop the lot;
//  2. the oldest lot holds more: realize the proportional cost basis
//     (lot price x sold quantity, converted at the lot's own rate) against
//     the sell's settlement, and keep the reduced lot queued;
//  3. the oldest lot holds less: realize the lot's full settlement against
//     the proportional proceeds (sell price x lot quantity, converted at
//     the sell's own rate), drop the lot and continue with the next one.
//
// Vendor-generated rows with zero quantity are not trades and are skipped.
// If the queue runs dry before the sell is absorbed the asset is flagged
// and the unmatched remainder is dropped; this never aborts the run.
func (p *profitLoss) sell(t Transaction) {
	if t.Quantity().Abs().IsZero() {
		return
	}
	year := t.Year()
	remaining := t
	for len(p.queue) > 0 && !remaining.Quantity().Abs().IsZero() {
		lot := p.queue[0]
		lotQty, sellQty := lot.Quantity().Abs(), remaining.Quantity().Abs()
		switch {
		case lotQty.Equal(sellQty):
			p.credit(year, lot.Amount().Add(remaining.Amount()))
			p.queue = p.queue[1:]
			remaining = remaining.ReduceQuantityBy(sellQty)

		case lotQty.GreaterThan(sellQty):
			costBasis := lot.Price().Mul(remaining.Quantity()).
				ConvertAt(remaining.Amount().Currency(), lot.ExchangeRate())
			p.credit(year, costBasis.Add(remaining.Amount()))
			p.queue[0] = lot.ReduceQuantityBy(sellQty)
			remaining = remaining.ReduceQuantityBy(sellQty)

		default: // lot smaller than the sell
			proceeds := remaining.Price().Mul(lot.Quantity()).
				ConvertAt(remaining.Amount().Currency(), remaining.ExchangeRate())
			p.credit(year, lot.Amount().Add(proceeds))
			p.queue = p.queue[1:]
			remaining = remaining.ReduceQuantityBy(lotQty)
		}
	}
	if !remaining.Quantity().Abs().IsZero() {
		p.err = fmt.Errorf("not enough past buys to complete all sells (%s, %s): profit/loss for this ISIN will be incorrect, provide an export that reaches further into the past",
			t.Product(), t.ISIN())
	}
}

// remainingQuantity is the total unconsumed quantity across all queued lots.
func (p *profitLoss) remainingQuantity() Quantity {
	var total Quantity
	for _, lot := range p.queue {
		total = total.Add(lot.Quantity())
	}
	return total
}

func (p *profitLoss) get(year int) Money {
	if m, ok := p.byYear[year]; ok {
		return M(0, p.cur).Add(m)
	}
	return M(0, p.cur)
}

func (p *profitLoss) total() Money {
	total := M(0, p.cur)
	for _, m := range p.byYear {
		total = total.Add(m)
	}
	return total
}
