package depot

import (
	"maps"
	"slices"
)

// yearlySum accumulates money into per-calendar-year buckets.
//
// An absent value contributes nothing and creates no bucket; a present zero
// still creates its bucket. Lookups for a year without a bucket return zero
// in the reporting currency.
type yearlySum struct {
	cur    string // reporting currency for zero-valued answers
	byYear map[int]Money
}

func newYearlySum(currency string) *yearlySum {
	return &yearlySum{cur: currency, byYear: make(map[int]Money)}
}

func (s *yearlySum) add(year int, m Money) {
	if m.IsAbsent() {
		return
	}
	s.byYear[year] = s.byYear[year].Add(m)
}

// get returns the sum for one year, zero in the reporting currency if the
// year never accumulated anything.
func (s *yearlySum) get(year int) Money {
	if m, ok := s.byYear[year]; ok {
		return m
	}
	return M(0, s.cur)
}

// total returns the sum across all years.
func (s *yearlySum) total() Money {
	total := M(0, s.cur)
	for _, m := range s.byYear {
		total = total.Add(m)
	}
	return total
}

// transactionIndex holds an asset's transactions, unique by identity and
// ordered by (timestamp, id), bucketed per calendar year.
type transactionIndex struct {
	byYear map[int][]Transaction
}

func newTransactionIndex() *transactionIndex {
	return &transactionIndex{byYear: make(map[int][]Transaction)}
}

// add inserts t in order and reports whether it was new. Re-adding a
// transaction with the same identity is a no-op.
func (x *transactionIndex) add(t Transaction) bool {
	year := t.Year()
	list := x.byYear[year]
	i, found := slices.BinarySearchFunc(list, t, Transaction.Compare)
	if found {
		return false
	}
	x.byYear[year] = slices.Insert(list, i, t)
	return true
}

func (x *transactionIndex) transactions(year int) []Transaction {
	return slices.Clone(x.byYear[year])
}

func (x *transactionIndex) all() []Transaction {
	var all []Transaction
	for _, year := range slices.Sorted(maps.Keys(x.byYear)) {
		all = append(all, x.byYear[year]...)
	}
	return all
}

func (x *transactionIndex) tradeCount(year int) int { return len(x.byYear[year]) }

func (x *transactionIndex) tradeCountAll() int {
	n := 0
	for _, list := range x.byYear {
		n += len(list)
	}
	return n
}

func (x *transactionIndex) tradeCountOf(d Direction, year int) int {
	n := 0
	for _, t := range x.byYear[year] {
		if t.Type() == d {
			n++
		}
	}
	return n
}

func (x *transactionIndex) tradeCountOfAll(d Direction) int {
	n := 0
	for _, list := range x.byYear {
		for _, t := range list {
			if t.Type() == d {
				n++
			}
		}
	}
	return n
}
