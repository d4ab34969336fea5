// Package depot turns a brokerage transaction export into per-asset,
// per-year realized profit/loss, fee and exchange-fee figures.
//
// The core functionalities include:
//   - Transaction Model: Typed, immutable transaction records with a total
//     order by (timestamp, id), derived direction (buy/sell) and a derived
//     currency-exchange fee the vendor does not itemize.
//   - Lot Matching: A per-asset FIFO queue of unconsumed buy lots that is
//     consumed against sell events to realize profit/loss, bucketed by the
//     calendar year of the sell.
//   - Aggregation: Per-year fee, exchange-fee and profit/loss figures per
//     asset, composed into a Depot that tracks the observed year range and
//     the reporting currency.
//
// All arithmetic is exact decimal; every currency conversion rounds
// half-even at the scale declared by the governing exchange rate.
//
// Parsing the vendor CSV lives in the degiro subpackage, report rendering
// in the renderer subpackage. The Depot is the sole object the reporting
// layer consumes. This package serves as the foundational logic for the
// `dgr` command-line tool.
package depot
