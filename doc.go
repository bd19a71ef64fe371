// Package networth turns a sparse, irregularly-sampled ledger of per-account
// value snapshots into currency-normalized time series and the analytics
// derived from them. It is designed to be local-first and auditable: the
// ledger of observed account values is the single source of truth, and every
// derived figure is a pure function of it plus two injected collaborators
// (a currency-rate lookup and a benchmark price lookup).
//
// The core functionalities include:
//   - Ledger Management: Recording per-account value observations with
//     upsert semantics (at most one record per account and date).
//   - Series Alignment: Producing dense, forward-filled business-day series
//     anchored to the last known value at or before a window's start.
//   - Performance: Daily, cumulative, relative, money-weighted and
//     time-weighted return calculations over aligned series.
//   - Risk: Volatility, Sharpe, Sortino, drawdown with recovery detection,
//     VaR/CVaR and CAPM beta/alpha against a benchmark.
//   - Diversification: Return correlation matrices across accounts with a
//     0-100 diversification score and flagged pairs.
//   - Sustainability: A persisted daily income/expense/delta ledger inferred
//     incrementally from value changes, with one distinguished spending
//     account.
//
// This package serves as the foundational logic for the `nwt` command-line
// tool; persistence lives in the SQLite-backed Store, and presentation in
// the renderer and cmd packages.
package networth
