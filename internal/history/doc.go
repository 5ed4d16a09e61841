// Package history persists the album records annig has generated.
//
// The store is a SQLite database at <state_dir>/history.db keyed by catalog
// number. Regenerating a catalog reuses its album id so the Anni repository
// keeps a stable identifier across runs. Schema changes ship as embedded,
// ordered SQL migrations that are applied on Open.
package history
