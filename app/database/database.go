package database

import "database/sql"

// DBTX is satisfied by both *sql.DB and *sql.Tx so query helpers can run
// standalone or inside a transaction the caller controls.
type DBTX interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

var _ DBTX = (*sql.DB)(nil)
var _ DBTX = (*sql.Tx)(nil)
