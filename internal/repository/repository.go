// Package repository handles all interactions with the database.
//
// It contains the raw SQL statements and methods to fetch or persist
// rows, abstracting SQL away from the service layer. Every operation
// is a single parameterized statement against the pool; there are no
// transactions because no operation touches more than one row.
package repository
