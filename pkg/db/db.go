package db

import (
	"fmt"

	"github.com/kazuyat/siege-roster/pkg/sheetssql"
)

// DB provides database operations using SheetsSQL
type DB struct {
	ssql *sheetssql.DB
}

// NewDB creates a new database instance
func NewDB(ssql *sheetssql.DB) *DB {
	return &DB{
		ssql: ssql,
	}
}

// InsertScheduleRun inserts a new schedule run record
func (db *DB) InsertScheduleRun(run *ScheduleRun) error {
	if err := sheetssql.InsertModel(db.ssql, *run); err != nil {
		return fmt.Errorf("failed to insert schedule run: %w", err)
	}
	return nil
}
