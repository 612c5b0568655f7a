// Package sheetssql maps struct models onto tables stored in a Google
// Sheets spreadsheet. Each table is a sheet whose first two rows hold
// column names and column types; data rows follow. Models declare their
// columns with `ssql_header` and `ssql_type` struct tags.
package sheetssql

import (
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// SheetsClient defines the interface for sheets operations
type SheetsClient interface {
	GetValues(spreadsheetID, sheetRange string) ([][]interface{}, error)
	AppendRows(spreadsheetID, sheetRange string, values [][]interface{}) error
	UpdateValues(spreadsheetID, sheetRange string, values [][]interface{}) error
	CreateSheet(spreadsheetID, sheetTitle string) (int64, error)
	Service() *sheets.Service
}

// Column defines a column with name and type
type Column struct {
	Name string
	Type string // e.g., "text", "date", "int", "bool"
}

// TableSchema defines the structure of a table
type TableSchema struct {
	Name    string
	Columns []Column
}

// Schema defines the database schema
type Schema struct {
	Tables []TableSchema
}

// DB represents a connection to a Google Sheets "database"
type DB struct {
	client        SheetsClient
	spreadsheetID string
	schema        *Schema
}

// NewDB creates a new Sheets SQL database connection and ensures the
// schema exists, creating missing tables
func NewDB(client SheetsClient, spreadsheetID string, schema *Schema) (*DB, error) {
	db := &DB{
		client:        client,
		spreadsheetID: spreadsheetID,
		schema:        schema,
	}

	if err := db.ensureSchema(); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return db, nil
}

// Client returns the underlying sheets client
func (db *DB) Client() SheetsClient {
	return db.client
}

// SpreadsheetID returns the database spreadsheet ID
func (db *DB) SpreadsheetID() string {
	return db.spreadsheetID
}

// InsertRow appends a single row to the specified table
func (db *DB) InsertRow(tableName string, row []interface{}) error {
	return db.client.AppendRows(db.spreadsheetID, tableName, [][]interface{}{row})
}

// InsertRows appends multiple rows to the specified table
func (db *DB) InsertRows(tableName string, rows [][]interface{}) error {
	return db.client.AppendRows(db.spreadsheetID, tableName, rows)
}

// UpdateRow overwrites the row at the given 1-based sheet row number
func (db *DB) UpdateRow(tableName string, rowNumber int, row []interface{}) error {
	if rowNumber <= headerRowCount {
		return fmt.Errorf("row %d is part of the table header", rowNumber)
	}

	sheetRange := fmt.Sprintf("%s!A%d:%s%d", tableName, rowNumber, columnLetter(len(row)), rowNumber)
	return db.client.UpdateValues(db.spreadsheetID, sheetRange, [][]interface{}{row})
}

// columnLetter converts a 1-based column count to its A1-notation letter
func columnLetter(n int) string {
	letters := ""
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}
	return letters
}
