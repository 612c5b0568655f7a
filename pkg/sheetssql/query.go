package sheetssql

import (
	"fmt"
	"reflect"
	"strconv"
)

// GetTableAs retrieves all rows from a table and maps them to structs of
// type T, skipping the header and type rows
func GetTableAs[T any](db *DB, tableName string) ([]T, error) {
	values, err := db.client.GetValues(db.spreadsheetID, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get table %s: %w", tableName, err)
	}

	if len(values) <= headerRowCount {
		return []T{}, nil
	}

	headers := values[0]
	dataRows := values[headerRowCount:]

	var model T
	t := reflect.TypeOf(model)

	columnIndexes := make(map[string]int)
	for i, header := range headers {
		if headerStr, ok := header.(string); ok {
			columnIndexes[headerStr] = i
		}
	}

	fieldMap := make(map[string]reflect.StructField)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if columnName := field.Tag.Get("ssql_header"); columnName != "" {
			fieldMap[columnName] = field
		}
	}

	results := make([]T, 0, len(dataRows))
	for rowIdx, row := range dataRows {
		result := reflect.New(t).Elem()

		for columnName, colIdx := range columnIndexes {
			field, ok := fieldMap[columnName]
			if !ok {
				continue
			}

			if colIdx >= len(row) || row[colIdx] == nil {
				continue
			}

			if err := setFieldValue(result.FieldByName(field.Name), row[colIdx]); err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", rowIdx+headerRowCount+1, columnName, err)
			}
		}

		results = append(results, result.Interface().(T))
	}

	return results, nil
}

// setFieldValue converts a sheet cell value to the appropriate Go type and
// sets it on the field. Empty cells resolve to the zero value.
func setFieldValue(field reflect.Value, cellValue interface{}) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	// Sheets API returns cells as strings
	cellStr, ok := cellValue.(string)
	if !ok {
		return fmt.Errorf("cell value is not a string")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(cellStr)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if cellStr == "" {
			field.SetInt(0)
		} else {
			intVal, err := strconv.ParseInt(cellStr, 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse int: %w", err)
			}
			field.SetInt(intVal)
		}

	case reflect.Float32, reflect.Float64:
		if cellStr == "" {
			field.SetFloat(0)
		} else {
			floatVal, err := strconv.ParseFloat(cellStr, 64)
			if err != nil {
				return fmt.Errorf("failed to parse float: %w", err)
			}
			field.SetFloat(floatVal)
		}

	case reflect.Bool:
		if cellStr == "" {
			field.SetBool(false)
		} else {
			boolVal, err := strconv.ParseBool(cellStr)
			if err != nil {
				return fmt.Errorf("failed to parse bool: %w", err)
			}
			field.SetBool(boolVal)
		}

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// rowFromModel flattens a struct's tagged fields into a sheet row
func rowFromModel(model interface{}) []interface{} {
	t := reflect.TypeOf(model)
	v := reflect.ValueOf(model)

	row := make([]interface{}, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("ssql_header") == "" {
			continue
		}
		row = append(row, v.Field(i).Interface())
	}

	return row
}

// InsertModel appends a struct as a row to its corresponding table
func InsertModel[T any](db *DB, model T) error {
	tableName := toSnakeCase(reflect.TypeOf(model).Name())
	return db.InsertRow(tableName, rowFromModel(model))
}

// InsertModels appends multiple structs as rows to their corresponding table
func InsertModels[T any](db *DB, models []T) error {
	if len(models) == 0 {
		return nil
	}

	tableName := toSnakeCase(reflect.TypeOf(models[0]).Name())

	rows := make([][]interface{}, 0, len(models))
	for _, model := range models {
		rows = append(rows, rowFromModel(model))
	}

	return db.InsertRows(tableName, rows)
}

// FindRowByColumn returns the 1-based sheet row number of the first data
// row whose given column equals value, or 0 if no row matches
func FindRowByColumn(db *DB, tableName, columnName string, value string) (int, error) {
	values, err := db.client.GetValues(db.spreadsheetID, tableName)
	if err != nil {
		return 0, fmt.Errorf("failed to get table %s: %w", tableName, err)
	}

	if len(values) <= headerRowCount {
		return 0, nil
	}

	colIdx := -1
	for i, header := range values[0] {
		if headerStr, ok := header.(string); ok && headerStr == columnName {
			colIdx = i
			break
		}
	}
	if colIdx == -1 {
		return 0, fmt.Errorf("column %s not found in table %s", columnName, tableName)
	}

	for i, row := range values[headerRowCount:] {
		if colIdx >= len(row) {
			continue
		}
		if cellStr, ok := row[colIdx].(string); ok && cellStr == value {
			return i + headerRowCount + 1, nil
		}
	}

	return 0, nil
}

// UpsertModelByKey updates the row whose key column matches the model's
// key value, or appends a new row when none exists. Returns true when a
// new row was created.
func UpsertModelByKey[T any](db *DB, keyColumn, keyValue string, model T) (bool, error) {
	tableName := toSnakeCase(reflect.TypeOf(model).Name())

	rowNumber, err := FindRowByColumn(db, tableName, keyColumn, keyValue)
	if err != nil {
		return false, err
	}

	if rowNumber == 0 {
		if err := db.InsertRow(tableName, rowFromModel(model)); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := db.UpdateRow(tableName, rowNumber, rowFromModel(model)); err != nil {
		return false, err
	}
	return false, nil
}
