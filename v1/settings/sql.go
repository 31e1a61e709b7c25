package settings

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"gorm.io/gorm"
)

// DefaultVariableTable is the table SQLLoader reads when none is configured.
const DefaultVariableTable = "variable"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Variable is one row of a host's name/value settings table. Value holds a
// JSON document; rows whose value is not valid JSON are exposed as the raw string.
type Variable struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value string `gorm:"column:value"`
}

// SQLLoader reads host settings stored in a relational name/value table.
//
// It is a loader rather than a live Source: Load takes one snapshot so that a
// resolution never issues a query per key and database errors are returned to
// the caller instead of being folded into "absent".
type SQLLoader struct {
	db    *gorm.DB
	table string
}

// NewSQLLoader creates a loader over db. An empty table selects DefaultVariableTable.
func NewSQLLoader(db *gorm.DB, table string) *SQLLoader {
	if table == "" {
		table = DefaultVariableTable
	}
	return &SQLLoader{db: db, table: table}
}

// Load returns a Map snapshot of the requested keys. Keys without a row are
// absent from the result. With no keys, the whole table is loaded.
func (l *SQLLoader) Load(ctx context.Context, keys ...string) (Map, error) {
	var rows []Variable

	query := l.db.WithContext(ctx).Table(l.table)
	if len(keys) > 0 {
		query = query.Where("name IN ?", keys)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load settings from %s: %w", l.table, err)
	}

	out := make(Map, len(rows))
	for _, row := range rows {
		out[row.Name] = decodeValue(row.Value)
	}
	return out, nil
}

func decodeValue(raw string) any {
	var v any
	if err := json.UnmarshalFromString(raw, &v); err != nil {
		return raw
	}
	return v
}
