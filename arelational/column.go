// Package arelational gives RecurrentEventSet a database/sql column shape:
// a Scan/Value adapter storing the acodec wire form in a JSON(B) column,
// plus the DDL text that provisions and tears down the backing table.
// Containment and forward evaluation never happen in SQL; this package
// only moves the wire form in and out of a row.
package arelational

import (
	"database/sql/driver"
	_ "embed"
	"fmt"

	"github.com/jpfluger/atempo/acodec"
	"github.com/jpfluger/atempo/aset"
)

//go:embed sql/install.sql
var installSQL string

//go:embed sql/uninstall.sql
var uninstallSQL string

// DDL returns the provisioning SQL for the table a Column is stored in.
func DDL() string {
	return installSQL
}

// UninstallDDL returns the teardown SQL matching DDL.
func UninstallDDL() string {
	return uninstallSQL
}

// Column adapts a RecurrentEventSet to database/sql's Scanner/Valuer
// contract, the same two-method shape a systemd calendar-expression
// column uses for its own text form, applied here to our JSON wire form.
type Column struct {
	Set *aset.RecurrentEventSet
}

// Scan implements sql.Scanner, reading the wire JSON out of a jsonb column.
func (c *Column) Scan(src interface{}) error {
	if src == nil {
		c.Set = nil
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("arelational: unable to scan %T into Column", src)
	}

	expr, err := acodec.FromJSON(raw)
	if err != nil {
		return err
	}
	if c.Set == nil {
		set, err := aset.New(expr)
		if err != nil {
			return err
		}
		c.Set = set
		return nil
	}
	c.Set.Expr = expr
	return nil
}

// Value implements driver.Valuer, rendering the set's expression as wire
// JSON for insertion into a jsonb column. The set's ID is not included: it
// belongs in its own primary-key column, never in the wire form itself.
func (c Column) Value() (driver.Value, error) {
	if c.Set == nil {
		return nil, nil
	}
	raw, err := acodec.ToJSON(c.Set.Expr)
	if err != nil {
		return nil, err
	}
	return raw, nil
}
