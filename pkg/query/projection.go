// Package query provides SQL query construction utilities built around
// field-to-column projections with automatic parameter numbering.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap translates logical field names into qualified column
// references for a single table.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	fields  []string
	columns map[string]string
}

// NewProjectionMap creates a ProjectionMap for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		fields:  make([]string, 0),
		columns: make(map[string]string),
	}
}

// Project registers a column under a logical field name. Registration order
// determines column order in SELECT projections.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.fields = append(p.fields, field)
	p.columns[field] = column
	return p
}

// Table returns the aliased table reference, e.g. "public.customers c".
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column returns the qualified column reference for a field. Unregistered
// fields panic; projections are static package values, so a miss is a
// programming error.
func (p *ProjectionMap) Column(field string) string {
	col, ok := p.columns[field]
	if !ok {
		panic(fmt.Sprintf("query: field %q not registered in projection for %s.%s", field, p.schema, p.table))
	}
	return fmt.Sprintf("%s.%s", p.alias, col)
}

// Columns returns the comma-separated qualified column list in registration order.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.fields))
	for i, f := range p.fields {
		cols[i] = p.Column(f)
	}
	return strings.Join(cols, ", ")
}
