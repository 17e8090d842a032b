package datapackage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/etnz/dcasim"
	"github.com/etnz/dcasim/date"
	"github.com/shopspring/decimal"
)

// Dataset streams the rows of a CSV resource as observations.
//
// Dates are normalized to months as soon as a row is read.
type Dataset struct {
	Resource Resource

	r         *csv.Reader
	closer    io.Closer
	dateCol   int
	priceCol  int
	parseDate func(string) (date.Month, error)
	line      int
}

// newDataset reads the CSV header and selects the date and price columns.
func newDataset(res Resource, rc io.ReadCloser, priceField string) (*Dataset, error) {
	r := csv.NewReader(rc)
	r.FieldsPerRecord = -1 // Allow variable number of fields
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	header = slices.Clone(header)

	d := &Dataset{Resource: res, r: r, closer: rc, line: 1, dateCol: 0, priceCol: 1}
	d.parseDate = date.NormalizeString

	// the schema is authoritative, the header is only used to find names.
	names := header
	if len(res.Fields) > 0 {
		names = make([]string, len(res.Fields))
		for i, f := range res.Fields {
			names[i] = f.Name
		}
		for i, f := range res.Fields {
			if f.Type == "date" || f.Type == "yearmonth" {
				d.dateCol = i
				d.parseDate = dateParser(f.Type)
				break
			}
		}
		d.priceCol = d.dateCol + 1
		for i := d.dateCol + 1; i < len(res.Fields); i++ {
			if res.Fields[i].Type == "number" {
				d.priceCol = i
				break
			}
		}
	}
	if priceField != "" {
		i := slices.IndexFunc(names, func(n string) bool { return strings.EqualFold(strings.TrimSpace(n), priceField) })
		if i < 0 {
			return nil, fmt.Errorf("no price field %q in %v", priceField, names)
		}
		d.priceCol = i
	}
	if d.priceCol == d.dateCol {
		return nil, fmt.Errorf("price field %q is the date field", names[d.priceCol])
	}
	return d, nil
}

// dateParser returns the parser for a schema field type.
func dateParser(typ string) func(string) (date.Month, error) {
	switch typ {
	case "date":
		return func(s string) (date.Month, error) {
			d, err := date.Parse(strings.TrimSpace(s))
			if err != nil {
				return date.Month{}, err
			}
			return d.Key(), nil
		}
	case "yearmonth":
		return date.ParseMonth
	default:
		return date.NormalizeString
	}
}

// Next implements dcasim.Source.
func (d *Dataset) Next() (dcasim.Observation, error) {
	for {
		record, err := d.r.Read()
		if errors.Is(err, io.EOF) {
			return dcasim.Observation{}, io.EOF
		}
		if err != nil {
			return dcasim.Observation{}, fmt.Errorf("failed to read csv: %w", err)
		}
		d.line++
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue // blank line
		}
		if len(record) <= d.dateCol || len(record) <= d.priceCol {
			return dcasim.Observation{}, fmt.Errorf("line %d: %d fields, want at least %d", d.line, len(record), max(d.dateCol, d.priceCol)+1)
		}
		m, err := d.parseDate(record[d.dateCol])
		if err != nil {
			return dcasim.Observation{}, fmt.Errorf("line %d: %w", d.line, err)
		}
		cell := strings.TrimSpace(record[d.priceCol])
		if cell == "" {
			return dcasim.Observation{}, fmt.Errorf("line %d: empty price for %s", d.line, m)
		}
		price, err := decimal.NewFromString(cell)
		if err != nil {
			return dcasim.Observation{}, fmt.Errorf("line %d: invalid price %q for %s: %w", d.line, cell, m, err)
		}
		return dcasim.Observation{Month: m, Price: price}, nil
	}
}

// Close releases the underlying file or connection.
func (d *Dataset) Close() error { return d.closer.Close() }
