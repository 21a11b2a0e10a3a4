// Package bulkupload imports products in bulk from XLSX files: parse the
// sheet, map its columns onto product fields, validate numeric columns, and
// push the rows to the backend.
package bulkupload

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"medibill/internal/domain"
)

// Field names a product attribute a sheet column can map onto.
type Field string

const (
	FieldName    Field = "name"
	FieldHSN     Field = "hsn"
	FieldMRP     Field = "mrp"
	FieldCGST    Field = "cgst"
	FieldSGST    Field = "sgst"
	FieldPacking Field = "packing"
)

// Fields lists the mappable fields in display order.
func Fields() []Field {
	return []Field{FieldName, FieldHSN, FieldMRP, FieldCGST, FieldSGST, FieldPacking}
}

// numericFields must parse as numbers in every mapped row.
var numericFields = map[Field]bool{
	FieldMRP:  true,
	FieldCGST: true,
	FieldSGST: true,
}

// requiredFields must be mapped before conversion.
var requiredFields = map[Field]bool{
	FieldName: true,
	FieldMRP:  true,
}

// Sheet is a parsed spreadsheet: the header row (real or synthesized) and
// the data rows, column-aligned to the headers.
type Sheet struct {
	Headers []string
	Rows    [][]string
}

// ParseFile opens an XLSX file and reads its first worksheet.
func ParseFile(path string, firstRowIsHeader bool) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("bulkupload: open %s: %w", path, err)
	}
	defer f.Close()
	return sheetFromWorkbook(f, firstRowIsHeader)
}

// ParseReader reads an XLSX workbook from r.
func ParseReader(r io.Reader, firstRowIsHeader bool) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("bulkupload: read workbook: %w", err)
	}
	defer f.Close()
	return sheetFromWorkbook(f, firstRowIsHeader)
}

func sheetFromWorkbook(f *excelize.File, firstRowIsHeader bool) (*Sheet, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("bulkupload: workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("bulkupload: read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("bulkupload: sheet %s is empty", sheets[0])
	}

	var s Sheet
	if firstRowIsHeader {
		for i, h := range rows[0] {
			h = strings.TrimSpace(h)
			if h == "" {
				h = fmt.Sprintf("Column %d", i+1)
			}
			s.Headers = append(s.Headers, h)
		}
		s.Rows = rows[1:]
	} else {
		width := 0
		for _, r := range rows {
			if len(r) > width {
				width = len(r)
			}
		}
		for i := 0; i < width; i++ {
			s.Headers = append(s.Headers, fmt.Sprintf("Column %d", i+1))
		}
		s.Rows = rows
	}

	// Pad ragged rows so every row has a cell per header.
	for i, r := range s.Rows {
		for len(r) < len(s.Headers) {
			r = append(r, "")
		}
		s.Rows[i] = r[:len(s.Headers)]
	}
	return &s, nil
}

// Mapping assigns a column index to each mapped field.
type Mapping map[Field]int

// aliases are alternative header spellings recognized by AutoMap.
var aliases = map[Field][]string{
	FieldName:    {"name", "product", "product name", "item"},
	FieldHSN:     {"hsn", "hsn code"},
	FieldMRP:     {"mrp", "price", "m.r.p"},
	FieldCGST:    {"cgst", "cgst %", "cgst percent"},
	FieldSGST:    {"sgst", "sgst %", "sgst percent"},
	FieldPacking: {"packing", "pack", "pack size"},
}

// AutoMap matches headers to fields by normalized name. Each column is
// assigned to at most one field; first match wins.
func (s *Sheet) AutoMap() Mapping {
	m := Mapping{}
	used := map[int]bool{}
	for _, f := range Fields() {
		for idx, h := range s.Headers {
			if used[idx] {
				continue
			}
			norm := strings.ToLower(strings.TrimSpace(h))
			for _, a := range aliases[f] {
				if norm == a {
					m[f] = idx
					used[idx] = true
					break
				}
			}
			if _, ok := m[f]; ok {
				break
			}
		}
	}
	return m
}

// NumericIssue reports non-numeric values found in a numeric column.
type NumericIssue struct {
	Field        Field
	InvalidCount int
	Samples      []string
}

const maxIssueSamples = 5

// ValidateNumeric checks every mapped numeric column and collects the
// offending values, a few samples per field.
func (s *Sheet) ValidateNumeric(m Mapping) []NumericIssue {
	var issues []NumericIssue
	for _, f := range Fields() {
		if !numericFields[f] {
			continue
		}
		col, ok := m[f]
		if !ok {
			continue
		}
		issue := NumericIssue{Field: f}
		for _, row := range s.Rows {
			cell := strings.TrimSpace(row[col])
			if cell == "" {
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				issue.InvalidCount++
				if len(issue.Samples) < maxIssueSamples {
					issue.Samples = append(issue.Samples, cell)
				}
			}
		}
		if issue.InvalidCount > 0 {
			issues = append(issues, issue)
		}
	}
	return issues
}

// Products converts the mapped rows to product records. Rows with an empty
// name cell are skipped. Numeric validation must pass first; a parse
// failure here is reported as an error.
func (s *Sheet) Products(m Mapping) ([]domain.Product, error) {
	for f := range requiredFields {
		if _, ok := m[f]; !ok {
			return nil, fmt.Errorf("bulkupload: field %q is not mapped: %w", f, domain.ErrMissingField)
		}
	}

	cell := func(row []string, f Field) string {
		if col, ok := m[f]; ok {
			return strings.TrimSpace(row[col])
		}
		return ""
	}
	num := func(row []string, f Field) (float64, error) {
		v := cell(row, f)
		if v == "" {
			return 0, nil
		}
		return strconv.ParseFloat(v, 64)
	}

	var products []domain.Product
	for i, row := range s.Rows {
		name := cell(row, FieldName)
		if name == "" {
			continue
		}
		p := domain.Product{
			Name:    name,
			HSN:     cell(row, FieldHSN),
			Packing: cell(row, FieldPacking),
		}
		var err error
		if p.MRP, err = num(row, FieldMRP); err != nil {
			return nil, fmt.Errorf("bulkupload: row %d: mrp: %w", i+1, err)
		}
		if p.CGSTPercent, err = num(row, FieldCGST); err != nil {
			return nil, fmt.Errorf("bulkupload: row %d: cgst: %w", i+1, err)
		}
		if p.SGSTPercent, err = num(row, FieldSGST); err != nil {
			return nil, fmt.Errorf("bulkupload: row %d: sgst: %w", i+1, err)
		}
		products = append(products, p)
	}
	return products, nil
}
