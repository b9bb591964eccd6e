package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Data"

// excelEncoder builds a single-sheet xlsx workbook.
type excelEncoder struct{}

func newExcelEncoder() (Encoder, error) {
	return excelEncoder{}, nil
}

func (excelEncoder) Encode(payload Payload) ([]byte, error) {
	rows, err := tabulate(payload)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("addressing row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (excelEncoder) Extension() string {
	return FormatExcel.Extension()
}

func (excelEncoder) MIMEType() string {
	return FormatExcel.MIMEType()
}

// tabulate flattens a payload into rows of cells: header plus one row per
// record, or Key/Value pairs for the scalar shape.
func tabulate(payload Payload) ([][]any, error) {
	if payload.Kind() == KindKeyValue {
		rows := [][]any{{"Key", "Value"}}
		pairs := payload.Pairs()
		if pairs == nil {
			return rows, nil
		}
		for _, k := range pairs.Keys() {
			v, _ := pairs.Get(k)
			rows = append(rows, []any{k, v})
		}
		return rows, nil
	}

	records := payload.Records()
	if len(records) == 0 {
		return nil, ErrEmptyRecordSet
	}

	fields := records[0].Keys()
	header := make([]any, len(fields))
	for i, field := range fields {
		header[i] = field
	}

	rows := make([][]any, 0, len(records)+1)
	rows = append(rows, header)
	for _, record := range records {
		row := make([]any, len(fields))
		for i, field := range fields {
			if v, ok := record.Get(field); ok {
				row[i] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
