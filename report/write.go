/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package report

import (
	"encoding/csv"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Report is a set of tables from one run, identified by a random ID.
type Report struct {
	ID     uuid.UUID
	Tables []Table
}

// New returns a Report with a fresh ID.
func New(tables ...Table) *Report {
	return &Report{
		ID:     uuid.New(),
		Tables: tables,
	}
}

// WriteCSV writes every table to dir as <name>-<id>.csv and
// returns the paths of the written files.
func (r *Report) WriteCSV(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "cannot create report directory")
	}

	paths := make([]string, 0, len(r.Tables))
	for _, t := range r.Tables {
		path := filepath.Join(dir, fmt.Sprintf("%s-%s.csv", t.Name, r.ID))
		if err := writeCSV(path, t); err != nil {
			return paths, errors.Wrapf(err, "cannot write table %s", t.Name)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCSV(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return err
	}
	if err := w.WriteAll(t.Strings()); err != nil {
		return err
	}
	return f.Close()
}

// WriteXLSX writes the report to a workbook at path, one sheet
// per table. Numbers are stored as numbers, states as text since
// they may exceed the precision of a spreadsheet cell.
func (r *Report) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range r.Tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.Name); err != nil {
				return errors.Wrap(err, "cannot name sheet")
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return errors.Wrapf(err, "cannot create sheet %s", t.Name)
		}

		for c, h := range t.Header {
			cell, _ := excelize.CoordinatesToCellName(c+1, 1)
			if err := f.SetCellValue(t.Name, cell, h); err != nil {
				return err
			}
		}
		for ri, row := range t.Rows {
			for c, v := range row {
				cell, _ := excelize.CoordinatesToCellName(c+1, ri+2)
				if err := f.SetCellValue(t.Name, cell, xlsxValue(v)); err != nil {
					return err
				}
			}
		}
	}

	if _, err := f.NewSheet("run"); err != nil {
		return errors.Wrap(err, "cannot create run sheet")
	}
	if err := f.SetCellValue("run", "A1", "id"); err != nil {
		return err
	}
	if err := f.SetCellValue("run", "B1", r.ID.String()); err != nil {
		return err
	}

	return errors.Wrap(f.SaveAs(path), "cannot save workbook")
}

func xlsxValue(v interface{}) interface{} {
	if b, ok := v.(*big.Int); ok {
		return Text(b)
	}
	return v
}
