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

// Package report renders uniform streams, samples and probability
// tables as tables and writes them as CSV or XLSX.
package report

import (
	"math/big"
	"strconv"

	"github.com/fentec-project/rvgen/uniform"
	"github.com/fentec-project/rvgen/variate"
)

// floatDigits is the number of decimals of uniforms and samples
// in text output.
const floatDigits = 8

// Table is a named table. A cell is a string, an int, an int64,
// a float64, a *big.Int or nil for an absent value.
type Table struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// UniformTable lists the stream as (index, X, R) rows. The X column
// is left out for external streams.
func UniformTable(s *uniform.Stream) Table {
	_, congruential := s.States()
	t := Table{Name: "uniforms"}
	if congruential {
		t.Header = []string{"i", "X", "R"}
	} else {
		t.Header = []string{"i", "R"}
	}

	for _, row := range s.Rows() {
		if congruential {
			t.Rows = append(t.Rows, []interface{}{row.Index, row.State, row.Uniform})
		} else {
			t.Rows = append(t.Rows, []interface{}{row.Index, row.Uniform})
		}
	}
	return t
}

// SampleTable lists records as (index, uniform(s), value) rows.
// Normal samples show both uniforms of their pair, Binomial samples
// the first uniform of their block.
func SampleTable(d variate.Distribution, records []variate.Record) Table {
	t := Table{Name: "samples"}
	switch d.(type) {
	case variate.Normal:
		t.Header = []string{"i", "U1", "U2", d.Name()}
	case variate.Binomial:
		t.Header = []string{"i", "U1 (first of block)", d.Name()}
	default:
		t.Header = []string{"i", "U", d.Name()}
	}

	for _, row := range variate.Rows(records) {
		var value interface{} = row.Value
		if d.Discrete() {
			value = row.Int()
		}
		if row.Paired {
			t.Rows = append(t.Rows, []interface{}{row.Index, row.U1, row.U2, value})
		} else {
			t.Rows = append(t.Rows, []interface{}{row.Index, row.U1, value})
		}
	}
	return t
}

// PoissonTable lists the probability table of a Poisson distribution.
func PoissonTable(rows []variate.TableRow) Table {
	t := Table{
		Name:   "poisson",
		Header: []string{"k", "P(X=k)", "P(X<=k)"},
	}
	for _, row := range rows {
		t.Rows = append(t.Rows, []interface{}{row.K, row.PMF, row.CDF})
	}
	return t
}

// Text returns the text form of a cell.
func Text(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', floatDigits, 64)
	case *big.Int:
		if v == nil {
			return ""
		}
		return v.String()
	default:
		return ""
	}
}

// Strings returns the rows of t in text form.
func (t Table) Strings() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = Text(cell)
		}
	}
	return out
}
