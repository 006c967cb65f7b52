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

package main

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fentec-project/rvgen/data"
	"github.com/fentec-project/rvgen/report"
	"github.com/fentec-project/rvgen/summary"
	"github.com/pkg/errors"
)

type outFlags struct {
	format string
	dir    string
}

func (f *outFlags) SetFlags(fs *flag.FlagSet) {
	dir := os.Getenv(envOutDir)
	if dir == "" {
		dir = "."
	}
	fs.StringVar(&f.format, "format", "", "also write the tables as csv or xlsx")
	fs.StringVar(&f.dir, "out", dir, "directory of written tables")
}

// write saves tables in the requested format. It does nothing if
// no format was requested.
func (f *outFlags) write(tables ...report.Table) error {
	r := report.New(tables...)
	switch strings.ToLower(f.format) {
	case "":
		return nil
	case "csv":
		paths, err := r.WriteCSV(f.dir)
		for _, p := range paths {
			log.Infof("wrote %s", p)
		}
		return err
	case "xlsx":
		if err := os.MkdirAll(f.dir, 0o755); err != nil {
			return errors.Wrap(err, "cannot create report directory")
		}
		path := filepath.Join(f.dir, fmt.Sprintf("%s-%s.xlsx", progName, r.ID))
		if err := r.WriteXLSX(path); err != nil {
			return err
		}
		log.Infof("wrote %s", path)
		return nil
	default:
		return errors.Errorf("unknown format %q", f.format)
	}
}

func printTable(w io.Writer, t report.Table) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(t.Header, "\t")+"\t")
	for _, row := range t.Strings() {
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	tw.Flush()
}

func printUniformSummary(w io.Writer, s *summary.UniformSummary) {
	fmt.Fprintf(w, "\ncount:       %d\n", s.Count)
	fmt.Fprintf(w, "mean R:      %.6f\n", s.MeanR)
	fmt.Fprintf(w, "min R:       %.6f\n", s.MinR)
	fmt.Fprintf(w, "max R:       %.6f\n", s.MaxR)
	fmt.Fprintf(w, "distinct R:  %d\n", s.DistinctR)
	if s.MinX != nil {
		fmt.Fprintf(w, "distinct X:  %d\n", s.DistinctX)
		fmt.Fprintf(w, "min X:       %s\n", s.MinX)
		fmt.Fprintf(w, "max X:       %s\n", s.MaxX)
	}
}

func printSampleSummary(w io.Writer, s *summary.SampleSummary) {
	fmt.Fprintf(w, "\ncount:    %d\n", s.Count)
	if s.Discrete {
		fmt.Fprintf(w, "mean:     %.4f\n", s.Mean)
		fmt.Fprintf(w, "mode:     %d\n", int64(s.Mode))
		fmt.Fprintf(w, "min:      %d\n", int64(s.Min))
		fmt.Fprintf(w, "max:      %d\n", int64(s.Max))
		return
	}
	fmt.Fprintf(w, "mean:     %.6f\n", s.Mean)
	fmt.Fprintf(w, "std dev:  %.6f\n", s.StdDev)
	fmt.Fprintf(w, "min:      %.6f\n", s.Min)
	fmt.Fprintf(w, "max:      %.6f\n", s.Max)
}

func printCycle(w io.Writer, length int, found bool, limit int) {
	if found {
		fmt.Fprintf(w, "cycle:       %d distinct states before a repeat\n", length)
		return
	}
	fmt.Fprintf(w, "cycle:       no repeat within %d steps\n", limit)
}

func printState(w io.Writer, n, x, m *big.Int) {
	fmt.Fprintf(w, "X_%s = %s\n", n, x)
	r := data.NewVector([]*big.Int{x}).Ratios(m)[0]
	fmt.Fprintf(w, "R_%s = %s\n", n, report.Text(r))
}
