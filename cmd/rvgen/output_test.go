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
	"bytes"
	"context"
	"io/ioutil"
	"math/big"
	"strings"
	"testing"

	"github.com/fentec-project/rvgen/report"
	"github.com/fentec-project/rvgen/summary"
	"github.com/fentec-project/rvgen/variate"
	"github.com/google/subcommands"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, report.PoissonTable(variate.Poisson{Rate: 1}.Table()[:2]))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"k", "P(X=k)", "P(X<=k)"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "0.36787944", "0.36787944"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "0.36787944", "0.73575888"}, strings.Fields(lines[2]))
}

func TestPrintSummaries(t *testing.T) {
	var buf bytes.Buffer
	printSampleSummary(&buf, &summary.SampleSummary{Count: 3, Discrete: true, Mean: 2, Mode: 1, Min: 1, Max: 4})
	assert.Contains(t, buf.String(), "mode:     1\n")
	assert.NotContains(t, buf.String(), "std dev")

	buf.Reset()
	printSampleSummary(&buf, &summary.SampleSummary{Count: 3, Mean: 2, StdDev: 0.5})
	assert.Contains(t, buf.String(), "std dev:  0.500000\n")

	buf.Reset()
	printUniformSummary(&buf, &summary.UniformSummary{Count: 2, MeanR: 0.5})
	assert.NotContains(t, buf.String(), "min X")

	buf.Reset()
	printState(&buf, big.NewInt(4), big.NewInt(19), big.NewInt(31))
	assert.Equal(t, "X_4 = 19\nR_4 = 0.61290323\n", buf.String())

	buf.Reset()
	printCycle(&buf, 30, true, 100)
	assert.Contains(t, buf.String(), "30 distinct states")
}

func TestOutFlags_Write(t *testing.T) {
	dir := t.TempDir()
	table := report.PoissonTable(variate.Poisson{Rate: 1}.Table())

	assert.NoError(t, (&outFlags{dir: dir}).write(table))
	files, err := ioutil.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files, "nothing is written without a format")

	require.NoError(t, (&outFlags{format: "CSV", dir: dir}).write(table))
	require.NoError(t, (&outFlags{format: "xlsx", dir: dir}).write(table))
	files, err = ioutil.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)

	assert.Error(t, (&outFlags{format: "pdf", dir: dir}).write(table))
}

func TestLogLevel(t *testing.T) {
	t.Setenv(envLogLevel, "")
	assert.Equal(t, logging.INFO, logLevel(false))
	assert.Equal(t, logging.DEBUG, logLevel(true))

	t.Setenv(envLogLevel, "warning")
	assert.Equal(t, logging.WARNING, logLevel(false))

	t.Setenv(envLogLevel, "loud")
	assert.Equal(t, logging.INFO, logLevel(false))
}

func TestFormatsCmd(t *testing.T) {
	assert.True(t, strings.HasSuffix(formatsDoc, "\n"))
	assert.False(t, strings.HasSuffix(formatsDoc, "\n\n"), "printed as is")
	assert.Equal(t, subcommands.ExitSuccess, formatsCmd{}.Execute(context.Background(), nil))
}
