package sample_test

import (
	"bytes"
	"strings"
	"testing"

	"db-converter/internal/converter"
	"db-converter/internal/sample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	_, err := sample.Generate(&a, sample.Options{Tables: 3, Rows: 5, Seed: 42})
	require.NoError(t, err)
	_, err = sample.Generate(&b, sample.Options{Tables: 3, Rows: 5, Seed: 42})
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestGeneratedDumpConverts(t *testing.T) {
	for _, quote := range []string{`"`, "`"} {
		t.Run(quote, func(t *testing.T) {
			var dump, out bytes.Buffer
			sum, err := sample.Generate(&dump, sample.Options{Tables: 4, Rows: 20, Seed: 7, Quote: quote})
			require.NoError(t, err)

			var diags []error
			stats, err := converter.Convert(&dump, &out, converter.Options{
				OnDiagnostic: func(err error) { diags = append(diags, err) },
			})
			require.NoError(t, err)
			assert.Empty(t, diags)

			assert.Equal(t, sum.Tables, stats.Tables)
			assert.Equal(t, sum.Inserts, stats.Inserts)
			assert.Equal(t, sum.Enums, stats.Enums)
			assert.Equal(t, sum.Casts, stats.Casts)
			assert.Equal(t, sum.Sequences, stats.Sequences)
			assert.Equal(t, sum.ForeignKeys, stats.ForeignKeys)
			assert.Equal(t, sum.Fulltext, stats.Fulltext)

			got := out.String()
			assert.Equal(t, sum.Tables, strings.Count(got, "CREATE TABLE "))
			assert.NotContains(t, got, "0000-00-00 00:00:00")
			assert.NotContains(t, got, `\'`)
			assert.True(t, strings.HasSuffix(got, "\nCOMMIT;\n"))
		})
	}
}

func TestGenerateNoRows(t *testing.T) {
	var dump bytes.Buffer
	sum, err := sample.Generate(&dump, sample.Options{Tables: 2, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Inserts)
	assert.Equal(t, 1, sum.ForeignKeys)
	assert.NotContains(t, dump.String(), "INSERT INTO")
}
