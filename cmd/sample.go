package cmd

import (
	"fmt"
	"io"
	"log"

	"db-converter/internal/converter"
	"db-converter/internal/sample"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	sampleTables int
	sampleRows   int
	sampleSeed   int64
	backticks    bool
)

var sampleCmd = &cobra.Command{
	Use:   "sample <output|->",
	Short: "Write a synthetic MySQL dump for trying out the converter",
	Args:  cobra.ExactArgs(1),
	RunE:  runSample,
}

func runSample(cmd *cobra.Command, args []string) (err error) {
	out, err := converter.OpenOutput(args[0])
	if err != nil {
		return err
	}
	defer closeOutput(out, args[0], &err)

	quote := `"`
	if backticks {
		quote = "`"
	}
	sum, err := sample.Generate(out, sample.Options{
		Tables: viper.GetInt("sample.tables"),
		Rows:   viper.GetInt("sample.rows"),
		Seed:   sampleSeed,
		Quote:  quote,
	})
	if err != nil {
		return err
	}

	if args[0] != converter.StdStream {
		fmt.Printf("Wrote %d tables and %d inserts to %s\n", sum.Tables, sum.Inserts, args[0])
	} else {
		log.Printf("Wrote %d tables and %d inserts\n", sum.Tables, sum.Inserts)
	}
	return nil
}

// closeOutput closes c and stores a close failure in *err unless an
// earlier error is already set.
func closeOutput(c io.Closer, path string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = &converter.ResourceError{Op: "close", Path: path, Err: cerr}
	}
}

func init() {
	RootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().IntVar(&sampleTables, "tables", 0, "Number of tables to generate (overrides config)")
	sampleCmd.Flags().IntVar(&sampleRows, "rows", 0, "Number of rows per table (overrides config)")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "Random seed (0 picks one)")
	sampleCmd.Flags().BoolVar(&backticks, "backticks", false, "Quote identifiers with back-ticks instead of double quotes")

	viper.BindPFlag("sample.tables", sampleCmd.Flags().Lookup("tables"))
	viper.BindPFlag("sample.rows", sampleCmd.Flags().Lookup("rows"))
	viper.SetDefault("sample.tables", 5)
	viper.SetDefault("sample.rows", 100)
}

