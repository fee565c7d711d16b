package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"db-converter/internal/converter"
	"db-converter/internal/progress"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile          string
	showProgress     bool
	verbose          bool
	fulltextLanguage string
)

var RootCmd = &cobra.Command{
	Use:   "db-converter <input-dump|-> <output-sql|->",
	Short: "Convert a MySQL dump into a PostgreSQL script",
	Long: `
DB CONVERTER - MySQL dump to PostgreSQL script

Dump the source database with:
  mysqldump --compatible=postgresql --default-character-set=utf8 -r databasename.mysql -u root databasename

Use "-" to read the dump from standard input or write the script to standard output.
`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runConvert(args[0], args[1])
	},
}

func runConvert(inPath, outPath string) error {
	cfg := GetConvertConfig()
	toStdout := outPath == converter.StdStream

	opts := converter.Options{
		FulltextLanguage: cfg.FulltextLanguage,
		OnDiagnostic: func(err error) {
			var unknown *converter.UnknownTopLevelLineError
			if errors.As(err, &unknown) && !cfg.Verbose {
				return
			}
			log.Printf("Warning: %v\n", err)
		},
	}

	// Progress shares stdout only when stdout is not the data stream.
	var rep *progress.Reporter
	if cfg.Progress && !toStdout {
		rep = progress.New(converter.CountLines(inPath))
		rep.Start()
		opts.OnLine = func(s converter.Stats) {
			rep.Update(s.Lines, s.Tables, s.Inserts)
		}
	}

	stats, err := converter.ConvertFiles(inPath, outPath, opts)
	if rep != nil {
		rep.Stop()
	}
	if err != nil {
		return fmt.Errorf("conversion aborted, output is incomplete: %w", err)
	}

	if !toStdout {
		fmt.Println("\nConversion complete.")
		fmt.Printf("Tables: %d, Inserts: %d, Enum types: %d\n", stats.Tables, stats.Inserts, stats.Enums)
		fmt.Printf("Typecasts: %d, Foreign keys: %d, Sequences: %d, Full text keys: %d\n",
			stats.Casts, stats.ForeignKeys, stats.Sequences, stats.Fulltext)
		if stats.Diagnostics > 0 {
			fmt.Printf("Skipped lines: %d\n", stats.Diagnostics)
		}
	}
	return nil
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./db-converter.yaml)")
	RootCmd.Flags().BoolVar(&showProgress, "progress", true, "Show a progress bar when writing to a file")
	RootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also log ignored top-level lines")
	RootCmd.Flags().StringVar(&fulltextLanguage, "fulltext-language", converter.DefaultFulltextLanguage, "Text search configuration for full-text indexes")

	// Bind flags to viper
	viper.BindPFlag("convert.progress", RootCmd.Flags().Lookup("progress"))
	viper.BindPFlag("convert.verbose", RootCmd.Flags().Lookup("verbose"))
	viper.BindPFlag("convert.fulltext_language", RootCmd.Flags().Lookup("fulltext-language"))

	viper.SetDefault("convert.progress", true)
	viper.SetDefault("convert.fulltext_language", converter.DefaultFulltextLanguage)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("db-converter")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in. Logged to stderr: stdout may carry the script.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}
