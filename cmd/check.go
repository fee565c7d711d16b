package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"db-converter/internal/dialect"
	"db-converter/internal/health"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dsn        string
	driverName string
	schemaName string
	gapFactor  float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a converted database (connection, time series gaps)",
}

var dbconnCmd = &cobra.Command{
	Use:   "dbconn",
	Short: "Check the database connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, d, err := openCheckDB()
		if err != nil {
			fmt.Printf("[ERROR] Database connection failed: %v\n", err)
			os.Exit(1)
		}
		err = health.New(db, d, "", 0).Ping()
		db.Close()
		if err != nil {
			fmt.Printf("[ERROR] Database connection failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("[INFO] Database connection: OK")
		return nil
	},
}

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Report gaps in time series and event tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, d, err := openCheckDB()
		if err != nil {
			return err
		}
		defer db.Close()

		checker := health.New(db, d, viper.GetString("check.schema"), viper.GetFloat64("check.gap_factor"))
		log.Println("Analyzing tables...")
		report, err := checker.Data()
		fmt.Print(report)
		return err
	},
}

// resolveCheckDB picks the database to inspect. The --dsn/--driver flags
// (check.dsn/check.driver) override the active configured database.
func resolveCheckDB() (DBConfig, error) {
	if flagDSN := viper.GetString("check.dsn"); flagDSN != "" {
		return DBConfig{
			Name:   "CLI Wrapper",
			Driver: viper.GetString("check.driver"),
			DSN:    flagDSN,
			Active: true,
		}, nil
	}
	activeConfig, err := GetActiveDBConfig()
	if err != nil {
		return DBConfig{}, fmt.Errorf("could not determine database: ensure config file exists or use --dsn and --driver flags (%v)", err)
	}
	return *activeConfig, nil
}

// openCheckDB connects to the database chosen by resolveCheckDB.
func openCheckDB() (*sql.DB, dialect.Dialect, error) {
	config, err := resolveCheckDB()
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(config.Driver, config.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	log.Printf("Connected to %s (%s)\n", config.Name, config.Driver)
	return db, dialect.GetDialect(config.Driver), nil
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.AddCommand(dbconnCmd, dataCmd)

	checkCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database Source Name (DSN)")
	checkCmd.PersistentFlags().StringVar(&driverName, "driver", "postgres", "database/sql driver: postgres, mysql, sqlserver, oracle")
	checkCmd.PersistentFlags().StringVar(&schemaName, "schema", "", "Schema to inspect (dialect default when empty)")
	dataCmd.Flags().Float64Var(&gapFactor, "gap-factor", health.DefaultGapFactor, "Gap threshold as a multiple of the typical interval")

	viper.BindPFlag("check.dsn", checkCmd.PersistentFlags().Lookup("dsn"))
	viper.BindPFlag("check.driver", checkCmd.PersistentFlags().Lookup("driver"))
	viper.BindPFlag("check.schema", checkCmd.PersistentFlags().Lookup("schema"))
	viper.BindPFlag("check.gap_factor", dataCmd.Flags().Lookup("gap-factor"))

	viper.SetDefault("check.driver", "postgres")
	viper.SetDefault("check.gap_factor", health.DefaultGapFactor)
}
