package main

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/supplylens/supplylens/internal/cache"
	"github.com/supplylens/supplylens/internal/config"
	"github.com/supplylens/supplylens/internal/forecast"
	"github.com/supplylens/supplylens/internal/leadtime"
	"github.com/supplylens/supplylens/internal/output"
	"github.com/supplylens/supplylens/internal/service"
	"github.com/supplylens/supplylens/internal/warehouse"
	"github.com/supplylens/supplylens/pkg/logger"
)

type dbKeyType struct{}

var dbKey = dbKeyType{}

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Warehouse connection string",
		Required: true,
		EnvVars:  []string{"WAREHOUSE_URL"},
	}
}

func initDB(c *cli.Context) error {
	db, err := warehouse.NewDBFromURL("pgx", c.String("db-url"))
	if err != nil {
		return err
	}
	c.Context = context.WithValue(c.Context, dbKey, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*warehouse.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func runForecast(c *cli.Context) error {
	db := c.Context.Value(dbKey).(*warehouse.DB)

	book, err := leadtime.Load(c.String("lookup-dir"))
	if err != nil {
		return fmt.Errorf("failed to load lookup tables: %w", err)
	}

	var store output.ObjectStorage
	if c.Bool("upload") {
		cfg := config.Load()
		client, err := output.NewMinioClient(c.Context, cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to object storage: %w", err)
		}
		store = client
	}

	svc := service.NewForecastService(
		warehouse.NewLoader(db), book, cache.NewNoopSummaryCache(), store, c.String("output-dir"))

	summary, err := svc.Run(c.Context)
	if err != nil {
		return err
	}

	fmt.Printf("entities: %d\nweeks: %d\ndemand coverage: %.2f%%\nstockouts: %d\n",
		summary.Entities, summary.Weeks, summary.DemandCoveragePct, summary.StockoutCount)
	return nil
}

func printCalendar(c *cli.Context) error {
	for _, week := range forecast.GenerateCalendar(time.Now().UTC()) {
		fmt.Println(week)
	}
	return nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logger.Log.Debug().Err(err).Msg("no .env file loaded")
	}

	app := &cli.App{
		Name:  "forecast",
		Usage: "Run the inventory availability forecast",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Extract the warehouse snapshot and run a full forecast",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:    "output-dir",
						Usage:   "Directory for the output CSV files",
						Value:   "./data/output",
						EnvVars: []string{"APP_OUTPUT_DIR"},
					},
					&cli.StringFlag{
						Name:    "lookup-dir",
						Usage:   "Directory containing the lead-time lookup tables",
						Value:   "./config",
						EnvVars: []string{"APP_LOOKUP_DIR"},
					},
					&cli.BoolFlag{
						Name:  "upload",
						Usage: "Publish the output files to object storage",
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: runForecast,
			},
			{
				Name:   "calendar",
				Usage:  "Print the simulation week list",
				Action: printCalendar,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("forecast command failed")
	}
}
