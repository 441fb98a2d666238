package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/randy-hsiao/freshservice-automation/internal/batch"
	"github.com/randy-hsiao/freshservice-automation/internal/config"
	"github.com/randy-hsiao/freshservice-automation/internal/freshservice"
	"github.com/randy-hsiao/freshservice-automation/internal/logging"
	"github.com/randy-hsiao/freshservice-automation/internal/metrics"
)

var (
	configPath  string
	csvOverride string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process the configured CSV ticket list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch()
	},
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "config.yaml", "Path to the run configuration file")
	runCmd.Flags().StringVar(&csvOverride, "csv", "", "Override the configured CSV file path")
}

// runBatch is the whole run. Only startup failures (config, logging) reach
// cobra's error path; everything after that is logged and the process
// exits 0 so partial results are never mistaken for a crash.
func runBatch() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logging.Setup(cfg.Logging.Directory)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Infof("starting ticket update run")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	csvPath := cfg.CSV.FilePath
	if csvOverride != "" {
		csvPath = csvOverride
	}

	ids, err := batch.LoadTicketIDs(csvPath)
	if err != nil {
		log.Errorf("failed to load ticket IDs: %v", err)
		return nil
	}

	client := freshservice.NewClient(
		cfg.API.BaseURL,
		cfg.Credentials.Username,
		cfg.Credentials.Password,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
	)
	pacer := batch.NewPacer(time.Duration(cfg.Run.DelaySeconds) * time.Second)
	runner := batch.NewRunner(client, log, pacer, cfg.Run.Strategy, cfg.Report.ErrorFile)

	run := metrics.NewRun()
	start := time.Now()
	result := runner.Process(ctx, ids)
	run.Record(result, time.Since(start))

	if cfg.Metrics.PushgatewayURL != "" {
		if err := run.Push(cfg.Metrics.PushgatewayURL); err != nil {
			log.Errorf("failed to push run metrics: %v", err)
		} else {
			log.Infof("run metrics pushed to %s (run_id %s)", cfg.Metrics.PushgatewayURL, run.ID)
		}
	}

	log.Infof("run finished, log file location: %s", log.Path())
	return nil
}
