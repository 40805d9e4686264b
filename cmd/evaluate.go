package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hh-scorer/internal/logger"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score one candidate against one job",
	Run: func(cmd *cobra.Command, _ []string) {
		evaluate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringP("candidate", "c", "", "candidate record (json or yaml)")
	evaluateCmd.Flags().StringP("job", "J", "", "job record (json or yaml)")
	evaluateCmd.MarkFlagRequired("candidate")
	evaluateCmd.MarkFlagRequired("job")
}

func evaluate(cmd *cobra.Command) {
	ctx := context.Background()
	logger, config := setup()

	candidate, err := loadRecord(cmd.Flag("candidate").Value.String())
	if err != nil {
		logger.Fatal("loading candidate", zap.Error(err))
	}

	job, err := loadRecord(cmd.Flag("job").Value.String())
	if err != nil {
		logger.Fatal("loading job", zap.Error(err))
	}

	svc, cleanup, err := newService(ctx, config, logger)
	if err != nil {
		logger.Fatal("building scoring engine", zap.Error(err))
	}
	defer cleanup()

	result := svc.Evaluate(ctx, candidate, job)
	if result.IsMock {
		logger.Warn("scoring engine returned a mock result", zap.Strings("fallbacks", result.Fallbacks))
	}

	if err := printJSON(cmd.OutOrStdout(), result); err != nil {
		logger.Fatal("printing result", zap.Error(err))
	}
}

// setup builds the logger and loads the config, exiting on failure.
func setup() (*zap.Logger, *Config) {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	l.Info("starting the hh-scorer", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	l.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return l, config
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
