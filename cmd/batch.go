package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hh-scorer/internal/metrics"
	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/ranking"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score and rank many candidates against one job",
	Run: func(cmd *cobra.Command, _ []string) {
		batch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	addBatchFlags(batchCmd)
	batchCmd.Flags().String("metrics-file", "", "write prometheus metrics to this file after the run")
}

func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("job", "J", "", "job record (json or yaml)")
	cmd.Flags().StringP("candidates", "c", "", "candidates file or directory (json or yaml)")
	cmd.Flags().IntP("workers", "w", 0, "number of concurrent evaluations (default is the number of CPUs)")
	cmd.Flags().String("criterion", "", "ranking criterion (default overall_score)")
	cmd.MarkFlagRequired("job")
	cmd.MarkFlagRequired("candidates")
}

// applyBatchFlags lets explicitly set flags win over the config file.
func applyBatchFlags(cmd *cobra.Command, config *Config) {
	if f := cmd.Flags().Lookup("workers"); f != nil && f.Changed {
		config.Workers, _ = cmd.Flags().GetInt("workers")
	}
	if f := cmd.Flags().Lookup("criterion"); f != nil && f.Changed {
		config.Criterion = f.Value.String()
	}
	if f := cmd.Flags().Lookup("metrics-file"); f != nil && f.Changed {
		config.MetricsFile = f.Value.String()
	}
}

func batch(cmd *cobra.Command) {
	logger, config := setup()
	applyBatchFlags(cmd, config)

	result := runBatch(cmd, config, logger)

	if err := printJSON(cmd.OutOrStdout(), result); err != nil {
		logger.Fatal("printing result", zap.Error(err))
	}

	if config.MetricsFile != "" {
		if err := metrics.WriteFile(config.MetricsFile); err != nil {
			logger.Fatal("writing metrics", zap.Error(err))
		}
		logger.Info("metrics written", zap.String("filename", config.MetricsFile))
	}
}

// runBatch loads the records named by the command flags and evaluates them.
func runBatch(cmd *cobra.Command, config *Config, logger *zap.Logger) *model.BatchResult {
	ctx := context.Background()

	criterion, err := ranking.ParseCriterion(config.Criterion)
	if err != nil {
		logger.Fatal("parsing ranking criterion", zap.Error(err), zap.Any("supported", ranking.Criteria))
	}

	job, err := loadRecord(cmd.Flag("job").Value.String())
	if err != nil {
		logger.Fatal("loading job", zap.Error(err))
	}

	candidates, err := loadRecords(cmd.Flag("candidates").Value.String())
	if err != nil {
		logger.Fatal("loading candidates", zap.Error(err))
	}

	if len(candidates) == 0 {
		logger.Warn("no candidates found", zap.String("path", cmd.Flag("candidates").Value.String()))
	}

	svc, cleanup, err := newService(ctx, config, logger)
	if err != nil {
		logger.Fatal("building scoring engine", zap.Error(err))
	}
	defer cleanup()

	result := svc.EvaluateBatch(ctx, job, candidates, criterion)
	for _, e := range result.Errors {
		logger.Warn("candidate skipped", zap.String("candidate_id", e.CandidateID), zap.String("error", e.Error))
	}

	return result
}
