package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hh-scorer/internal/model"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the scoring engine and embedding backend are usable",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := context.Background()
		logger, config := setup()

		svc, cleanup, err := newService(ctx, config, logger)
		if err != nil {
			logger.Fatal("building scoring engine", zap.Error(err))
		}
		defer cleanup()

		h := svc.Health(ctx)
		if err := printJSON(cmd.OutOrStdout(), h); err != nil {
			logger.Fatal("printing health", zap.Error(err))
		}
		if h.Status == model.HealthUnavailable {
			logger.Fatal("scoring engine unavailable", zap.Strings("issues", h.Issues))
		}
	},
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List hard rejection rules and whether they are enabled",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := context.Background()
		logger, config := setup()

		svc, cleanup, err := newService(ctx, config, logger)
		if err != nil {
			logger.Fatal("building scoring engine", zap.Error(err))
		}
		defer cleanup()

		out := cmd.OutOrStdout()
		for _, st := range svc.Rules() {
			state := "enabled"
			if !st.Enabled {
				state = "disabled: " + st.Reason
			}
			fmt.Fprintf(out, "%s %-22s %s\n", st.Code, st.Name, state)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(rulesCmd)
}
