package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hh-scorer/internal/model"
)

const (
	PromptExit = "exit"
)

var errExit = errors.New("exit requested")

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Rank candidates and browse their assessments interactively",
	Run: func(cmd *cobra.Command, _ []string) {
		review(cmd)
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	addBatchFlags(reviewCmd)
}

func review(cmd *cobra.Command) {
	logger, config := setup()
	applyBatchFlags(cmd, config)

	result := runBatch(cmd, config, logger)
	if len(result.Ranking) == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates were ranked"))
		return
	}

	if m := result.Matrix; m != nil {
		logger.Info("batch summary",
			zap.Int("candidates", m.TotalCandidates),
			zap.Float64("average_score", m.AverageScore),
			zap.Float64("top_10_average", m.TopTenAverage),
			zap.Any("tiers", m.TierDistribution),
		)
	}

	byID := make(map[string]*model.AssessmentResult, len(result.Results))
	for _, r := range result.Results {
		byID[r.CandidateID] = r
	}

	for {
		err := reviewOne(cmd, result.Ranking, byID)
		if errors.Is(err, errExit) {
			return
		}
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func reviewOne(cmd *cobra.Command, ranked []model.RankedCandidate, byID map[string]*model.AssessmentResult) error {
	items := make([]string, 0, len(ranked)+1)
	for _, rc := range ranked {
		items = append(items, rankLabel(rc))
	}

	candidatePrompt := promptui.Select{
		Label: "Choose a candidate and press ENTER",
		Items: append(items, PromptExit),
		Size:  10,
	}

	idx, selected, err := candidatePrompt.Run()
	if err != nil {
		return err
	}
	if selected == PromptExit {
		return errExit
	}

	res, ok := byID[ranked[idx].CandidateID]
	if !ok {
		return fmt.Errorf("there is no assessment for candidate %s", ranked[idx].CandidateID)
	}

	return printJSON(cmd.OutOrStdout(), res)
}

func rankLabel(rc model.RankedCandidate) string {
	label := fmt.Sprintf("#%d %s / %s tier / %.1f / %s",
		rc.Rank, rc.CandidateID, rc.Tier, rc.CompositeScore, rc.InterviewPriority,
	)
	if len(rc.KeyConcerns) > 0 {
		label += " / " + strings.Join(rc.KeyConcerns, "; ")
	}
	return label
}
