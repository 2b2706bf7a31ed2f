package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nflorant/diagnosis/internal/train"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the classifier and write serving artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := train.DefaultConfig()
		cfg.DatasetPath, _ = cmd.Flags().GetString("data")
		cfg.SeverityPath, _ = cmd.Flags().GetString("severity")
		cfg.OutDir, _ = cmd.Flags().GetString("out")
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
		cfg.Fit.Epochs, _ = cmd.Flags().GetInt("epochs")
		cfg.Fit.LearningRate, _ = cmd.Flags().GetFloat64("rate")

		report, err := train.Run(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("trained %d classes over %d features (%d train rows, %d holdout rows)\n",
			report.Classes, report.Features, report.TrainRows, report.TestRows)
		fmt.Printf("holdout accuracy: %.2f%%\n", report.Accuracy*100)
		fmt.Printf("artifacts written to %s\n", cfg.OutDir)
		return nil
	},
}

func init() {
	trainCmd.Flags().String("data", "data/dataset.csv", "Training dataset CSV")
	trainCmd.Flags().String("severity", "data/Symptom-severity.csv", "Symptom severity CSV")
	trainCmd.Flags().String("out", "artifacts", "Output directory for trained artifacts")
	trainCmd.Flags().Int64("seed", 42, "Shuffle seed for the holdout split")
	trainCmd.Flags().Int("epochs", 300, "Gradient descent epochs")
	trainCmd.Flags().Float64("rate", 0.5, "Learning rate")
}
