package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nflorant/diagnosis/internal/model"
	"github.com/nflorant/diagnosis/internal/predict"
)

var predictCmd = &cobra.Command{
	Use:   "predict [symptom]...",
	Short: "Run a one-shot prediction from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("artifacts")
		topK, _ := cmd.Flags().GetInt("top")

		arts, err := model.LoadArtifacts(dir)
		if err != nil {
			return err
		}
		svc, err := predict.NewService(arts, topK)
		if err != nil {
			return err
		}

		result, err := svc.Predict(cmd.Context(), args)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	predictCmd.Flags().String("artifacts", "artifacts", "Artifact directory")
	predictCmd.Flags().Int("top", 5, "Number of ranked diseases to return")
}
