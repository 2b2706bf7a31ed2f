package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nflorant/diagnosis/internal/model"
	"github.com/nflorant/diagnosis/internal/predict"
)

var symptomsCmd = &cobra.Command{
	Use:   "symptoms",
	Short: "List every symptom the trained model understands",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("artifacts")

		arts, err := model.LoadArtifacts(dir)
		if err != nil {
			return err
		}
		svc, err := predict.NewService(arts, 1)
		if err != nil {
			return err
		}

		for _, s := range svc.Symptoms() {
			fmt.Println(s)
		}
		return nil
	},
}

func init() {
	symptomsCmd.Flags().String("artifacts", "artifacts", "Artifact directory")
}
