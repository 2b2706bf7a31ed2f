package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "diagnosis",
	Short:         "Symptom-based disease prediction service",
	Long:          "Predicts likely diseases from reported symptoms and explains which symptoms drove each prediction.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(symptomsCmd)
}
