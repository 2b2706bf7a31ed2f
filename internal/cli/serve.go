package cli

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nflorant/diagnosis/internal/auditlog"
	"github.com/nflorant/diagnosis/internal/config"
	"github.com/nflorant/diagnosis/internal/model"
	"github.com/nflorant/diagnosis/internal/predict"
	"github.com/nflorant/diagnosis/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load trained artifacts and serve the prediction API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if dir, _ := cmd.Flags().GetString("artifacts"); dir != "" {
			cfg.ArtifactDir = dir
		}
		gin.SetMode(cfg.GinMode)

		// An unloadable artifact set is fatal: never bind the listener.
		arts, err := model.LoadArtifacts(cfg.ArtifactDir)
		if err != nil {
			return err
		}
		log.Printf("loaded model: %d classes, %d features",
			len(arts.Classifier.Classes()), arts.FeatureSpace.Len())

		svc, err := predict.NewService(arts, cfg.TopK)
		if err != nil {
			return err
		}

		var audit server.Recorder
		if cfg.EnableDB {
			store, err := auditlog.Connect(context.Background(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer store.Close()
			audit = store
		}

		return server.New(svc, audit).Run(cfg.Port)
	},
}

func init() {
	serveCmd.Flags().String("artifacts", "", "Artifact directory (overrides ARTIFACT_DIR)")
}
