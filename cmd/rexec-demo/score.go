package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var modelURI string

// scoreTemplate loads a registry model inside the remote R session and
// scores a handful of built-in wine-quality rows. The tracking URI and
// token are injected so the in-session mlflow client can authenticate
// against the same workspace.
const scoreTemplate = `library(mlflow)

# Some test rows from the wine quality dataset
column_names <- c("fixed.acidity", "volatile.acidity", "citric.acid", "residual.sugar", "chlorides", "free.sulfur.dioxide", "total.sulfur.dioxide", "density", "pH", "sulphates", "alcohol")
data_matrix <- matrix(data =  c(7.4,0.7,0,1.9,0.076,11,34,0.9978,3.51,0.56,9.4,
                                7.8,0.88,0,2.6,0.098,25,67,0.9968,3.2,0.68,9.8,
                                7.8,0.76,0.04,2.3,0.092,15,54,0.997,3.26,0.65,9.8,
                                11.2,0.28,0.56,1.9,0.075,17,60,0.998,3.16,0.58,9.8,
                                7.4,0.7,0,1.9,0.076,11,34,0.9978,3.51,0.56,9.4),
                                nrow = 5, ncol = length(column_names))
colnames(data_matrix) <- column_names
df <- as.data.frame(data_matrix)

Sys.setenv(MLFLOW_TRACKING_URI = "%s", MLFLOW_TRACKING_TOKEN = "%s")

best_model <- mlflow_load_model(model_uri = "%s")

predictions <- data.frame(mlflow_predict(best_model, data = df))
toString(predictions[[1]])
`

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score sample data against a registry model",
	Long: `score runs the model-scoring demonstration: it loads the model named
by --model-uri inside a remote R session and scores a built-in sample
of wine quality rows. Without --model-uri the demonstration is skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if modelURI == "" {
			pterm.Info.Println("model URI not specified, skipping the model scoring demonstration")
			return nil
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		token, err := resolveToken()
		if err != nil {
			return err
		}

		source := fmt.Sprintf(scoreTemplate, workspaceURL, token, modelURI)
		_, err = runInContext(cmd.Context(), client, source)
		return err
	},
}

func init() {
	scoreCmd.Flags().StringVar(&modelURI, "model-uri", "", "registry model URI, e.g. models:/wine-quality/3")
}
