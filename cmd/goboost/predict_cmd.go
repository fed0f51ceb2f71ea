package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arborly/goboost/modelstore"
)

type predictCmdConfig struct {
	*rootCmdConfig
	modelPath   string
	dataPath    string
	format      string
	table       string
	featureCols string
	labelColumn string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score data with a trained model",
		Run: func(cmd *cobra.Command, args []string) {
			config.configureLogging()
			if err := config.run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVarP(&config.modelPath, "model", "m", "model.json", "path to a model written by train")
	cmd.Flags().StringVarP(&config.dataPath, "data", "i", "", "path to scoring data (CSV path, SQLite file, or PostgreSQL URL)")
	cmd.Flags().StringVar(&config.format, "format", "csv", "data format: csv, sqlite, or postgres")
	cmd.Flags().StringVar(&config.table, "table", "samples", "table name (sqlite/postgres only)")
	cmd.Flags().StringVar(&config.featureCols, "features", "", "comma-separated feature column names (sqlite/postgres only)")
	cmd.Flags().StringVarP(&config.labelColumn, "label", "l", "label", "label column present in the data but ignored for prediction")
	return cmd
}

func (c *predictCmdConfig) run() error {
	var featureCols []string
	if c.featureCols != "" {
		featureCols = strings.Split(c.featureCols, ",")
	}
	src, err := openSource(c.format, c.dataPath, c.labelColumn, c.table, featureCols)
	if err != nil {
		return err
	}
	matrix, _, err := src.Load()
	if err != nil {
		return fmt.Errorf("loading scoring data: %v", err)
	}

	f, err := os.Open(c.modelPath)
	if err != nil {
		return fmt.Errorf("opening model: %v", err)
	}
	defer f.Close()
	ens, err := (modelstore.JSONCodec{}).Decode(f, matrix.NumRows())
	if err != nil {
		return fmt.Errorf("decoding model: %v", err)
	}

	for i := 0; i < matrix.NumRows(); i++ {
		fmt.Println(ens.Predict(matrix, uint32(i), 0))
	}
	return nil
}
