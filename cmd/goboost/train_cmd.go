package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arborly/goboost/boost"
	"github.com/arborly/goboost/gbtree"
	"github.com/arborly/goboost/modelstore"
	"github.com/arborly/goboost/objective"
)

type trainCmdConfig struct {
	*rootCmdConfig
	dataPath     string
	format       string
	table        string
	featureCols  string
	labelColumn  string
	objectiveTag string
	rounds       int
	maxDepth     int
	minChildW    float64
	learningRate float64
	subsample    float64
	regLambda    float64
	gamma        float64
	numFeature   int
	seed         int64
	outPath      string
}

func trainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &trainCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a gradient-boosted regression tree ensemble",
		Run: func(cmd *cobra.Command, args []string) {
			config.configureLogging()
			if err := config.run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVarP(&config.dataPath, "data", "i", "", "path to training data (CSV path, SQLite file, or PostgreSQL URL)")
	cmd.Flags().StringVar(&config.format, "format", "csv", "data format: csv, sqlite, or postgres")
	cmd.Flags().StringVar(&config.table, "table", "samples", "table name (sqlite/postgres only)")
	cmd.Flags().StringVar(&config.featureCols, "features", "", "comma-separated feature column names (sqlite/postgres only)")
	cmd.Flags().StringVarP(&config.labelColumn, "label", "l", "label", "label column name (csv) or column (sql)")
	cmd.Flags().StringVar(&config.objectiveTag, "objective", "squared", "loss objective: squared, logistic, or poisson")
	cmd.Flags().IntVar(&config.rounds, "rounds", 50, "number of boosting rounds")
	cmd.Flags().IntVar(&config.maxDepth, "max-depth", 6, "maximum tree depth")
	cmd.Flags().Float64Var(&config.minChildW, "min-child-weight", 1, "minimum hessian sum per child")
	cmd.Flags().Float64Var(&config.learningRate, "learning-rate", 0.3, "shrinkage applied to each tree's leaf values")
	cmd.Flags().Float64Var(&config.subsample, "subsample", 1, "per-row subsample probability")
	cmd.Flags().Float64Var(&config.regLambda, "reg-lambda", 1, "L2 regularization on leaf weight")
	cmd.Flags().Float64Var(&config.gamma, "gamma", 0, "minimum gain required to keep a split")
	cmd.Flags().IntVar(&config.numFeature, "num-feature", 0, "number of feature columns (0: infer from data)")
	cmd.Flags().Int64Var(&config.seed, "seed", 1, "subsample RNG seed")
	cmd.Flags().StringVarP(&config.outPath, "out", "o", "model.json", "path to write the trained model as JSON")
	return cmd
}

func (c *trainCmdConfig) run() error {
	var featureCols []string
	if c.featureCols != "" {
		featureCols = strings.Split(c.featureCols, ",")
	}
	src, err := openSource(c.format, c.dataPath, c.labelColumn, c.table, featureCols)
	if err != nil {
		return err
	}
	matrix, labels, err := src.Load()
	if err != nil {
		return fmt.Errorf("loading training data: %v", err)
	}

	numFeature := c.numFeature
	if numFeature == 0 {
		numFeature = matrix.NumCols()
	}
	obj, err := objectiveFromTag(c.objectiveTag)
	if err != nil {
		return err
	}

	cfg := boost.Config{
		Tree: gbtree.Params{
			MaxDepth:       c.maxDepth,
			MinChildWeight: c.minChildW,
			LearningRate:   c.learningRate,
			Subsample:      c.subsample,
			NumFeature:     numFeature,
			NumRoots:       1,
			RegLambda:      c.regLambda,
			Gamma:          c.gamma,
		},
		NumRounds: c.rounds,
		Objective: obj,
		Rand:      rand.New(rand.NewSource(c.seed)),
	}

	ens, err := boost.New(cfg, matrix.NumRows())
	if err != nil {
		return fmt.Errorf("configuring ensemble: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"rows": matrix.NumRows(), "features": numFeature, "rounds": c.rounds,
	}).Info("training started")
	if _, err := ens.Run(matrix, labels); err != nil {
		return fmt.Errorf("training: %v", err)
	}

	out, err := os.Create(c.outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %v", err)
	}
	defer out.Close()
	if err := (modelstore.JSONCodec{}).Encode(out, ens); err != nil {
		return fmt.Errorf("writing model: %v", err)
	}
	logrus.WithField("path", c.outPath).Info("model written")
	return nil
}

func objectiveFromTag(tag string) (objective.Objective, error) {
	switch strings.ToLower(tag) {
	case "squared":
		return objective.Squared{}, nil
	case "logistic":
		return objective.LogLoss{}, nil
	case "poisson":
		return objective.Poisson{}, nil
	}
	return nil, fmt.Errorf("unknown objective %q", tag)
}
