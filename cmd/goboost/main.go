package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goboost",
		Short: "goboost trains and serves gradient-boosted regression trees",
		Long:  `A tool to grow gradient-boosted regression trees from your data and use them to make predictions.`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&config.verbose, "verbose", "v", false, "log each boosting round")
	rootCmd.AddCommand(versionCmd(), trainCmd(config), predictCmd(config))
	return rootCmd
}

func (c *rootCmdConfig) configureLogging() {
	if c.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}
