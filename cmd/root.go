package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Haufan/annotator-analysis/config"
	"github.com/Haufan/annotator-analysis/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "annotator-analysis [directory]",
	Short: "Analyze RS3 discourse annotation files",
	Long: `Annotator Analysis scans a directory for RS3 discourse annotation
files and writes, next to each one, a text report containing the
discourse tree and a tally of rhetorical relations by position.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.InitLogging(); err != nil {
			return err
		}

		summary, err := pipeline.New(cfg).Run(args[0])
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"files":   summary.Files,
			"written": summary.Written,
			"failed":  summary.Failed,
		}).Info("Directory analysis complete")
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {}
