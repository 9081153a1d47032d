package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"evolvex/internal/app"
)

var (
	seedLiteral string
	inPath      string
	outPath     string
	verbose     bool

	application *app.App
)

func Execute() error {
	log := logrus.New()

	root := &cobra.Command{
		Use:          "evolvex",
		Short:        "Fixed-pipeline authenticated encryption",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			application = app.New(app.Config{Logger: log})
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(encCmd(), decCmd(), inspectCmd())
	return root.Execute()
}

// addSeedIOFlags binds the flags shared by enc and dec.
func addSeedIOFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&seedLiteral, "key", "k", "", "seed literal (raw, or hex with 0x prefix)")
	cmd.Flags().StringVarP(&inPath, "in", "i", "", "input file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
}
