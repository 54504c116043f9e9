// Package cmd is for command line interactions with the conjoin application
package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbosity int
	quietness int
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "conjoin",
	Short: `Stitch assembled contigs into one sequence against a reference.
Contigs are tiled along the reference with MUMmer and gaps are filled
with the reference sequence`,
	Version: "0.2.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setLogLevel()
	},
}

// setLogLevel translates the -v/-q counts into a logrus level.
// Warnings and up by default, each -v adds a level, each -q removes one.
func setLogLevel() {
	levels := []log.Level{
		log.ErrorLevel,
		log.WarnLevel,
		log.InfoLevel,
		log.DebugLevel,
		log.TraceLevel,
	}

	l := 1 + verbosity - quietness
	if l < 0 {
		l = 0
	}
	if l >= len(levels) {
		l = len(levels) - 1
	}
	log.SetLevel(levels[l])
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (repeatable)")
	rootCmd.PersistentFlags().CountVarP(&quietness, "quiet", "q", "decrease verbosity (repeatable)")
}
