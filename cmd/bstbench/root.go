package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/e11jah/bst/internal/bench"
	"github.com/e11jah/bst/internal/words"
)

var errWordSource = errors.New("exactly one of --words and --asset is required")

type options struct {
	wordsPath string
	asset     string
	verbose   bool
	cfg       bench.Config
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	def := bench.DefaultConfig()
	fs.StringVarP(&opts.wordsPath, "words", "w", "", "word list file, one word per line")
	fs.StringVarP(&opts.asset, "asset", "a", "", "bundled key set name, see --list-assets")
	fs.IntVarP(&opts.cfg.Sample, "sample", "n", def.Sample, "number of words loaded into every subject")
	fs.IntVarP(&opts.cfg.Queries, "queries", "q", def.Queries, "number of words searched")
	fs.Int64Var(&opts.cfg.Seed, "seed", def.Seed, "random seed for sampling")
	fs.StringSliceVarP(&opts.cfg.Subjects, "subjects", "s", def.Subjects, "subjects to measure")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log every measurement")
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	listAssets := false

	cmd := &cobra.Command{
		Use:   "bstbench",
		Short: "Time word searches on binary search trees built in different orders",
		Long: `bstbench loads a word list, builds a list, a tree from sorted words,
a tree from random words and a rebalanced tree (plus any library
containers asked for) and reports build and search times.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listAssets {
				for _, name := range words.Assets() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			if opts.verbose {
				bench.Log.SetLevel(logrus.DebugLevel)
			}
			bench.Log.SetOutput(cmd.ErrOrStderr())

			ws, err := loadWords(opts)
			if err != nil {
				return err
			}

			results, err := bench.Run(opts.cfg, ws)
			if err != nil {
				return err
			}
			return bench.WriteReport(cmd.OutOrStdout(), results)
		},
	}

	bindFlags(cmd.Flags(), opts)
	cmd.Flags().BoolVar(&listAssets, "list-assets", false, "print the bundled key set names and exit")
	return cmd
}

func loadWords(opts *options) ([]string, error) {
	var (
		ws  []string
		err error
	)
	switch {
	case opts.wordsPath != "" && opts.asset == "":
		ws, err = words.Load(opts.wordsPath)
	case opts.asset != "" && opts.wordsPath == "":
		ws, err = words.Asset(opts.asset)
	default:
		return nil, errWordSource
	}
	if err != nil {
		return nil, err
	}

	bench.Log.WithFields(logrus.Fields{
		"words": len(ws), "file": opts.wordsPath, "asset": opts.asset,
	}).Info("loaded word list")
	return ws, nil
}
