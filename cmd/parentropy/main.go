// Command parentropy computes conditional-entropy statistics over a
// morphological paradigm table and writes the resulting matrix as
// tab-separated text.
//
// Usage:
//
//	parentropy --in paradigm.tsv --out result.tsv
//	parentropy --in paradigm.tsv --weights freq.tsv --freq-averages --out result.tsv
//
// The output file is only created after the full computation succeeds; any
// failure is reported with its error kind and file context, and the process
// exits non-zero without a partial output file.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SJAndersson/morphological-entropy/entropy"
	"github.com/SJAndersson/morphological-entropy/paradigm"
	"github.com/SJAndersson/morphological-entropy/tsv"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inPath       string
		weightsPath  string
		outPath      string
		aggregation  string
		freqAverages bool
		precision    int
	)

	cmd := &cobra.Command{
		Use:           "parentropy",
		Short:         "Conditional entropy of morphological paradigms (Ackerman & Malouf 2013)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.Must(zap.NewProduction())
			defer logger.Sync()

			err := run(inPath, weightsPath, outPath, aggregation, freqAverages, precision)
			if err != nil {
				logger.Error("computation failed",
					zap.String("input", inPath),
					zap.String("weights", weightsPath),
					zap.Error(err))
			}

			return err
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "paradigm table (TSV): header of cell names, one row per lexeme")
	cmd.Flags().StringVar(&weightsPath, "weights", "", "optional parallel weight table (TSV) of non-negative frequencies")
	cmd.Flags().StringVar(&outPath, "out", "", "output path for the conditional-entropy matrix (TSV)")
	cmd.Flags().StringVar(&aggregation, "aggregation", "token", "contingency aggregation unit: token or class")
	cmd.Flags().BoolVar(&freqAverages, "freq-averages", false, "weight the summary averages by per-cell total frequency (requires --weights)")
	cmd.Flags().IntVar(&precision, "precision", tsv.DefaultPrecision, "fractional digits in the output")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")

	return cmd
}

func run(inPath, weightsPath, outPath, aggregation string, freqAverages bool, precision int) error {
	opts := entropy.DefaultOptions()
	switch aggregation {
	case "token":
		opts.Aggregation = entropy.AggregateTokens
	case "class":
		opts.Aggregation = entropy.AggregateClasses
	default:
		return fmt.Errorf("unknown --aggregation %q (want token or class)", aggregation)
	}
	opts.FrequencyAverages = freqAverages

	table, err := readTable(inPath)
	if err != nil {
		return err
	}

	var weights *paradigm.Weights
	if weightsPath != "" {
		weights, err = readWeights(weightsPath)
		if err != nil {
			return err
		}
	}

	res, err := entropy.Compute(table, weights, opts)
	if err != nil {
		return err
	}

	// Render fully in memory so a failed run never leaves a partial file.
	var buf bytes.Buffer
	if err = tsv.WriteResult(&buf, res, tsv.WriterOptions{Precision: precision}); err != nil {
		return err
	}

	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}

func readTable(path string) (*paradigm.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := tsv.ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

func readWeights(path string) (*paradigm.Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w, err := tsv.ReadWeights(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return w, nil
}
