package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rpncalc/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] input output",
	Short: "Evaluate a file of expressions",
	Long: `Batch evaluates each line of the input file and writes one result per line
to the output file. Blank lines are preserved.`,
	Args: cobra.ExactArgs(2),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntP("workers", "j", 0, "number of lines to evaluate concurrently (default GOMAXPROCS)")
	batchCmd.Flags().Bool("quiet", false, "do not report progress")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupColor(cmd, os.Stderr); err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	log, err := cfg.logger()
	if err != nil {
		return err
	}
	defer log.Sync()

	p := batch.Processor{
		Calc:    cfg.calculator(),
		Workers: cfg.Workers,
		Log:     log,
	}
	var progress batch.Progress
	if !quiet {
		progress = func(percent int) {
			fmt.Fprintf(os.Stderr, "\rprogress: %3d%%", percent)
		}
	}
	res, err := p.Process(cmd.Context(), args[0], args[1], progress)
	if progress != nil {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return err
	}
	if !res.Success {
		return errors.New(res.Message)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}
