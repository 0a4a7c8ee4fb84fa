package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "rpncalc",
	Short: "Arbitrary-precision calculator",
	Long: `rpncalc evaluates arithmetic expressions with + - * / ^, parentheses, and
unary signs over arbitrary-precision integers or decimals.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var errColor = color.New(color.FgRed, color.Bold)

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(batchCmd)

	rootCmd.PersistentFlags().String("config", "", "TOML configuration file (default rpncalc.toml if present)")
	rootCmd.PersistentFlags().String("mode", "integer", "numeric mode (integer|decimal)")
	rootCmd.PersistentFlags().Int32("digits", 0, "fractional digits kept by decimal division")
	rootCmd.PersistentFlags().Uint("pow-prec", 0, "bits of precision for fractional powers")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errColor.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// setupColor decides whether output is colorized according to the --color
// flag and whether f is a terminal.
func setupColor(cmd *cobra.Command, f *os.File) error {
	flag, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch flag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !term.IsTerminal(int(f.Fd()))
	default:
		return fmt.Errorf("unknown color mode %q", flag)
	}
	return nil
}
