package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/rpncalc"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [expression...]",
	Short: "Evaluate expressions",
	Long: `Eval evaluates each argument as an expression. With no arguments, it reads
expressions from standard input, one per line.`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Bool("echo", false, "print the postfix form of each expression")
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupColor(cmd, os.Stdout); err != nil {
		return err
	}
	echo, err := cmd.Flags().GetBool("echo")
	if err != nil {
		return fmt.Errorf("failed to get echo flag: %w", err)
	}
	calc := cfg.calculator()
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		for _, arg := range args {
			printResult(out, calc, arg, echo)
		}
		return nil
	}

	in := cmd.InOrStdin()
	f, ok := in.(*os.File)
	interactive := ok && term.IsTerminal(int(f.Fd()))
	sc := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		printResult(out, calc, line, echo)
	}
	return sc.Err()
}

func printResult(w io.Writer, calc rpncalc.Calculator, src string, echo bool) {
	if echo {
		if rpn, err := calc.RPN(src); err == nil {
			fmt.Fprintf(w, "%s : ", rpn)
		}
	}
	r := calc.Calculate(src)
	if strings.HasPrefix(r, "Error - ") {
		errColor.Fprintln(w, r)
		return
	}
	fmt.Fprintln(w, r)
}
