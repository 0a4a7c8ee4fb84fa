package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check expression",
	Short: "Check whether an expression is valid",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ok, reason := cfg.calculator().IsValid(args[0])
	if !ok {
		return errors.New(reason)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
