package main

import (
	"fmt"

	"github.com/sgostarter/libpumpcalc/udf"
	"github.com/spf13/cobra"
)

var funcsCmd = &cobra.Command{
	Use:   "funcs",
	Short: "List the callable functions",
	Args:  cobra.NoArgs,
	RunE:  runFuncs,
}

func runFuncs(cmd *cobra.Command, _ []string) error {
	registry := udf.NewBuiltinRegistry()

	for _, name := range registry.Names() {
		f, _ := registry.Lookup(name)
		fmt.Fprintln(cmd.OutOrStdout(), f.Usage)
	}

	return nil
}
