package main

import (
	"fmt"

	"github.com/sgostarter/libpumpcalc/udf"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call NAME [ARG...]",
	Short: "Evaluate one function",
	Long: `Evaluate one function the way a spreadsheet cell would.

Ranges are written as comma separated lists, for example
  pumpcalc call INTERP 0,1,2,3 0,1,4,9 1.5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func runCall(cmd *cobra.Command, args []string) error {
	cellArgs := make([]any, 0, len(args)-1)
	for _, arg := range args[1:] {
		cellArgs = append(cellArgs, arg)
	}

	ctx, err := newCallContext()
	if err != nil {
		return err
	}

	res := udf.NewBuiltinRegistry().Call(ctx, args[0], cellArgs...)

	fmt.Fprintln(cmd.OutOrStdout(), res.String())

	if res.IsError() {
		return errCallFailed
	}

	return nil
}
