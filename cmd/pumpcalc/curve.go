package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgostarter/libpumpcalc/curve"
	"github.com/sgostarter/libpumpcalc/interp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	importName  string
	importSheet string
	importXCol  string
	importYCol  string
	importSkip  int
	importKind  string
	importXUnit string
	importYUnit string
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Manage stored curves",
}

var curveImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import an X/Y table from .xlsx or .csv",
	Args:  cobra.ExactArgs(1),
	RunE:  runCurveImport,
}

var curveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored curves",
	Args:  cobra.NoArgs,
	RunE:  runCurveList,
}

var curveShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a stored curve as yaml",
	Args:  cobra.ExactArgs(1),
	RunE:  runCurveShow,
}

var curveRmCmd = &cobra.Command{
	Use:   "rm NAME",
	Short: "Remove a stored curve",
	Args:  cobra.ExactArgs(1),
	RunE:  runCurveRm,
}

func init() {
	flags := curveImportCmd.Flags()
	flags.StringVarP(&importName, "name", "n", "", "curve name, defaults to the file name")
	flags.StringVar(&importSheet, "sheet", "", "worksheet, defaults to the first one")
	flags.StringVar(&importXCol, "x", "A", "x column, letter or 1-based number")
	flags.StringVar(&importYCol, "y", "B", "y column, letter or 1-based number")
	flags.IntVar(&importSkip, "skip", 0, "rows to skip before the table")
	flags.StringVar(&importKind, "kind", "", "spline kind stored with the curve")
	flags.StringVar(&importXUnit, "x-unit", "", "x unit label")
	flags.StringVar(&importYUnit, "y-unit", "", "y unit label")

	curveCmd.AddCommand(curveImportCmd, curveListCmd, curveShowCmd, curveRmCmd)
}

func readPoints(file string) ([]interp.Point, error) {
	xCol, err := curve.ColumnIndex(importXCol)
	if err != nil {
		return nil, err
	}

	yCol, err := curve.ColumnIndex(importYCol)
	if err != nil {
		return nil, err
	}

	opts := []curve.Option{curve.WithSkipRows(importSkip), curve.WithSheet(importSheet)}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".xlsx", ".xlsm":
		return curve.ImportXLSX(file, xCol, yCol, opts...)
	case ".csv", ".txt":
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}

		defer func() {
			_ = f.Close()
		}()

		return curve.ImportCSV(f, xCol, yCol, opts...)
	}

	return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(file))
}

func runCurveImport(cmd *cobra.Command, args []string) error {
	points, err := readPoints(args[0])
	if err != nil {
		return err
	}

	name := importName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	c, err := lib.Put(&curve.Curve{
		Name:   name,
		XUnit:  importXUnit,
		YUnit:  importYUnit,
		Kind:   importKind,
		Points: points,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d points, id %d\n", c.Name, len(c.Points), c.ID)

	return nil
}

func runCurveList(cmd *cobra.Command, _ []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	names, err := lib.Names()
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}

	return nil
}

func runCurveShow(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	c, err := lib.Get(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	d, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(d))

	return nil
}

func runCurveRm(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	if err = lib.Remove(args[0]); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "removed", args[0])

	return nil
}
