package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/abacus/internal/convert"
	abacuserrors "github.com/zhubert/abacus/internal/errors"
)

var convertList bool

var convertCmd = &cobra.Command{
	Use:   "convert CATEGORY FROM TO VALUE",
	Short: "Convert a value between units",
	Long: `Converts VALUE from one unit to another within a category and prints the
result to four decimal places:

  abacus convert length meters feet 2
  abacus convert temperature celsius fahrenheit 100

Use --list to print every category and its units.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if convertList {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(4)(cmd, args)
	},
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertList, "list", false, "List categories and their units")
	// Flags must come first so negative values like -40 stay positional.
	convertCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if convertList {
		for _, c := range convert.Categories() {
			fmt.Fprintf(out, "%s: %s\n", c, strings.Join(convert.Units(c), ", "))
		}
		return nil
	}

	category, err := convert.ParseCategory(args[0])
	if err != nil {
		return err
	}
	from, to := strings.ToLower(args[1]), strings.ToLower(args[2])
	for _, unit := range []string{from, to} {
		if !convert.HasUnit(category, unit) {
			return abacuserrors.UnknownUnit(string(category), unit)
		}
	}
	value, err := convert.ParseValue(args[3])
	if err != nil {
		return fmt.Errorf("%s: %q", convert.InvalidValueMessage, args[3])
	}

	req := convert.Request{Category: category, From: from, To: to, Value: value}
	result, err := convert.Convert(req)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, convert.Format(req, result))
	return nil
}
