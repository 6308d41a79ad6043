package cmd

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/zhubert/abacus/internal/calc"
	abacuserrors "github.com/zhubert/abacus/internal/errors"
	"github.com/zhubert/abacus/internal/keys"
	"github.com/zhubert/abacus/internal/logger"
)

var evalNoHistory bool

var evalCmd = &cobra.Command{
	Use:   "eval EXPR...",
	Short: "Evaluate an expression and print the result",
	Long: `Evaluates an arithmetic expression with the calculator's rules and prints
the result. Arguments are joined, so quoting is optional:

  abacus eval 12 + 3 * 2
  abacus eval "7/2"

ASCII operators (+ - * /) are accepted, and x or X multiplies as it does in
the calculator. A failed evaluation prints Error and
exits non-zero. Successful results are added to history unless --no-history
is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().BoolVar(&evalNoHistory, "no-history", false, "Do not record the result in history")
	rootCmd.AddCommand(evalCmd)
}

// buildExpression feeds expr through the calculator's keyboard mapping and
// input rules. Unlike a paste in the TUI, any rejected character is an error
// here.
func buildExpression(expr string) (*calc.Calculator, error) {
	c := calc.New()
	for i, r := range expr {
		if unicode.IsSpace(r) {
			continue
		}
		action := keys.Resolve(string(r))
		if action.Kind != keys.ActionAppend || !c.Append(action.Token) {
			return nil, abacuserrors.SyntaxError(i, fmt.Sprintf("unexpected %q", r))
		}
	}
	return c, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	expr := strings.Join(args, " ")
	c, err := buildExpression(expr)
	if err != nil {
		return err
	}

	result, err := c.Evaluate()
	if errors.Is(err, calc.ErrIncomplete) {
		return fmt.Errorf("incomplete expression %q", c.Input())
	}
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), calc.ErrorMarker)
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.String())

	if evalNoHistory {
		return nil
	}

	_, store, slot, err := openHistory()
	if err != nil {
		return err
	}
	defer slot.Close()
	if _, err := store.Record(c.Input(), result); err != nil {
		return fmt.Errorf("result not saved to history: %w", err)
	}
	logger.Debug("eval recorded %q = %s", c.Input(), result.String())
	return nil
}
