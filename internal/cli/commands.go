package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govalues/bigdecimal"
	"github.com/govalues/bigdecimal/internal/calc"
)

// binaryOp computes the printed result of an operation on two decimals.
type binaryOp func(d, e bigdecimal.Decimal, scale int) (string, error)

func decimalResult(f bigdecimal.Decimal, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return f.String(), nil
}

func cmpResult(r int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.Itoa(r), nil
}

func addOp(d, e bigdecimal.Decimal, _ int) (string, error) { return decimalResult(d.Add(e)) }
func addAbsOp(d, e bigdecimal.Decimal, _ int) (string, error) { return decimalResult(d.AddAbs(e)) }
func subOp(d, e bigdecimal.Decimal, _ int) (string, error) { return decimalResult(d.Sub(e)) }
func subAbsOp(d, e bigdecimal.Decimal, _ int) (string, error) { return decimalResult(d.SubAbs(e)) }
func mulOp(d, e bigdecimal.Decimal, _ int) (string, error) { return decimalResult(d.Mul(e)) }
func mulAbsOp(d, e bigdecimal.Decimal, _ int) (string, error) { return decimalResult(d.MulAbs(e)) }
func cmpOp(d, e bigdecimal.Decimal, _ int) (string, error) { return cmpResult(d.Cmp(e)) }
func cmpAbsOp(d, e bigdecimal.Decimal, _ int) (string, error) { return cmpResult(d.CmpAbs(e)) }

func quoOp(d, e bigdecimal.Decimal, scale int) (string, error) {
	return decimalResult(d.QuoScale(e, scale))
}

func quoAbsOp(d, e bigdecimal.Decimal, scale int) (string, error) {
	return decimalResult(d.QuoAbs(e, scale))
}

func parseOperand(s string) (bigdecimal.Decimal, error) {
	d, err := bigdecimal.Parse(s)
	if err != nil {
		return d, errors.Wrapf(err, "parsing operand %q", s)
	}
	return d, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing integer %q", s)
	}
	return n, nil
}

func (a *app) print(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}

func (a *app) newBinaryCmd(name, short string, signed, abs binaryOp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " X Y",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			useAbs, err := cmd.Flags().GetBool(absFlagName)
			if err != nil {
				return err
			}
			d, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			e, err := parseOperand(args[1])
			if err != nil {
				return err
			}

			op := signed
			if useAbs {
				op = abs
			}
			a.log.Debug("evaluating",
				zap.String("op", name),
				zap.Bool("abs", useAbs),
				zap.Stringer("x", d),
				zap.Stringer("y", e),
				zap.Int("scale", a.cfg.Scale),
			)
			res, err := op(d, e, a.cfg.Scale)
			if err != nil {
				return errors.Wrapf(err, "computing %v(%v, %v)", name, d, e)
			}
			a.print(cmd, res)
			return nil
		},
	}
	cmd.Flags().Bool(absFlagName, false, "Operate on the absolute values of the operands")
	return cmd
}

func (a *app) newShiftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shift X N",
		Short: "Multiply a decimal by 10^N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			n, err := parseInt(args[1])
			if err != nil {
				return err
			}
			a.log.Debug("shifting", zap.Stringer("x", d), zap.Int("n", n))
			a.print(cmd, d.Shift(n).String())
			return nil
		},
	}
}

func (a *app) newTruncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trunc X N",
		Short: "Truncate a decimal to N digits after the decimal point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			n, err := parseInt(args[1])
			if err != nil {
				return err
			}
			a.log.Debug("truncating", zap.Stringer("x", d), zap.Int("scale", n))
			f, err := d.Trunc(n)
			if err != nil {
				return errors.Wrapf(err, "truncating %v", d)
			}
			a.print(cmd, f.Show())
			return nil
		},
	}
}

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show X",
		Short: "Print a decimal as written and in normalized form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			a.print(cmd, d.Show())
			a.print(cmd, d.String())
			return nil
		},
	}
}

func (a *app) newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate an expression in Polish notation, such as \"* 10 + 1.23 4.56\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			a.log.Debug("evaluating expression", zap.String("expr", expr), zap.Int("scale", a.cfg.Scale))
			d, err := calc.Evaluate(expr, a.cfg.Scale)
			if err != nil {
				return errors.Wrapf(err, "evaluating %q", expr)
			}
			a.print(cmd, d.String())
			return nil
		},
	}
}
