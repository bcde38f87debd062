package main

import (
	"fmt"
	"strconv"

	"github.com/amdwit/rational"
	"github.com/amdwit/rational/config"
	"github.com/amdwit/rational/logger"
	"github.com/urfave/cli/v2"
)

type binaryOp func(x, y rational.Rat) (rational.Rat, error)

func addOp(x, y rational.Rat) (rational.Rat, error) { return x.Add(y), nil }
func subOp(x, y rational.Rat) (rational.Rat, error) { return x.Sub(y), nil }
func mulOp(x, y rational.Rat) (rational.Rat, error) { return x.Mul(y), nil }
func divOp(x, y rational.Rat) (rational.Rat, error) { return x.Quo(y) }

type aggregate func(xs []rational.Rat) (rational.Rat, error)

func minAgg(xs []rational.Rat) (rational.Rat, error) { return rational.Min(xs[0], xs[1:]...), nil }
func maxAgg(xs []rational.Rat) (rational.Rat, error) { return rational.Max(xs[0], xs[1:]...), nil }
func sumAgg(xs []rational.Rat) (rational.Rat, error) { return rational.Sum(xs...), nil }
func avgAgg(xs []rational.Rat) (rational.Rat, error) { return rational.Avg(xs...) }

func medianAgg(xs []rational.Rat) (rational.Rat, error) { return rational.Median(xs...) }

func factoryFrom(c *cli.Context) *rational.Factory {
	if f, ok := c.App.Metadata["factory"].(*rational.Factory); ok {
		return f
	}
	return rational.NewFactory(nil)
}

func configFrom(c *cli.Context) *config.Custom {
	if custom, ok := c.App.Metadata["config"].(*config.Custom); ok {
		return custom
	}
	return config.Default()
}

func parseOperands(c *cli.Context, least, most int) ([]rational.Rat, error) {
	args := c.Args().Slice()
	if len(args) < least || (most > 0 && len(args) > most) {
		return nil, fmt.Errorf("%s: got %d operand(s), usage: %s %s", c.Command.Name, len(args), c.Command.Name, c.Command.ArgsUsage)
	}
	factory := factoryFrom(c)
	xs := make([]rational.Rat, len(args))
	for i, arg := range args {
		x, err := factory.Parse(arg)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}

func roundingMode(c *cli.Context) (rational.RoundingMode, error) {
	if name := c.String("mode"); name != "" {
		return rational.ParseRoundingMode(name)
	}
	return configFrom(c).RoundingMode()
}

func foldCmd(op binaryOp) cli.ActionFunc {
	return func(c *cli.Context) error {
		xs, err := parseOperands(c, 2, 0)
		if err != nil {
			return err
		}
		z := xs[0]
		for _, y := range xs[1:] {
			z, err = op(z, y)
			if err != nil {
				return err
			}
		}
		return printResult(c, z)
	}
}

func aggregateCmd(agg aggregate) cli.ActionFunc {
	return func(c *cli.Context) error {
		least := 1
		if c.Command.Name == "sum" {
			least = 0
		}
		xs, err := parseOperands(c, least, 0)
		if err != nil {
			return err
		}
		z, err := agg(xs)
		if err != nil {
			return err
		}
		return printResult(c, z)
	}
}

func cmpCmd(c *cli.Context) error {
	xs, err := parseOperands(c, 2, 2)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, xs[0].Cmp(xs[1]))
	return nil
}

func roundCmd(c *cli.Context) error {
	xs, err := parseOperands(c, 1, 1)
	if err != nil {
		return err
	}
	mode, err := roundingMode(c)
	if err != nil {
		return err
	}
	places := configFrom(c).Round.Places
	if c.IsSet("places") {
		places = c.Int("places")
	}
	d := xs[0].RoundToDecimal(places, mode)
	if places > 0 {
		fmt.Fprintln(c.App.Writer, d.StringFixed(int32(places)))
	} else {
		fmt.Fprintln(c.App.Writer, d.String())
	}
	return nil
}

func sigCmd(c *cli.Context) error {
	xs, err := parseOperands(c, 1, 1)
	if err != nil {
		return err
	}
	mode, err := roundingMode(c)
	if err != nil {
		return err
	}
	digits := configFrom(c).Round.Significants
	if c.IsSet("digits") {
		digits = c.Int("digits")
	}
	d, err := xs[0].RoundToSignificants(digits, mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, d.String())
	return nil
}

func snapCmd(c *cli.Context) error {
	xs, err := parseOperands(c, 1, 1)
	if err != nil {
		return err
	}
	mode, err := roundingMode(c)
	if err != nil {
		return err
	}
	unit, err := factoryFrom(c).Parse(c.String("unit"))
	if err != nil {
		return err
	}
	z, err := xs[0].RoundToRat(unit, mode)
	if err != nil {
		return err
	}
	return printResult(c, z)
}

func floatCmd(c *cli.Context) error {
	xs, err := parseOperands(c, 1, 1)
	if err != nil {
		return err
	}
	f, ok := xs[0].Float64()
	if !ok {
		return fmt.Errorf("%v does not fit into a float64", xs[0])
	}
	fmt.Fprintln(c.App.Writer, strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}

func fractionCmd(c *cli.Context) error {
	xs, err := parseOperands(c, 1, 1)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, xs[0].Fraction())
	return nil
}

func printResult(c *cli.Context, z rational.Rat) error {
	if cache := factoryFrom(c).Cache(); cache != nil {
		stats := cache.Stats()
		logger.Debugf("ratcalc cache entries %d hits %d misses %d", cache.Len(), stats.Hits, stats.Misses)
	}
	_, err := fmt.Fprintln(c.App.Writer, z)
	return err
}
