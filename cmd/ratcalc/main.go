package main

import (
	"fmt"
	"os"

	"github.com/amdwit/rational/config"
	"github.com/amdwit/rational/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	roundFlags := func(extra ...cli.Flag) []cli.Flag {
		return append([]cli.Flag{
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "the rounding mode: toZero, awayFromZero, floor, ceil, halfUp, halfDown or halfEven",
			},
		}, extra...)
	}

	app := cli.NewApp()
	app.Name = "ratcalc"
	app.Usage = "Exact rational arithmetic with controlled decimal rounding."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   -1,
			Usage:   "the log level, overrides the configuration when not negative",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "disable interning of rational numbers",
		},
	}
	app.Before = setupCmd
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:      "add",
			Usage:     "Add the operands",
			ArgsUsage: "X Y [Z...]",
			Action:    foldCmd(addOp),
		},
		{
			Name:      "sub",
			Usage:     "Subtract the remaining operands from the first one",
			ArgsUsage: "X Y [Z...]",
			Action:    foldCmd(subOp),
		},
		{
			Name:      "mul",
			Usage:     "Multiply the operands",
			ArgsUsage: "X Y [Z...]",
			Action:    foldCmd(mulOp),
		},
		{
			Name:      "div",
			Usage:     "Divide the first operand by the remaining ones",
			ArgsUsage: "X Y [Z...]",
			Action:    foldCmd(divOp),
		},
		{
			Name:      "cmp",
			Usage:     "Compare two operands and print -1, 0 or 1",
			ArgsUsage: "X Y",
			Action:    cmpCmd,
		},
		{
			Name:      "min",
			Usage:     "Print the smallest operand",
			ArgsUsage: "X [Y...]",
			Action:    aggregateCmd(minAgg),
		},
		{
			Name:      "max",
			Usage:     "Print the largest operand",
			ArgsUsage: "X [Y...]",
			Action:    aggregateCmd(maxAgg),
		},
		{
			Name:      "sum",
			Usage:     "Print the sum of the operands",
			ArgsUsage: "[X...]",
			Action:    aggregateCmd(sumAgg),
		},
		{
			Name:      "avg",
			Usage:     "Print the mean of the operands",
			ArgsUsage: "X [Y...]",
			Action:    aggregateCmd(avgAgg),
		},
		{
			Name:      "median",
			Usage:     "Print the median of the operands",
			ArgsUsage: "X [Y...]",
			Action:    aggregateCmd(medianAgg),
		},
		{
			Name:      "round",
			Usage:     "Round an operand to a number of decimal places",
			ArgsUsage: "X",
			Action:    roundCmd,
			Flags: roundFlags(&cli.IntFlag{
				Name:    "places",
				Aliases: []string{"p"},
				Usage:   "the number of decimal places, negative to round left of the point",
			}),
		},
		{
			Name:      "sig",
			Usage:     "Round an operand to a number of significant digits",
			ArgsUsage: "X",
			Action:    sigCmd,
			Flags: roundFlags(&cli.IntFlag{
				Name:    "digits",
				Aliases: []string{"d"},
				Usage:   "the number of significant digits",
			}),
		},
		{
			Name:      "snap",
			Usage:     "Round an operand to a multiple of a unit",
			ArgsUsage: "X",
			Action:    snapCmd,
			Flags: roundFlags(&cli.StringFlag{
				Name:     "unit",
				Aliases:  []string{"u"},
				Usage:    "the unit, e.g. 1/4",
				Required: true,
			}),
		},
		{
			Name:      "float",
			Usage:     "Print an approximation of an operand as a float",
			ArgsUsage: "X",
			Action:    floatCmd,
		},
		{
			Name:      "fraction",
			Usage:     "Print an operand in the canonical num/den form",
			ArgsUsage: "X",
			Action:    fractionCmd,
		},
	}
	return app
}

func setupCmd(c *cli.Context) error {
	custom := config.Default()
	if file := c.String("config"); file != "" {
		var err error
		custom, err = config.Initialize(file)
		if err != nil {
			return err
		}
	}
	if c.Bool("no-cache") {
		custom.Cache.Disabled = true
	}
	if l := c.Int("log"); l >= 0 {
		custom.Log.Level = l
	}
	if f := c.String("filter"); f != "" {
		custom.Log.Filter = f
	}
	err := custom.SetupLogger()
	if err != nil {
		return err
	}
	factory, err := custom.NewFactory()
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata["config"] = custom
	c.App.Metadata["factory"] = factory
	logger.Verbosef("ratcalc %s cache disabled %t", config.BuildVersion, custom.Cache.Disabled)
	return nil
}
