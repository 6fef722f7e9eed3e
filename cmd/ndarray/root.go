package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

const usageText = `ndarray - inspect and transform nested arrays stored as YAML or JSON

Usage:
  ndarray shape <file>                              Print shape and ndim
  ndarray show <file>                               Print the array
  ndarray get <file> <index>                        Print a[index], e.g. "1:3,1"
  ndarray reduce <file> -op sum [-axis 0] [-ddof 1] Reduce the array
  ndarray transpose <file>                          Print the transposed array
  ndarray reshape <file> -shape 3,2 [-fill 0]       Print the reshaped array
  ndarray version                                   Show version

Use "-" as the file to read standard input.`

// MainCommand returns the root command.
func MainCommand() *cli.Command {
	return cli.NewCommand("ndarray").
		WithSynopsis("ndarray - inspect and transform nested arrays").
		WithDescription(usageText).
		WithSubs(
			ShapeCommand(),
			ShowCommand(),
			GetCommand(),
			ReduceCommand(),
			TransposeCommand(),
			ReshapeCommand(),
			VersionCommand(),
		)
}

type versionConfig struct {
	*cli.Command
}

// VersionCommand returns the version subcommand.
func VersionCommand() *cli.Command {
	cfg := &versionConfig{}
	return cli.NewCommandAt(&cfg.Command, "version").
		WithSynopsis("version - show version").
		WithRun(cfg.run)
}

func (cfg *versionConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.exec(cc.Out, args)
}

func (cfg *versionConfig) exec(out io.Writer, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: version takes no arguments", cli.ErrUsage)
	}
	fmt.Fprintf(out, "ndarray %s\n", version)
	return nil
}
