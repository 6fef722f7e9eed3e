package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/dataclassic/dataclassic/ndarray"
)

type shapeConfig struct {
	*cli.Command
}

// ShapeCommand returns the shape subcommand.
func ShapeCommand() *cli.Command {
	cfg := &shapeConfig{}
	return cli.NewCommandAt(&cfg.Command, "shape").
		WithSynopsis("shape <file> - print shape and ndim").
		WithRun(cfg.run)
}

func (cfg *shapeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.exec(cc.In, cc.Out, args)
}

func (cfg *shapeConfig) exec(in io.Reader, out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: shape requires one argument, a file", cli.ErrUsage)
	}
	a, err := loadArray(args[0], in)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "shape=%v ndim=%d\n", a.Shape(), a.NDim())
	return nil
}

type showConfig struct {
	*cli.Command
	Color bool `cli:"name=color desc='force colored output'"`
	YAML  bool `cli:"name=y aliases=yaml desc='output yaml'"`
}

// ShowCommand returns the show subcommand.
func ShowCommand() *cli.Command {
	cfg := &showConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "show").
		WithSynopsis("show <file> - print the array").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *showConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.exec(cc.In, cc.Out, args)
}

func (cfg *showConfig) exec(in io.Reader, out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show requires one argument, a file", cli.ErrUsage)
	}
	a, err := loadArray(args[0], in)
	if err != nil {
		return err
	}
	return renderArray(displayConfig{Color: cfg.Color, YAML: cfg.YAML}, out, a)
}

type getConfig struct {
	*cli.Command
	Color bool `cli:"name=color desc='force colored output'"`
	YAML  bool `cli:"name=y aliases=yaml desc='output yaml'"`
}

// GetCommand returns the get subcommand.
func GetCommand() *cli.Command {
	cfg := &getConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "get").
		WithSynopsis("get <file> <index> - print the selected elements").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *getConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.exec(cc.In, cc.Out, args)
}

func (cfg *getConfig) exec(in io.Reader, out io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires two arguments, a file and an index like 1:3,1", cli.ErrUsage)
	}
	idx, err := ndarray.ParseIndices(args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	a, err := loadArray(args[0], in)
	if err != nil {
		return err
	}
	sel, err := a.Get(idx...)
	if err != nil {
		return err
	}
	return renderSelection(displayConfig{Color: cfg.Color, YAML: cfg.YAML}, out, sel)
}

type reduceConfig struct {
	*cli.Command
	Op    string `cli:"name=op desc='one of sum, mean, var, std, min, max'"`
	Axis  int    `cli:"name=axis desc='axis to reduce; negative reduces the flattened array'"`
	DDOF  int    `cli:"name=ddof desc='degrees of freedom for var and std'"`
	Color bool   `cli:"name=color desc='force colored output'"`
	YAML  bool   `cli:"name=y aliases=yaml desc='output yaml'"`
}

func newReduceConfig() *reduceConfig {
	return &reduceConfig{Op: "sum", Axis: -1, DDOF: 1}
}

// ReduceCommand returns the reduce subcommand.
func ReduceCommand() *cli.Command {
	cfg := newReduceConfig()
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "reduce").
		WithSynopsis("reduce <file> -op sum [-axis 0] [-ddof 1] - reduce the array").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *reduceConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.exec(cc.In, cc.Out, args)
}

func (cfg *reduceConfig) exec(in io.Reader, out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: reduce requires one argument, a file", cli.ErrUsage)
	}
	op, err := ndarray.ParseReduction(cfg.Op)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	a, err := loadArray(args[0], in)
	if err != nil {
		return err
	}
	ropts := []ndarray.ReduceOption{ndarray.WithDDOF(cfg.DDOF)}
	if cfg.Axis >= 0 {
		ropts = append(ropts, ndarray.WithAxis(cfg.Axis))
	}
	sel, err := a.Reduce(op, ropts...)
	if err != nil {
		return err
	}
	return renderSelection(displayConfig{Color: cfg.Color, YAML: cfg.YAML}, out, sel)
}

type transposeConfig struct {
	*cli.Command
	Color bool `cli:"name=color desc='force colored output'"`
	YAML  bool `cli:"name=y aliases=yaml desc='output yaml'"`
}

// TransposeCommand returns the transpose subcommand.
func TransposeCommand() *cli.Command {
	cfg := &transposeConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "transpose").
		WithSynopsis("transpose <file> - print the transposed array").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *transposeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.exec(cc.In, cc.Out, args)
}

func (cfg *transposeConfig) exec(in io.Reader, out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: transpose requires one argument, a file", cli.ErrUsage)
	}
	a, err := loadArray(args[0], in)
	if err != nil {
		return err
	}
	return renderArray(displayConfig{Color: cfg.Color, YAML: cfg.YAML}, out, a.Transpose())
}

type reshapeConfig struct {
	*cli.Command
	Shape string `cli:"name=shape desc='comma separated dimensions, e.g. 3,2'"`
	Fill  string `cli:"name=fill desc='value for positions beyond the input'"`
	Color bool   `cli:"name=color desc='force colored output'"`
	YAML  bool   `cli:"name=y aliases=yaml desc='output yaml'"`
}

func newReshapeConfig() *reshapeConfig {
	return &reshapeConfig{Fill: "0"}
}

// ReshapeCommand returns the reshape subcommand.
func ReshapeCommand() *cli.Command {
	cfg := newReshapeConfig()
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "reshape").
		WithSynopsis("reshape <file> -shape 3,2 [-fill 0] - print the reshaped array").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *reshapeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.exec(cc.In, cc.Out, args)
}

func (cfg *reshapeConfig) exec(in io.Reader, out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: reshape requires one argument, a file", cli.ErrUsage)
	}
	shape, err := parseShape(cfg.Shape)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	a, err := loadArray(args[0], in)
	if err != nil {
		return err
	}
	reshaped, err := a.Reshape(shape, parseFill(cfg.Fill))
	if err != nil {
		return err
	}
	return renderArray(displayConfig{Color: cfg.Color, YAML: cfg.YAML}, out, reshaped)
}

func parseShape(s string) (ndarray.Shape, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("-shape is required")
	}
	parts := strings.Split(s, ",")
	shape := make(ndarray.Shape, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q", p)
		}
		shape[i] = n
	}
	return shape, nil
}

// parseFill reads numbers and booleans as such and anything else as a string.
func parseFill(s string) any {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
