package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/dataclassic/dataclassic/ndarray"
)

// displayConfig holds output options shared by every subcommand.
type displayConfig struct {
	Color bool
	YAML  bool
}

func colorEnabled(force bool, w io.Writer) bool {
	if force {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// cellColors returns a cell formatter that highlights NaN, booleans and strings.
func cellColors(enabled bool) func(ndarray.Value) string {
	if !enabled {
		return ndarray.Value.String
	}
	nan := color.New(color.FgRed, color.Bold)
	boolean := color.New(color.FgCyan)
	str := color.RGB(8, 196, 16)
	for _, c := range []*color.Color{nan, boolean, str} {
		c.EnableColor()
	}
	return func(v ndarray.Value) string {
		switch v.Kind() {
		case ndarray.KindNaN:
			return nan.Sprint(v.String())
		case ndarray.KindBool:
			return boolean.Sprint(v.String())
		case ndarray.KindString:
			return str.Sprint(v.String())
		default:
			return v.String()
		}
	}
}

func renderArray(cfg displayConfig, w io.Writer, a *ndarray.Array) error {
	if cfg.YAML {
		out, err := yaml.Marshal(a)
		if err != nil {
			return fmt.Errorf("error encoding: %w", err)
		}
		_, err = w.Write(out)
		return err
	}
	_, err := fmt.Fprintln(w, a.Format(cellColors(colorEnabled(cfg.Color, w))))
	return err
}

func renderSelection(cfg displayConfig, w io.Writer, s ndarray.Selection) error {
	if !s.IsScalar() {
		return renderArray(cfg, w, s.Array())
	}
	if cfg.YAML {
		out, err := yaml.Marshal(s.Interface())
		if err != nil {
			return fmt.Errorf("error encoding: %w", err)
		}
		_, err = w.Write(out)
		return err
	}
	_, err := fmt.Fprintln(w, cellColors(colorEnabled(cfg.Color, w))(s.Scalar()))
	return err
}
