// Package main provides the ndarray command line tool.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

const version = "v0.1.0"

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
