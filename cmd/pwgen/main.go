package main

import (
	"fmt"
	"os"

	"github.com/pwgen/pwgen-go/internal/cli"
	"github.com/pwgen/pwgen-go/internal/entropy"
	"github.com/pwgen/pwgen-go/internal/format"
	"github.com/pwgen/pwgen-go/internal/generator"
)

func main() {
	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if opts.Help {
		fmt.Print(cli.Usage())
		return
	}

	var src entropy.Source = entropy.NewDevice()
	if opts.SeedFile != "" {
		src, err = entropy.NewSeededFromFile(opts.SeedFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}

	passwords, err := generator.Generate(opts.Gen, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	format.Print(os.Stdout, passwords, opts.Columns)
}
