// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/asm51/asm"
)

// outputName derives the output file name from the source file name.
func outputName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "-out.txt"
}

type options struct {
	verbose bool
	origin  string
	scripts []string
	listing bool
	output  string
}

func newCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "asm51 FILE",
		Short: "Two pass assembler for an 8051 instruction subset",
		Long: `Asm51 assembles FILE into a byte stream written as space separated
hex pairs to FILE-out.txt in the current directory.

Labels may be used before they are defined. The ORG directive inserts
zero padding; by default its operand is the size of the gap, with
--org=absolute it is the target address.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
	flags.StringVar(&opts.origin, "org", asm.ORIGIN_GAP.String(), "ORG operand interpretation: gap or absolute")
	flags.StringArrayVarP(&opts.scripts, "isa", "i", nil, "Starlark instruction set extension script")
	flags.BoolVarP(&opts.listing, "listing", "l", false, "Print a listing to stdout")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file (default FILE-out.txt)")

	return cmd
}

func run(opts *options, input string) (err error) {
	origin, err := asm.ParseOriginMode(opts.origin)
	if err != nil {
		return
	}

	table := asm.DefaultTable()
	for _, script := range opts.scripts {
		err = table.LoadScript(script, nil)
		if err != nil {
			return
		}
	}

	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	assembler := &asm.Assembler{
		Verbose: opts.verbose,
		Origin:  origin,
		Table:   table,
	}
	prog, err := assembler.Parse(inf)
	if err != nil {
		return
	}

	// Nothing is written unless the whole source assembled.
	var out bytes.Buffer
	err = prog.WriteHex(&out)
	if err != nil {
		return
	}

	output := opts.output
	if len(output) == 0 {
		output = outputName(input)
	}
	err = os.WriteFile(output, out.Bytes(), 0o644)
	if err != nil {
		return
	}

	if opts.listing {
		err = prog.WriteListing(os.Stdout)
	}

	return
}

func main() {
	cmd := newCommand()
	cmd.SilenceErrors = true

	err := cmd.Execute()
	if err != nil {
		log.Fatalf("%v: %v", cmd.Name(), err)
	}
}
