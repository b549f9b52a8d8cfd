// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

// newCommand builds the ls8 command line, reading programs from stdin when
// no file is named and writing PRN output to stdout.
func newCommand(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var verbose bool
	var isa string
	var memory int
	var interval time.Duration

	rootCmd := &cobra.Command{
		Use:   "ls8",
		Short: f("LS-8 virtual machine"),
	}

	runCmd := &cobra.Command{
		Use:   "run [program-file]",
		Short: f("Run a machine code program"),
		Long: f(`Run a machine code program.

The program is one 8-bit binary literal per line, loaded from address 0.
Text after '#' is a comment. With no program-file, the program is read
from standard input.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cmd.SilenceUsage = true

			enc, err := cpu.EncodingByName(isa)
			if err != nil {
				return
			}

			name := "-"
			in := stdin
			if len(args) == 1 {
				name = args[0]
				var inf *os.File
				inf, err = os.Open(name)
				if err != nil {
					return
				}
				defer inf.Close()
				in = inf
			} else if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
				cmd.PrintErrln(f("ls8: reading program from standard input, end with Ctrl-D"))
			}

			defer func() {
				if err != nil {
					err = fmt.Errorf("%v: %w", name, err)
				}
			}()

			prog, err := cpu.ParseProgram(in)
			if err != nil {
				return
			}

			emu := emulator.NewEmulator(memory)
			emu.Verbose = verbose
			emu.Interval = interval
			emu.Program = prog
			emu.Cpu.Encoding = enc
			emu.Cpu.Output = stdout

			err = emu.Reset()
			if err != nil {
				return
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			err = emu.Run(ctx)
			if verbose {
				log.Printf("cpu:\n%v", emu.Cpu.String())
			}
			return
		},
	}
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, f("Verbose mode"))
	runCmd.Flags().StringVar(&isa, "isa", cpu.EncodingV2.Name, f("Instruction encoding (canonical, v2)"))
	runCmd.Flags().IntVar(&memory, "memory", cpu.MEMORY_SIZE, f("Memory size in bytes"))
	runCmd.Flags().DurationVar(&interval, "interval", 0, f("Delay between cycles (0 = no delay)"))

	rootCmd.AddCommand(runCmd)
	return rootCmd
}

func main() {
	cmd := newCommand(os.Stdin, os.Stdout)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
