package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/icvm/ic10/internal/ic"
	"github.com/icvm/ic10/internal/iclog"
)

func main() {
	optDevices := getopt.IntLong("devices", 'd', ic.DefaultDevices, "Number of device slots")
	optRegisters := getopt.IntLong("registers", 'r', ic.DefaultRegisters, "Number of general purpose registers")
	optStack := getopt.IntLong("stack", 's', ic.DefaultStackCap, "Stack capacity")
	optInstrPerTick := getopt.IntLong("instr-per-tick", 'i', ic.DefaultInstrPerTick, "Instructions executed per tick")
	optTicks := getopt.IntLong("ticks", 't', 1000, "Maximum number of ticks to run before giving up")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file (default: stderr only)")
	optVerbose := getopt.BoolLong("verbose", 'v', "Log each tick at debug level")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: ic10 [options] <program-file>")
		getopt.Usage()
		os.Exit(2)
	}

	var logOut *os.File
	if *optLogFile != "" {
		f, err := os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ic10: %v\n", err)
			os.Exit(1)
		}
		logOut = f
	} else {
		logOut = os.Stderr
	}
	level := slog.LevelInfo
	if *optVerbose {
		level = slog.LevelDebug
	}
	logger := iclog.NewLogger(logOut, level, *optVerbose)

	lines, err := readLines(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ic10: %v\n", err)
		os.Exit(1)
	}

	state := ic.NewICState(*optDevices, *optRegisters, *optStack, *optInstrPerTick)
	program := ic.NewProgram(state, lines)
	instructions := ic.NewStationeersInstructionSet()

	logger.Info("loaded program", "file", args[0], "lines", len(lines))

	runTicks(logger, state, program, instructions, *optTicks)

	if err := state.Dump(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ic10: %v\n", err)
		os.Exit(1)
	}
}

// runTicks drives the program to completion. The recover is a last-resort
// guard: every opcode and resolver already returns ordinary errors, and
// register/stack/device indices are bounds-checked before use, so this
// should never fire in normal operation.
func runTicks(logger *slog.Logger, state *ic.ICState, program *ic.Program, instructions *ic.InstructionSet, maxTicks int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "ic10: internal error: %v\n", r)
			_ = state.Dump(os.Stdout)
			os.Exit(1)
		}
	}()

	ticks := 0
	for program.Len() > state.NextLine && ticks < maxTicks {
		if err := ic.RunTick(state, program, instructions); err != nil {
			fmt.Fprintf(os.Stderr, "ic10: %v\n", err)
			_ = state.Dump(os.Stdout)
			os.Exit(1)
		}
		ticks++
		logger.Debug("tick complete", "tick", ticks, "next_line", state.NextLine, "instr_counter", state.InstrCounter)
		if state.Halt {
			break
		}
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
