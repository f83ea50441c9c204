package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scantools/aamvakit/cmd/aamvascan/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	debugMode := false
	demoMode := false

	for _, arg := range os.Args[1:] {
		switch arg {
		case "--debug", "-d":
			debugMode = true
		case "--demo":
			demoMode = true
		case "--help", "-h":
			printUsage()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("aamvascan %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		default:
			fmt.Fprintf(os.Stderr, "unknown flag: %s\n\n", arg)
			printUsage()
			os.Exit(1)
		}
	}

	if debugMode {
		if err := logger.Init("", slog.LevelDebug); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
		}
	}
	logger.Info("starting aamvascan", "debug", debugMode, "demo", demoMode)

	p := tea.NewProgram(NewModel(demoMode), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`aamvascan - live AAMVA barcode capture demo

Captures keystrokes the way a keyboard-wedge barcode scanner delivers them,
feeds each one to the incremental payload parser, and shows the parse state
as it evolves.

Usage:
  aamvascan [flags]

Flags:
  --demo       replay a sample license payload one character at a time
  --debug, -d  log to ~/.aamvascan/logs
  --version    print version information
  --help       show this help

Keys:
  any rune     feed the character to the parser
  enter        feed a newline (the usual data element separator)
  ctrl+r       feed a carriage return (the usual segment terminator)
  ctrl+e       feed the RS character (0x1E, the usual record separator)
  ctrl+l       abandon the capture and reset
  esc, ctrl+c  quit`)
}
