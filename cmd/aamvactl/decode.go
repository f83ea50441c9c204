package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/scantools/aamvakit/aamva"
	"github.com/scantools/aamvakit/aamva/printer"
	"github.com/scantools/aamvakit/pkg/types"
)

var (
	decodeChunk  int
	decodeRawIDs bool
)

func init() {
	cmd := newDecodeCmd()
	cmd.Flags().IntVar(&decodeChunk, "chunk", 0,
		"Feed the payload this many characters at a time (0 = one shot)")
	cmd.Flags().BoolVar(&decodeRawIDs, "raw-ids", false, "Show raw element IDs without display names")
	rootCmd.AddCommand(cmd)
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file|->",
		Short: "Decode a full AAMVA payload",
		Long: `The decode command parses a complete payload from a file (or stdin
when the argument is "-") and prints the header, subfile directory, and
records.

Example:
  aamvactl decode capture.txt
  aamvactl decode capture.txt --json
  cat capture.txt | aamvactl decode -
  aamvactl decode capture.txt --chunk 1   # exercise incremental parsing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0])
		},
	}
	return cmd
}

func runDecode(path string) error {
	result, err := parsePayloadFile(path)
	if err != nil {
		return err
	}
	if quiet {
		return nil
	}

	opts := printer.DefaultOptions()
	opts.ShowElementNames = !decodeRawIDs
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(os.Stdout, opts).PrintResult(result)
}

// parsePayloadFile reads and parses a payload. The raw bytes are fed to the
// parser untouched so declared subfile offsets stay byte-accurate; Latin-1
// display decoding happens in the printer.
func parsePayloadFile(path string) (types.ParseResult, error) {
	raw, err := readPayload(path)
	if err != nil {
		return types.ParseResult{}, err
	}
	payload := string(raw)

	printVerbose("Read %d characters\n", len(payload))

	var result types.ParseResult
	if decodeChunk > 0 {
		result, err = parseChunked(payload, decodeChunk)
	} else {
		result, err = aamva.Parse(payload)
	}
	if err != nil {
		if errors.Is(err, types.ErrIncomplete) {
			return types.ParseResult{}, fmt.Errorf("payload is truncated: %w", err)
		}
		return types.ParseResult{}, fmt.Errorf("failed to decode payload: %w", err)
	}
	return result, nil
}

// parseChunked replays the payload through Append in fixed-size chunks, the
// way a keyboard-wedge scanner would deliver it.
func parseChunked(payload string, n int) (types.ParseResult, error) {
	p := aamva.New("")
	for i := 0; i < len(payload); i += n {
		end := i + n
		if end > len(payload) {
			end = len(payload)
		}
		if !p.Append(payload[i:end]) {
			break
		}
	}
	if err := p.Err(); err != nil {
		return types.ParseResult{}, err
	}
	result, ok := p.Result()
	if !ok {
		return types.ParseResult{}, types.ErrIncomplete
	}
	return result, nil
}

func readPayload(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
