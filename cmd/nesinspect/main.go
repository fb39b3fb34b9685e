// Command nesinspect assembles a hex-encoded test program and drives it
// through the interactive cpu.Inspector TUI. It is a thin wiring layer, not
// a shipped emulator front-end: ROM loading, the debugger REPL, and the
// graphics front-end remain external collaborators this module only
// exposes a library surface to.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"nesgo/cpu"
	"nesgo/mem"
)

func main() {
	program := flag.String("program", "", "hex bytes, space-separated (e.g. \"a9 01 8d 00 02\")")
	offset := flag.Uint("offset", 0x0600, "load address for the program")
	flag.Parse()

	if *program == "" {
		fmt.Fprintln(os.Stderr, "nesinspect: -program is required")
		flag.Usage()
		os.Exit(1)
	}

	bytes, err := parseHexProgram(*program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nesinspect: %v\n", err)
		os.Exit(1)
	}

	c := cpu.New(mem.NewCPUBus())
	if err := c.Debug(bytes, uint16(*offset)); err != nil {
		fmt.Fprintf(os.Stderr, "nesinspect: %v\n", err)
		os.Exit(1)
	}
}

func parseHexProgram(s string) ([]byte, error) {
	fields := strings.Fields(s)
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		b, err := hex.DecodeString(f)
		if err != nil || len(b) != 1 {
			return nil, fmt.Errorf("invalid byte %q", f)
		}
		out = append(out, b[0])
	}
	return out, nil
}
