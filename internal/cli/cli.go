// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/retroenv/avrlift/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	var address string
	readOptionFlags(flags, &opts, &address)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	opts.Input = args[0]

	opts.Address, err = strconv.ParseUint(address, 0, 64)
	if err != nil {
		return opts, fmt.Errorf("invalid base address '%s': %w", address, err)
	}

	return opts, nil
}

// readOptionFlags registers all command line flags.
func readOptionFlags(flags *flag.FlagSet, opts *options.Program, address *string) {
	flags.StringVar(&opts.Model, "m", "ATmega8", "CPU model to decode for")
	flags.StringVar(address, "a", "0", "base address of the image, hex supported")
	flags.BoolVar(&opts.BigEndian, "be", false, "treat instruction words as big-endian")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging and decode result dumps")
	flags.BoolVar(&opts.Quiet, "q", false, "quiet mode")
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage information.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: avrlift [options] <file to decode>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}
