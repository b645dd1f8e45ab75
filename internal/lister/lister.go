// Package lister decodes a flat binary image and prints the resulting
// instruction listing.
package lister

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/avrlift/internal/avr"
	"github.com/retroenv/avrlift/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile decodes the input file and writes the listing to writer.
func ProcessFile(ctx context.Context, logger *log.Logger, writer io.Writer, opts options.Program) error {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading file '%s': %w", opts.Input, err)
	}

	registry := avr.NewRegistry(logger)
	decoder := avr.NewDecoder(logger, registry, options.NewDecoder(opts))
	logger.Debug("Decoding image",
		log.String("model", decoder.Model().Name),
		log.Int("size", len(data)))

	var instructions, invalid int
	for offset := 0; offset+1 < len(data); {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("decoding aborted: %w", err)
		}

		addr := opts.Address + uint64(offset)
		ins, desc := decoder.Decode(addr, data[offset:])
		if desc == nil {
			invalid++
		} else {
			instructions++
		}

		end := offset + ins.Size
		if end > len(data) { // truncated trailing instruction
			end = len(data)
		}
		if err := printInstruction(writer, ins, desc, data[offset:end]); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
		if opts.Debug {
			spew.Fdump(writer, ins)
		}

		offset += ins.Size
	}

	logger.Info("Decoding finished",
		log.Int("instructions", instructions),
		log.Int("invalid", invalid))
	return nil
}

// printInstruction writes one listing line: address, raw bytes, mnemonic
// and the semantic expression.
func printInstruction(writer io.Writer, ins *avr.Instruction, desc *avr.Descriptor, raw []byte) error {
	var sb strings.Builder
	for _, b := range raw {
		fmt.Fprintf(&sb, "%02x ", b)
	}

	name := "invalid"
	if desc != nil {
		name = desc.Name
	}

	_, err := fmt.Fprintf(writer, "%08x  %-12s %-8s %s\n", ins.Address, sb.String(), name, ins.Esil)
	return err
}

// PrintBanner prints application version information.
func PrintBanner(opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	fmt.Println("[----------------------------------]")
	fmt.Println("[ avrlift - AVR semantic decoder   ]")
	fmt.Printf("[----------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}
