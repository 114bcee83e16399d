package sections

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/pgavlin/wade/load"
	"github.com/pgavlin/wade/wasm"
)

func Command() *cobra.Command {
	var preview int
	var dump []string
	var stats bool

	command := &cobra.Command{
		Use:   "sections [path to module]",
		Short: "List the sections of a WebAssembly module",
		Long:  "List a WebAssembly module's sections, with name and content detail for custom sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}
			f, err := load.LoadFile(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			s, err := wasm.NewScanner(f.Bytes)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(os.Stdout)
			defer w.Flush()

			if stats {
				return dumpStats(w, s)
			}

			dumpNames := make(map[string]bool, len(dump))
			for _, name := range dump {
				dumpNames[name] = true
			}
			return printSections(w, s, preview, dumpNames)
		},
	}

	command.PersistentFlags().IntVarP(&preview, "preview", "p", 100, "the number of content bytes to preview for each custom section")
	command.PersistentFlags().StringArrayVarP(&dump, "dump", "d", []string{wasm.CustomSectionProcMacroDecls}, "dump the full content of custom sections with this name")
	command.PersistentFlags().BoolVarP(&stats, "stats", "s", false, "dump section statistics in CSV format")

	return command
}

// printSections reports the version and one record per section. Records
// written before a malformed section stand; the scan's error is returned
// after them, and the done trailer is only written for a clean scan.
func printSections(w io.Writer, s *wasm.Scanner, preview int, dump map[string]bool) error {
	if _, err := fmt.Fprintf(w, "version: %d\n", s.Version()); err != nil {
		return err
	}

	count, total := 0, int64(0)
	for s.Next() {
		if err := printSection(w, s.Section(), preview, dump); err != nil {
			return err
		}
		raw := s.Section().GetRawSection()
		count, total = count+1, total+raw.End-raw.Start
	}
	if err := s.Error(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "done: %d sections, %d payload bytes\n", count, total)
	return err
}

func printSection(w io.Writer, section wasm.Section, preview int, dump map[string]bool) error {
	raw := section.GetRawSection()
	if _, err := fmt.Fprintf(w, "section %v (id %d): %d bytes\n", raw.ID, uint8(raw.ID), raw.End-raw.Start); err != nil {
		return err
	}

	custom, ok := section.(*wasm.SectionCustom)
	if !ok {
		return nil
	}

	if _, err := fmt.Fprintf(w, "    name: %q\n", custom.Name); err != nil {
		return err
	}
	content := custom.Preview(preview)
	if _, err := fmt.Fprintf(w, "    content (first %d bytes): %q\n", len(content), content); err != nil {
		return err
	}
	if dump[custom.Name] {
		if _, err := fmt.Fprintf(w, "    full content: %s\n", lossyText(custom.Data)); err != nil {
			return err
		}
	}
	return nil
}

func lossyText(b []byte) string {
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
