package macros

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/spf13/cobra"

	"github.com/pgavlin/wade/load"
	"github.com/pgavlin/wade/wasm/procmacro"
)

func Command() *cobra.Command {
	var csvOutput bool

	command := &cobra.Command{
		Use:   "macros [path to module]",
		Short: "List the proc macros declared by a module",
		Long:  "List the proc-macro declarations embedded in a Rust proc-macro module",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}
			f, err := load.LoadFile(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			decls, err := procmacro.Extract(f.Bytes)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(os.Stdout)
			defer w.Flush()

			if csvOutput {
				return dumpCSV(w, decls)
			}
			return printDecls(w, decls)
		},
	}

	command.PersistentFlags().BoolVar(&csvOutput, "csv", false, "emit declarations in CSV format")

	return command
}

func printDecls(w io.Writer, decls []procmacro.Decl) error {
	if len(decls) == 0 {
		_, err := fmt.Fprintln(w, "no proc-macro declarations")
		return err
	}
	for _, d := range decls {
		if _, err := fmt.Fprintf(w, "%v %s: %s", d.Kind, d.Name, d.Func); err != nil {
			return err
		}
		if len(d.Attributes) != 0 {
			if _, err := fmt.Fprintf(w, " (attributes: %s)", strings.Join(d.Attributes, ", ")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func dumpCSV(w io.Writer, decls []procmacro.Decl) error {
	type row struct {
		Kind       string `csv:"kind"`
		Name       string `csv:"name"`
		Func       string `csv:"func"`
		Attributes string `csv:"attributes"`
	}

	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	encoder := csvutil.NewEncoder(csvWriter)
	for _, d := range decls {
		r := row{
			Kind:       d.Kind.String(),
			Name:       d.Name,
			Func:       d.Func,
			Attributes: strings.Join(d.Attributes, ","),
		}
		if err := encoder.Encode(&r); err != nil {
			return err
		}
	}
	return nil
}
