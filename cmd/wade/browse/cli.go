package browse

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pgavlin/wade/load"
	"github.com/pgavlin/wade/wasm"
)

func Command() *cobra.Command {
	command := &cobra.Command{
		Use:   "browse [path to module]",
		Short: "Browse the sections of a WebAssembly module",
		Long:  "Browse a WebAssembly module's sections in an interactive terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("browse requires an interactive terminal")
			}

			f, err := load.LoadFile(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			mod, err := wasm.DecodeModule(f.Bytes)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newModel(args[0], mod), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	return command
}
