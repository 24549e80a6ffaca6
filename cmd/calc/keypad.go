package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/calc/internal/keypad"
)

func newKeypadCmd(a *app) *cobra.Command {
	var logPath string
	cmd := &cobra.Command{
		Use:   "keypad",
		Short: "Run an interactive calculator keypad",
		Long: `Runs a calculator in the terminal. Type digits and operators (* or x for ×,
/ for ÷), enter or = to calculate, c or esc to clear, and q to quit.

The keypad takes over the terminal, so it logs only to the file given by --log.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zap.NewNop()
			if logPath != "" {
				lvl, _ := a.cfg.Level()
				l, err := newLogger(lvl, nil, logPath)
				if err != nil {
					return err
				}
				defer l.Sync()
				log = l
			}
			p := tea.NewProgram(
				keypad.NewModel(log),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}
	cmd.Flags().StringVar(&logPath, "log", "", "log file")
	return cmd
}
