package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/zenone/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	ctx.PerformAutomaticBackup()

	m := tui.NewModel(ctx.Store, ctx.Quotes)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
