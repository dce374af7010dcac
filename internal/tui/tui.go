// Package tui is the terminal front end of the demo: the same session
// store the HTTP API drives, rendered as a bubbletea program. Every
// mutation goes through the store; the model keeps only view concerns
// such as cursors, cached grids, and the rendered about page.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vyakarana-tools/rupavali"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// Run owns the terminal until the user quits. restore, when non-empty,
// is a share string from an earlier session and is replayed onto the
// fresh store before the first frame. script sets the initial display
// script; the w key cycles it from there.
func Run(app *rupavali.App, restore string, script vyakarana.Scheme) error {
	p := tea.NewProgram(newModel(app, restore, script), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
