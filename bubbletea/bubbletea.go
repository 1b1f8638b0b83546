// Package bubbletea provides the Bubble Tea shell around the teachpy
// command surface. It issues one command at a time (new session, select
// session, delete session, submit message) and renders the returned view;
// all session invariants live behind [teachpy.App].
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/teachpy"
)

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits. The context is used for graceful shutdown — when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ViewMsg delivers the result of a non-submit command.
type ViewMsg struct {
	View teachpy.View
	Err  error
}

// ReplyMsg delivers the result of a submit-message command.
type ReplyMsg struct {
	View teachpy.View
	Err  error
}

func refresh(app *teachpy.App) tea.Cmd {
	return func() tea.Msg {
		v, err := app.Refresh(context.Background())
		return ViewMsg{View: v, Err: err}
	}
}

func newSession(app *teachpy.App) tea.Cmd {
	return func() tea.Msg {
		v, err := app.NewSession(context.Background())
		return ViewMsg{View: v, Err: err}
	}
}

func selectSession(app *teachpy.App, id string) tea.Cmd {
	return func() tea.Msg {
		v, err := app.SelectSession(context.Background(), id)
		return ViewMsg{View: v, Err: err}
	}
}

func deleteSession(app *teachpy.App, id string) tea.Cmd {
	return func() tea.Msg {
		v, err := app.DeleteSession(context.Background(), id)
		return ViewMsg{View: v, Err: err}
	}
}

// submitMessage blocks for the model round trip; no cancellation is
// supported — a send either completes or fails.
func submitMessage(app *teachpy.App, text string) tea.Cmd {
	return func() tea.Msg {
		v, err := app.SubmitMessage(context.Background(), text)
		return ReplyMsg{View: v, Err: err}
	}
}
