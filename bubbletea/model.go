package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/teachpy"
	"github.com/fwojciec/teachpy/goldmark"
)

var _ tea.Model = Model{}

const sidebarWidth = 28

// Model is the Bubble Tea model for the TeachPy TUI.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable chat transcript. Exported for test access.
	Viewport viewport.Model

	app     *teachpy.App
	theme   teachpy.Theme
	styles  Styles
	spinner spinner.Model

	view     teachpy.View
	selected int // highlighted sidebar entry

	pending bool // a model round trip is in flight
	err     error
	ready   bool
	width   int
	height  int
}

// New creates a new TUI Model over the given command surface.
func New(app *teachpy.App, theme teachpy.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "What would you like to learn today?"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 0

	styles := NewStyles(theme)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Muted

	return Model{
		Input:   ti,
		app:     app,
		theme:   theme,
		styles:  styles,
		spinner: sp,
	}
}

// Err returns the last surfaced error, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, refresh(m.app))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ViewMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m = m.applyView(msg.View)
		return m, nil

	case ReplyMsg:
		m.pending = false
		m.Input.Focus()
		if msg.Err != nil {
			// The user turn was already rolled back; re-sync the view so
			// the transcript matches the store.
			m.err = msg.Err
			return m, refresh(m.app)
		}
		m = m.applyView(msg.View)
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	if !m.pending {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyCtrlN:
		if m.pending {
			return m, nil
		}
		m.err = nil
		return m, newSession(m.app)

	case tea.KeyCtrlD:
		if m.pending || len(m.view.Sessions) == 0 {
			return m, nil
		}
		m.err = nil
		return m, deleteSession(m.app, m.view.Sessions[m.selected].ID)

	case tea.KeyUp:
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case tea.KeyDown:
		if m.selected < len(m.view.Sessions)-1 {
			m.selected++
		}
		return m, nil

	case tea.KeyEnter:
		if m.pending {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			// Empty input: switch to the highlighted session.
			if len(m.view.Sessions) == 0 {
				return m, nil
			}
			target := m.view.Sessions[m.selected].ID
			if target == m.view.CurrentID {
				return m, nil
			}
			m.err = nil
			return m, selectSession(m.app, target)
		}
		return m.submitInput(text)
	}

	if !m.pending {
		var cmds []tea.Cmd
		var cmd tea.Cmd
		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.Input.Blur()
	m.err = nil
	m.pending = true

	// Echo the turn locally; the authoritative transcript arrives with the
	// reply view.
	m.view.Messages = append(m.view.Messages, teachpy.Message{Role: teachpy.RoleUser, Content: text})
	m.Viewport.SetContent(m.renderTranscript())
	m.Viewport.GotoBottom()

	return m, tea.Batch(submitMessage(m.app, text), m.spinner.Tick)
}

func (m Model) applyView(v teachpy.View) Model {
	m.view = v
	m.selected = 0
	for i, s := range v.Sessions {
		if s.ID == v.CurrentID {
			m.selected = i
			break
		}
	}
	if m.ready {
		m.Viewport.SetContent(m.renderTranscript())
		m.Viewport.GotoBottom()
	}
	return m
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	chatWidth := msg.Width - sidebarWidth - 2
	if chatWidth < 20 {
		chatWidth = 20
	}
	vpHeight := msg.Height - 4 // title, status, input, spacing
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(chatWidth, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = chatWidth
		m.Viewport.Height = vpHeight
	}
	m.Viewport.SetContent(m.renderTranscript())
	m.Viewport.GotoBottom()
	m.Input.Width = chatWidth - 4
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Connecting..."
	}

	chat := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Accent.Render("TeachPy — Your Personal Python Tutor"),
		m.Viewport.View(),
		m.statusLine(),
		m.Input.View(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), chat)
}

func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(m.styles.Accent.Render("Chat History"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("ctrl+n new · ctrl+d delete"))
	b.WriteString("\n\n")

	for i, s := range m.view.Sessions {
		title := truncate(s.Title, sidebarWidth-4)
		line := "  " + title
		if i == m.selected {
			line = "▸ " + title
		}
		switch {
		case s.ID == m.view.CurrentID:
			line = m.styles.Accent.Render(line)
		case i == m.selected:
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return m.styles.Sidebar.Width(sidebarWidth).Height(m.height - 1).Render(b.String())
}

func (m Model) renderTranscript() string {
	width := m.Viewport.Width
	if width <= 0 {
		width = 80
	}
	var parts []string
	for _, msg := range m.view.Messages {
		switch msg.Role {
		case teachpy.RoleUser:
			prefix := m.styles.UserMsg.Render("You")
			body := lipgloss.NewStyle().Width(width).Render(msg.Content)
			parts = append(parts, prefix+"\n"+body)
		case teachpy.RoleAssistant:
			prefix := m.styles.Accent.Render("TeachPy")
			parts = append(parts, prefix+"\n"+goldmark.Render(msg.Content, width, m.theme))
		}
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render("error: " + m.err.Error())
	}
	if m.pending {
		return m.spinner.View() + m.styles.Muted.Render(" TeachPy is thinking...")
	}
	return m.styles.Muted.Render("enter to send · empty enter switches session · ctrl+c quits")
}
