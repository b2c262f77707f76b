package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-canvas/internal/core"
	"github.com/vovakirdan/snake-canvas/internal/games/snake"
	"github.com/vovakirdan/snake-canvas/internal/render"
	"github.com/vovakirdan/snake-canvas/internal/session"
)

// Options configures a Model.
type Options struct {
	// Renderer styles output. Nil uses the default renderer, which suits
	// local terminals; SSH sessions pass their own.
	Renderer *lipgloss.Renderer

	// ScreenshotDir enables ctrl+s PNG screenshots into this directory.
	ScreenshotDir string

	// Screen is the initial terminal size; WindowSizeMsg updates it.
	Screen core.RuntimeConfig
}

// viewStyles holds the lipgloss styles for the non-board parts of the view.
type viewStyles struct {
	title  lipgloss.Style
	button lipgloss.Style
	text   lipgloss.Style
	dim    lipgloss.Style
	alert  lipgloss.Style
}

func newViewStyles(r *lipgloss.Renderer) viewStyles {
	return viewStyles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#36ff5a")),
		button: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#5b8dde")).
			Padding(0, 2),
		text:  r.NewStyle(),
		dim:   r.NewStyle().Foreground(lipgloss.Color("#808080")),
		alert: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#c40000")),
	}
}

// Model is the Bubble Tea model for one Snake game.
type Model struct {
	ctrl   *session.Controller
	style  render.Style
	screen *core.Screen
	canvas *ScreenCanvas
	cells  *styleCache
	view   viewStyles
	keys   KeyMap
	help   help.Model

	screenshotDir string
	status        string // last screenshot result

	width    int
	height   int
	quitting bool
}

// NewModel creates a model driving ctrl and drawing with st.
func NewModel(ctrl *session.Controller, st render.Style, opts Options) Model {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	cols, rows := ScreenSize(st)
	screen := core.NewScreen(cols, rows)

	keys := DefaultKeyMap()
	keys.Screenshot.SetEnabled(opts.ScreenshotDir != "")

	h := help.New()
	h.Width = opts.Screen.ScreenW

	return Model{
		ctrl:          ctrl,
		style:         st,
		screen:        screen,
		canvas:        NewScreenCanvas(screen, st.CellSize),
		cells:         newStyleCache(r),
		view:          newViewStyles(r),
		keys:          keys,
		help:          h,
		screenshotDir: opts.ScreenshotDir,
		width:         opts.Screen.ScreenW,
		height:        opts.Screen.ScreenH,
	}
}

// Init does nothing; the tick loop starts with the game.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.ctrl.Tick(msg.Gen) {
			return m, m.nextTick()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.ctrl.Close()
		m.quitting = true
		return m, tea.Quit
	case core.ActionStart:
		if m.ctrl.Start() {
			m.status = ""
			return m, m.nextTick()
		}
	case core.ActionPause:
		if m.ctrl.TogglePause() {
			return m, m.nextTick()
		}
	case core.ActionRestart:
		m.ctrl.Restart()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionScreenshot:
		m.status = m.saveScreenshot()
	default:
		m.ctrl.Key(msg.String())
	}
	return m, nil
}

func (m Model) nextTick() tea.Cmd {
	return tickCmd(m.ctrl.Generation(), m.ctrl.Period())
}

// saveScreenshot writes the current board as PNG and returns a status line.
func (m Model) saveScreenshot() string {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, "snake_"+timestamp+".png")

	f, err := os.Create(path)
	if err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}
	defer f.Close()

	if err := render.RenderPNG(f, render.SceneOf(m.ctrl.Game()), m.style); err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}
	return "saved " + path
}

// Controller returns the driven controller.
func (m Model) Controller() *session.Controller {
	return m.ctrl
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return fmt.Sprintf("Terminal too small: need at least %dx%d, have %dx%d",
			m.screen.Width(), m.screen.Height()+4, m.width, m.height)
	}

	var body string
	switch m.ctrl.Status() {
	case snake.StatusNotStarted:
		body = m.startView()
	case snake.StatusGameOver:
		body = m.gameOverView()
	default:
		body = m.boardView()
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.view.dim.Render(m.status) + "\n" + footer
	}
	content := lipgloss.JoinVertical(lipgloss.Center, body, "", footer)

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// tooSmall reports whether a known terminal size cannot fit the board.
func (m Model) tooSmall() bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return m.width < m.screen.Width() || m.height < m.screen.Height()+4
}

func (m Model) startView() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		m.view.title.Render("S N A K E"),
		"",
		m.view.button.Render("Start Game"),
	)
}

func (m Model) boardView() string {
	m.screen.Clear()
	render.Draw(m.canvas, render.SceneOf(m.ctrl.Game()), m.style)
	board := m.cells.render(m.screen)

	label := "Pause"
	if m.ctrl.Status() == snake.StatusPaused {
		label = "Resume"
	}
	return lipgloss.JoinVertical(lipgloss.Center, board, m.view.button.Render(label))
}

func (m Model) gameOverView() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		m.view.alert.Render("Game Over"),
		m.view.text.Render(fmt.Sprintf("Your score: %d", m.ctrl.Game().Score())),
		"",
		m.view.button.Render("Restart"),
	)
}

// Run starts a local Bubble Tea program for ctrl.
func Run(ctrl *session.Controller, st render.Style, opts Options) error {
	model := NewModel(ctrl, st, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	ctrl.Close()
	return err
}
