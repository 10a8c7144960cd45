// Package tui is a terminal front end for a tagnote vault.
//
// It has four screens: the filtered note list, a rendered note view, the
// note form and the tag editor. All state that matters lives in
// pkg/listing and pkg/form; this package maps keys onto them and draws
// the result.
package tui

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/tagnote/pkg/core"
	"github.com/aretw0/tagnote/pkg/form"
	"github.com/aretw0/tagnote/pkg/listing"
)

type screen int

const (
	screenList screen = iota
	screenNote
	screenForm
	screenTags
)

type (
	loadedMsg struct {
		notes []core.Note
		reg   core.Registry
	}
	errMsg   struct{ err error }
	eventMsg core.Event
)

// Option configures the Model.
type Option func(*Model)

// WithMarkdownStyle sets the glamour style used by the note view
// ("dark", "light", "notty", ...). Defaults to "dark".
func WithMarkdownStyle(style string) Option {
	return func(m *Model) { m.mdStyle = style }
}

// WithDefaultColor sets the background color of new notes.
func WithDefaultColor(color string) Option {
	return func(m *Model) { m.defaultColor = color }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// Model is the root bubbletea model.
type Model struct {
	ctx    context.Context
	svc    *core.Service
	cb     core.Callbacks
	keys   keyMap
	logger *slog.Logger

	mdStyle      string
	defaultColor string

	screen screen
	width  int
	height int
	status string
	err    error

	notes []core.Note
	reg   core.Registry

	// list screen
	list      *listing.List
	cards     []listing.Card
	cursor    int
	search    textinput.Model
	searching bool

	// note view
	current  core.Note
	rendered string

	// form screen
	form      *form.Form
	formID    string
	focus     field
	title     textinput.Model
	body      textarea.Model
	newTag    textinput.Model
	tagCursor int

	// tag editor
	tagEditCursor int
	renaming      bool
	rename        textinput.Model

	events <-chan core.Event
}

// New builds the model. When the service can watch its repository, the list
// reloads on external changes until ctx is cancelled.
func New(ctx context.Context, svc *core.Service, opts ...Option) *Model {
	m := &Model{
		ctx:          ctx,
		svc:          svc,
		cb:           svc.Callbacks(ctx, ""),
		keys:         defaultKeys(),
		mdStyle:      "dark",
		defaultColor: core.DefaultColor,
		search:       textinput.New(),
		rename:       textinput.New(),
		title:        textinput.New(),
		body:         textarea.New(),
		newTag:       textinput.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m.search.Placeholder = "Search titles"
	m.search.Prompt = "/ "
	m.rename.Prompt = "label: "
	m.list = listing.New(listing.Hooks{
		OnUpdateTag: m.cb.OnUpdateTag,
		OnDeleteTag: m.cb.OnDeleteTag,
	})

	if events, err := svc.Watch(ctx, ""); err == nil {
		m.events = events
	} else {
		m.logger.Debug("live reload disabled", "error", err)
	}
	return m
}

// Run starts an interactive program on the terminal.
func Run(ctx context.Context, svc *core.Service, opts ...Option) error {
	m := New(ctx, svc, opts...)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.waitForEvent())
}

func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		reg, err := m.svc.Registry(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		notes, err := m.svc.Notes(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{notes: notes, reg: reg}
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.body.SetWidth(max(msg.Width-8, 20))
		return m, nil

	case loadedMsg:
		m.notes, m.reg = msg.notes, msg.reg
		m.refresh()
		if m.form != nil {
			m.form.SetAvailable(m.reg)
		}
		return m, nil

	case eventMsg:
		m.logger.Debug("vault changed", "event", core.Event(msg).String())
		return m, tea.Batch(m.load(), m.waitForEvent())

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.err = nil
		switch m.screen {
		case screenNote:
			return m.updateNote(msg)
		case screenForm:
			return m.updateForm(msg)
		case screenTags:
			return m.updateTags(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

// refresh recomputes the visible cards and keeps the cursor in range.
func (m *Model) refresh() {
	m.cards = m.list.Visible(m.notes, m.reg)
	if m.cursor >= len(m.cards) {
		m.cursor = len(m.cards) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.tagEditCursor >= m.reg.Len() {
		m.tagEditCursor = max(m.reg.Len()-1, 0)
	}
}

// fail records err and reloads, since a failed write may have partly applied.
func (m *Model) fail(err error) tea.Cmd {
	m.err = err
	return m.load()
}

func (m *Model) View() string {
	var body string
	switch m.screen {
	case screenNote:
		body = m.viewNote()
	case screenForm:
		body = m.viewForm()
	case screenTags:
		body = m.viewTags()
	default:
		body = m.viewList()
	}
	if m.err != nil {
		body += "\n" + errorStyle.Render("Error: "+m.err.Error())
	} else if m.status != "" {
		body += "\n" + statusStyle.Render(m.status)
	}
	return appStyle.Render(body)
}
