package tui

import (
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mbartlett/thuck/internal/client/huckleberry"
	"github.com/mbartlett/thuck/internal/tui/theme"
	"github.com/mbartlett/thuck/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	dashboardPage
)

// entryState is the in-dashboard bottle amount input.
type entryState struct {
	active bool
	buffer string
	hint   string
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	deps           Deps

	now      time.Time
	child    *huckleberry.Child
	status   string
	entry    entryState
	fatalErr error
}

func New(deps Deps) Model {
	return Model{
		page:  splashPage,
		theme: theme.New(),
		deps:  deps,
		now:   time.Now(),
	}
}

// Err reports the startup-blocking condition that ended the program, if
// any.
func (m *Model) Err() error {
	return m.fatalErr
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(splashDuration, func(t time.Time) tea.Msg {
			return SplashTickMsg{}
		}),
		connectCmd(m.deps.Ctx, m.deps.Client),
		tickCmd(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		if m.entry.active {
			return m, m.updateEntry(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "l":
			if m.child != nil {
				m.entry = entryState{active: true}
			}
		}

	// splash timer expired - transition to dashboard
	case SplashTickMsg:
		m.page = dashboardPage

	case TickMsg:
		m.now = msg.Time
		return m, tickCmd()

	case ConnectedMsg:
		child := msg.Child
		m.child = &child
		m.status = "watching " + child.Name
		return m, tea.Batch(
			StartListenerCmd(m.deps.Ctx, m.deps.Stream, m.deps.State, m.deps.Logger, child.UID, m.deps.FeedCh),
			WaitForFeedCmd(m.deps.Ctx, m.deps.FeedCh),
		)

	case StartupFailedMsg:
		m.fatalErr = msg.Err
		return m, tea.Quit

	case ConnectFailedMsg:
		m.status = "connection failed: " + msg.Err.Error()

	case ListenerStoppedMsg:
		if msg.Err != nil {
			m.status = "connection lost: " + msg.Err.Error()
		} else {
			m.status = "connection closed"
		}

	case FeedMsg:
		// state is already updated; re-arm the bridge and cache the
		// observation
		return m, tea.Batch(
			WaitForFeedCmd(m.deps.Ctx, m.deps.FeedCh),
			recordHistoryCmd(m.deps.Ctx, m.deps.History, msg.Event),
		)

	case BottleLoggedMsg:
		if msg.Err != nil {
			m.status = "log failed: " + msg.Err.Error()
		} else {
			m.status = "logged " + strconv.Itoa(int(msg.Record.BottleAmount)) + "ml"
		}

	case HistoryWrittenMsg:
		if msg.Err != nil {
			m.deps.Logger.WarnContext(m.deps.Ctx, "failed to cache feed event", xslog.Error(msg.Err))
		}
	}

	return m, nil
}

func (m *Model) updateEntry(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch key {
	case "esc":
		m.entry = entryState{}
		return nil

	case "enter":
		buffer := m.entry.buffer
		if buffer == "" {
			// empty submission means cancelled
			m.entry = entryState{}
			return nil
		}
		amount, err := strconv.Atoi(buffer)
		if err != nil || amount < 0 {
			m.entry.hint = "numbers only"
			m.entry.buffer = ""
			return nil
		}
		m.entry = entryState{}
		return logBottleCmd(m.deps.Ctx, m.deps.Client, m.child.UID, amount)

	case "backspace":
		if len(m.entry.buffer) > 0 {
			m.entry.buffer = m.entry.buffer[:len(m.entry.buffer)-1]
		}
		return nil
	}

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		if len(m.entry.buffer) < 4 {
			m.entry.buffer += key
			m.entry.hint = ""
		}
		return nil
	}

	m.entry.hint = "numbers only"
	return nil
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case splashPage:
		content = lipgloss.Place(
			m.viewportWidth,
			m.viewportHeight,
			lipgloss.Center,
			lipgloss.Center,
			m.LogoView(),
		)
	case dashboardPage:
		content = m.DashboardView()
	}

	view.SetContent(content)
	return view
}
