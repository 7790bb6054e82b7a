package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"repertorio/internal/models"
	"repertorio/internal/repositories"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	WorkListView ViewState = iota
	RightHolderListView
)

type worksLoadedMsg struct {
	works []*models.PersistedWork
	err   error
}

type holdersLoadedMsg struct {
	work    *models.PersistedWork
	holders []*models.PersistedRightHolder
	err     error
}

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	works        *repositories.WorkRepository
	holders      *repositories.RightHolderRepository
	width        int
	height       int
	workList     list.Model
	holderList   list.Model
	selectedWork *models.PersistedWork
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model backed by the provided repositories.
func NewModel(ctx context.Context, works *repositories.WorkRepository, holders *repositories.RightHolderRepository) *Model {
	return &Model{
		ctx:     ctx,
		view:    WorkListView,
		works:   works,
		holders: holders,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init initializes the TUI by loading stored works.
func (m *Model) Init() tea.Cmd {
	return m.loadWorks()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.workList.Width() == 0 {
			m.workList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.holderList.Width() == 0 {
			m.holderList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case WorkListView:
			return m.handleWorkListKeys(msg)
		case RightHolderListView:
			return m.handleHolderListKeys(msg)
		}

	case worksLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.works))
		for i, work := range msg.works {
			items[i] = workItem{work: work}
		}
		m.workList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.workList.Title = "Extracted Works"
		m.workList.SetSize(m.width-4, m.height-8)
		return m, nil

	case holdersLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = WorkListView
			return m, nil
		}
		m.selectedWork = msg.work
		items := make([]list.Item, len(msg.holders))
		for i, holder := range msg.holders {
			items[i] = rightHolderItem{holder: holder}
		}
		m.holderList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.holderList.Title = fmt.Sprintf("Right holders of '%s'", msg.work.Title())
		m.holderList.SetSize(m.width-4, m.height-8)
		m.view = RightHolderListView
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case WorkListView:
		return m.renderWorkList()
	case RightHolderListView:
		return m.renderHolderList()
	default:
		return ""
	}
}

func (m *Model) handleWorkListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.workList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(workItem); ok {
				return m, m.loadHolders(item.work)
			}
		}
	}

	var cmd tea.Cmd
	m.workList, cmd = m.workList.Update(msg)
	return m, cmd
}

func (m *Model) handleHolderListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = WorkListView
		m.selectedWork = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.holderList, cmd = m.holderList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case WorkListView:
		m.workList, cmd = m.workList.Update(msg)
	case RightHolderListView:
		m.holderList, cmd = m.holderList.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadWorks() tea.Cmd {
	return func() tea.Msg {
		works, err := m.works.List(nil)
		return worksLoadedMsg{works: works, err: err}
	}
}

func (m *Model) loadHolders(work *models.PersistedWork) tea.Cmd {
	return func() tea.Msg {
		holders, err := m.holders.ListByWork(work.ID())
		return holdersLoadedMsg{work: work, holders: holders, err: err}
	}
}

func (m *Model) renderWorkList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.workList.View(), helpView)
}

func (m *Model) renderHolderList() string {
	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.holderList.View(), helpView)
}
