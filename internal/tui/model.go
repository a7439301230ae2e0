package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/yonasmekonnen/nesha/internal/ai"
	"github.com/yonasmekonnen/nesha/internal/app"
	"github.com/yonasmekonnen/nesha/internal/tui/components/chatview"
	"github.com/yonasmekonnen/nesha/internal/tui/components/habitlist"
	"github.com/yonasmekonnen/nesha/internal/tui/components/notelist"
	"github.com/yonasmekonnen/nesha/internal/tui/components/tasklist"
)

type SessionState int

const (
	StateHome SessionState = iota
	StateHabits
	StateTasks
	StateNotes
	StateChat
	StateSettings
	StateAddHabit
	StateAddTask
	StateAddNote
	StateEditNote
	StateEditSettings
)

// tabCount is the number of top-level tabs; states past it are sub-states.
const tabCount = 6

type HabitFormModel struct {
	Title       string
	Frequency   string
	Description string
}

type TaskFormModel struct {
	Title    string
	Priority string
	Due      string
	Reminder bool
}

type NoteFormModel struct {
	Content string
}

type SettingsFormModel struct {
	Language string
	DarkMode bool
	Name     string
}

type Model struct {
	svc           *app.Service
	state         SessionState
	keys          KeyMap
	help          help.Model
	habitsModel   habitlist.Model
	tasksModel    tasklist.Model
	notesModel    notelist.Model
	chatModel     chatview.Model
	chat          *ai.Chat
	form          *huh.Form
	habitForm     *HabitFormModel
	taskForm      *TaskFormModel
	noteForm      *NoteFormModel
	settingsForm  *SettingsFormModel
	editingNoteID string
	taskSort      app.TaskSort
	advice        string
	chatGen       int
	waiting       bool
	quitting      bool
	width         int
	height        int
}

func NewModel(svc *app.Service) Model {
	today := app.Today()

	chat := svc.AI().NewChat()
	if chat != nil {
		chat.Seed(svc.ChatMessages())
	}

	m := Model{
		svc:         svc,
		state:       StateHome,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habitsModel: habitlist.New(svc.Habits(), today, 0, 0),
		tasksModel:  tasklist.New(svc.SortedTasks(app.SortByCreation), today, 0, 0),
		notesModel:  notelist.New(svc.Notes(), 0, 0),
		chatModel:   chatview.New(svc.ChatMessages(), 0, 0),
		chat:        chat,
		taskSort:    app.SortByCreation,
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHome:
		keys = append(keys, m.keys.Refresh)
	case StateSettings:
		keys = append(keys, m.keys.Edit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Edit, m.keys.Refresh},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.chatModel.Init(), m.fetchAdviceCmd(false))
}
