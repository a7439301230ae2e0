package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/yonasmekonnen/nesha/internal/ai"
	"github.com/yonasmekonnen/nesha/internal/app"
	"github.com/yonasmekonnen/nesha/internal/cli"
	"github.com/yonasmekonnen/nesha/internal/cli/chat"
	"github.com/yonasmekonnen/nesha/internal/cli/confession"
	"github.com/yonasmekonnen/nesha/internal/cli/habits"
	"github.com/yonasmekonnen/nesha/internal/cli/notes"
	"github.com/yonasmekonnen/nesha/internal/cli/settings"
	"github.com/yonasmekonnen/nesha/internal/cli/system"
	"github.com/yonasmekonnen/nesha/internal/cli/tasks"
	"github.com/yonasmekonnen/nesha/internal/constants"
	apperrors "github.com/yonasmekonnen/nesha/internal/errors"
	"github.com/yonasmekonnen/nesha/internal/logger"
	"github.com/yonasmekonnen/nesha/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path. A .db extension selects the SQLite backend, anything else the JSON backend." type:"string" default:"~/.config/nesha/nesha.json"`
	DB      bool   `help:"Use the SQLite backend regardless of the file extension."`
	Debug   bool   `help:"Enable debug logging."`

	Init system.InitCmd `cmd:"" help:"Initialize nesha storage."`
	Tui  system.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`

	Today  system.TodayCmd `cmd:"" help:"Show the Ethiopian calendar date."`
	Advice chat.AdviceCmd  `cmd:"" help:"Show today's advice."`
	Chat   chat.ChatCmd    `cmd:"" help:"Chat with the Nesha companion."`

	Habit struct {
		Add     habits.HabitAddCmd     `cmd:"" help:"Add a new habit."`
		List    habits.HabitListCmd    `cmd:"" help:"List all habits." default:"1"`
		Check   habits.HabitCheckCmd   `cmd:"" help:"Toggle a habit completion."`
		Delete  habits.HabitDeleteCmd  `cmd:"" help:"Delete a habit."`
		Analyze habits.HabitAnalyzeCmd `cmd:"" help:"Turn a goal into habit suggestions."`
	} `cmd:"" help:"Manage habits."`
	Task struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List all tasks." default:"1"`
		Done   tasks.TaskDoneCmd   `cmd:"" help:"Toggle task completion."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Note struct {
		Add    notes.NoteAddCmd    `cmd:"" help:"Add a new note."`
		List   notes.NoteListCmd   `cmd:"" help:"List all notes." default:"1"`
		Edit   notes.NoteEditCmd   `cmd:"" help:"Edit a note."`
		Delete notes.NoteDeleteCmd `cmd:"" help:"Delete a note."`
	} `cmd:"" help:"Manage notes."`
	Confession struct {
		Status   confession.StatusCmd   `cmd:"" help:"Show confession status." default:"1"`
		Schedule confession.ScheduleCmd `cmd:"" help:"Schedule a confession appointment."`
		Log      confession.LogCmd      `cmd:"" help:"Record a confession."`
		Clear    confession.ClearCmd    `cmd:"" help:"Clear the scheduled appointment."`
	} `cmd:"" help:"Track confession appointments."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the Gemini API key."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored API key."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check whether an API key is configured." default:"1"`
	} `cmd:"" help:"Manage the AI API key."`
	Settings  settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	ChatClear chat.ChatClearCmd    `cmd:"" hidden:"" help:"Clear the chat transcript."`
	Notify    system.NotifyCmd     `cmd:"" hidden:"" help:"Send due reminders (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit, task and notes companion with an Ethiopian calendar."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := storage.ExpandPath(CLI.Config)
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	if CLI.DB || strings.HasSuffix(configPath, ".db") {
		store = storage.NewSQLiteStore(configPath)
	} else {
		store = storage.NewJSONStore(configPath)
	}

	svc := app.New(store, ai.FromEnvironment())

	// The init command manages its own store lifecycle
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		if err := svc.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:   store,
		Service: svc,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}
