package notes

import (
	"fmt"
	"strings"
	"time"

	"github.com/yonasmekonnen/nesha/internal/cli"
)

type NoteAddCmd struct {
	Content []string `arg:"" help:"Note content."`
}

func (c *NoteAddCmd) Run(ctx *cli.Context) error {
	note, ok := ctx.Service.AddNote(strings.Join(c.Content, " "))
	if !ok {
		return fmt.Errorf("note content must not be empty")
	}
	fmt.Printf("Added note (ID: %s)\n", cli.ShortID(note.ID))
	return nil
}

type NoteListCmd struct {
	ShowIDs bool `help:"Show note IDs." name:"show-ids"`
}

func (c *NoteListCmd) Run(ctx *cli.Context) error {
	notes := ctx.Service.Notes()
	if len(notes) == 0 {
		fmt.Println("No notes found")
		return nil
	}

	fmt.Println("Notes:")
	for _, n := range notes {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", cli.ShortID(n.ID))
		}
		fmt.Printf("  %s%s\n      %s\n", n.CreatedAt.Format(time.DateOnly), idStr, n.Content)
	}
	return nil
}

type NoteEditCmd struct {
	ID      string   `arg:"" help:"Note ID (or unique prefix)."`
	Content []string `arg:"" help:"Replacement content."`
}

func (c *NoteEditCmd) Run(ctx *cli.Context) error {
	note, err := ctx.ResolveNote(c.ID)
	if err != nil {
		return err
	}
	if !ctx.Service.UpdateNote(note.ID, strings.Join(c.Content, " ")) {
		return fmt.Errorf("note content must not be empty")
	}
	fmt.Printf("Updated note (ID: %s)\n", cli.ShortID(note.ID))
	return nil
}

type NoteDeleteCmd struct {
	ID string `arg:"" help:"Note ID (or unique prefix) to delete."`
}

func (c *NoteDeleteCmd) Run(ctx *cli.Context) error {
	note, err := ctx.ResolveNote(c.ID)
	if err != nil {
		return err
	}
	if !ctx.Service.DeleteNote(note.ID) {
		return fmt.Errorf("failed to delete note %s", c.ID)
	}
	fmt.Printf("Deleted note (ID: %s)\n", cli.ShortID(note.ID))
	return nil
}
