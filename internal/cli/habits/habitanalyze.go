package habits

import (
	"context"
	"fmt"
	"strings"

	"github.com/yonasmekonnen/nesha/internal/cli"
	"github.com/yonasmekonnen/nesha/internal/models"
)

type HabitAnalyzeCmd struct {
	Goal  []string `arg:"" help:"Free-form goal to turn into habit suggestions."`
	Apply bool     `help:"Add the suggested habits instead of only printing them."`
}

func (c *HabitAnalyzeCmd) Run(ctx *cli.Context) error {
	goal := strings.TrimSpace(strings.Join(c.Goal, " "))
	if goal == "" {
		return fmt.Errorf("goal must not be empty")
	}

	lang := ctx.Service.Settings().Language
	suggestions := ctx.Service.AI().Analyze(context.Background(), goal, lang)
	if len(suggestions) == 0 {
		fmt.Println("No suggestions available. Check your API key and try again.")
		return nil
	}

	fmt.Println("Suggested habits:")
	for _, s := range suggestions {
		fmt.Printf("  %s (%s)\n      %s\n", s.Title, s.Frequency, s.Advice)
	}

	if !c.Apply {
		fmt.Println("\nRun again with --apply to add them.")
		return nil
	}

	added := 0
	for _, s := range suggestions {
		if _, ok := ctx.Service.AddHabit(s.Title, models.Frequency(s.Frequency), s.Advice); ok {
			added++
		}
	}
	fmt.Printf("Added %d habits\n", added)
	return nil
}
