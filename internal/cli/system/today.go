package system

import (
	"context"
	"fmt"
	"time"

	"github.com/yonasmekonnen/nesha/internal/cli"
	"github.com/yonasmekonnen/nesha/internal/constants"
	"github.com/yonasmekonnen/nesha/internal/ethiopic"
	"github.com/yonasmekonnen/nesha/internal/models"
)

type TodayCmd struct {
	Date string `arg:"" optional:"" help:"Gregorian date to convert (YYYY-MM-DD). Defaults to today."`
	Lang string `short:"l" help:"Override display language (am|en)."`
}

func (c *TodayCmd) Validate() error {
	if c.Date != "" {
		if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
		}
	}
	if c.Lang != "" && !models.ValidLanguage(c.Lang) {
		return fmt.Errorf("language must be am or en, got %q", c.Lang)
	}
	return nil
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	lang := ctx.Service.Settings().Language
	if c.Lang != "" {
		lang = models.Language(c.Lang)
	}

	d := ethiopic.Today()
	if c.Date != "" {
		t, _ := time.Parse(constants.DateFormat, c.Date)
		d = ethiopic.Convert(t)
	}

	fmt.Printf("%s, %s\n", d.DayName, ethiopic.Format(d, lang))

	// Only the real today carries advice; converting an arbitrary date does not
	if c.Date == "" {
		fmt.Println(ctx.Service.DailyAdvice(context.Background()))
	}
	return nil
}
