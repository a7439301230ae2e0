package chat

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yonasmekonnen/nesha/internal/cli"
	"github.com/yonasmekonnen/nesha/internal/i18n"
	"github.com/yonasmekonnen/nesha/internal/models"
)

type ChatCmd struct {
	Message []string `arg:"" optional:"" help:"Send a single message instead of starting an interactive session."`
}

func (c *ChatCmd) Run(ctx *cli.Context) error {
	session := ctx.Service.AI().NewChat()
	if session != nil {
		session.Seed(ctx.Service.ChatMessages())
	}

	send := func(text string) {
		ctx.Service.AppendChatMessage(models.RoleUser, text, false)
		reply := session.Send(context.Background(), text)
		isError := session == nil || reply == i18n.T(models.LanguageEnglish).ChatError
		ctx.Service.AppendChatMessage(models.RoleModel, reply, isError)
		fmt.Printf("nesha: %s\n", reply)
	}

	if msg := strings.TrimSpace(strings.Join(c.Message, " ")); msg != "" {
		send(msg)
		return nil
	}

	fmt.Println("Chat with Nesha. Type /quit to exit, /clear to reset the conversation.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/clear":
			session.Clear()
			ctx.Service.ClearChat()
			fmt.Println("Conversation cleared.")
			continue
		}
		send(line)
	}
	return scanner.Err()
}

type ChatClearCmd struct{}

func (c *ChatClearCmd) Run(ctx *cli.Context) error {
	ctx.Service.ClearChat()
	fmt.Println("Conversation cleared.")
	return nil
}

type AdviceCmd struct {
	Refresh bool `help:"Bypass today's cached advice and fetch a new one."`
}

func (c *AdviceCmd) Run(ctx *cli.Context) error {
	var advice string
	if c.Refresh {
		advice = ctx.Service.RefreshAdvice(context.Background())
	} else {
		advice = ctx.Service.DailyAdvice(context.Background())
	}
	fmt.Println(advice)
	return nil
}
