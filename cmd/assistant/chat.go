package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"immo-assistant/internal/model"
	"immo-assistant/internal/repository"
	"immo-assistant/internal/service"
)

const chatHelp = "Commandes : /prefs affiche tes préférences, /quit pour quitter."

func newChatCmd(opts *rootOptions) *cobra.Command {
	var page string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		Long: `Chat reads one message per line from stdin and prints the assistant's replies.

Examples:
  # Talk to the assistant as if browsing the listings page
  assistant chat --page /properties

  # Reproducible replies
  echo "Bonjour" | assistant chat --seed 42`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := opts.logger()
			defer func() { _ = logger.Sync() }()

			engine, err := service.NewEngineFromOptions(service.EngineOptions{
				TemplatesPath: opts.templatesPath,
				Seed:          opts.seed,
				Logger:        logger,
			})
			if err != nil {
				return err
			}
			chat := service.NewChatService(repository.NewMemoryStore(), engine, opts.language, logger)

			var pageCtx *model.PageContext
			if page != "" {
				pageCtx = &model.PageContext{Path: page}
			}
			return runChat(cmd, chat, pageCtx)
		},
	}

	cmd.Flags().StringVar(&page, "page", "", "page path the conversation happens on, e.g. /properties")
	return cmd
}

func runChat(cmd *cobra.Command, chat *service.ChatService, page *model.PageContext) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	session, err := chat.StartSession(ctx)
	if err != nil {
		return err
	}
	welcome, err := chat.Messages(ctx, session.SessionID)
	if err != nil {
		return err
	}
	for _, msg := range welcome {
		printMessage(out, msg)
	}
	fmt.Fprintln(out, chatHelp)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/prefs":
			prefs, err := chat.Preferences(ctx, session.SessionID)
			if err != nil {
				return err
			}
			if err := printJSON(out, prefs); err != nil {
				return err
			}
			continue
		}

		resp, err := chat.Chat(ctx, &model.ChatRequest{
			SessionID:   session.SessionID,
			Message:     line,
			PageContext: page,
		})
		if err != nil {
			return err
		}
		printMessage(out, resp.Reply)
	}
}

func printMessage(out io.Writer, msg model.Message) {
	fmt.Fprintf(out, "\n%s\n", msg.Text)
	if msg.Attachment != nil {
		fmt.Fprintf(out, "  [%s] %s - %s, %s\n",
			msg.Attachment.ID, msg.Attachment.Title, msg.Attachment.Price, msg.Attachment.Location)
	}
	for _, chip := range msg.Suggestions {
		fmt.Fprintf(out, "  • %s\n", chip)
	}
	fmt.Fprintln(out)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
