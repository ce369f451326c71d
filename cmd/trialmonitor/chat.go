package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"trial-monitor/config"
	"trial-monitor/internal/conversation"
	"trial-monitor/internal/monitor"
	"trial-monitor/internal/monitor/repository/memory"
	"trial-monitor/internal/monitor/usecase"
	"trial-monitor/internal/router"
	"trial-monitor/pkg/llmprovider"
	"trial-monitor/pkg/log"
)

const cliSender = "cli"

func chatCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive monitoring session",
		Long: `Reads one message per line and prints the reply. Configuration is
loaded the same way as the API server (config.yaml plus environment).
Type /reset to clear the conversation and /quit to leave.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			level := "error"
			if verbose {
				level = "debug"
			}
			logger := log.Init(log.ZapConfig{Level: level, Mode: log.ModeDebug, Encoding: log.EncodingConsole})

			oracle, _, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
			if err != nil {
				return fmt.Errorf("init LLM providers: %w", err)
			}
			ucCfg, err := usecase.ConfigFrom(cfg.Generation, cfg.Monitor)
			if err != nil {
				return err
			}
			uc := usecase.New(
				logger,
				router.New(logger),
				oracle,
				memory.New(cfg.Monitor.RequestLogSize, logger),
				conversation.New(cfg.Monitor.HistoryWindow),
				ucCfg,
			)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runChat(ctx, uc, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log classification and oracle calls")
	return cmd
}

// runChat is the read-eval-print loop behind the chat command.
func runChat(ctx context.Context, uc monitor.UseCase, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Fprintln(out, "Clinical trial monitor. Type /quit to leave.")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/reset":
			if err := uc.ResetConversation(ctx, cliSender); err != nil {
				return err
			}
			fmt.Fprintln(out, "Conversation history cleared.")
			continue
		}

		output, err := uc.HandleMessage(ctx, monitor.HandleMessageInput{
			Sender: cliSender,
			Text:   line,
			OnProgress: func(_ context.Context, notice string) {
				fmt.Fprintln(out, notice)
			},
		})
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "[%s]\n%s\n", output.RequestType, output.Reply)
	}
}
