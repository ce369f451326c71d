package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "trialmonitor",
		Short:         "Clinical trial monitoring assistant",
		Long:          "Classifies clinical trial monitoring requests, extracts their fields and runs LLM backed reviews from the terminal.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(classifyCmd())
	root.AddCommand(extractCmd())
	root.AddCommand(rulesCmd())
	root.AddCommand(chatCmd())
	return root
}

// readText returns the message from args, or from --file ("-" is stdin).
func readText(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	switch file {
	case "":
		return "", fmt.Errorf("no message given: pass it as arguments or with --file")
	case "-":
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	default:
		raw, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(raw), nil
	}
}
