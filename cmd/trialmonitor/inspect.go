package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"trial-monitor/internal/extract"
	"trial-monitor/internal/router"
)

func classifyCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "classify [message...]",
		Short: "Print the request type a message is routed to",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args, file)
			if err != nil {
				return err
			}
			cls := router.New(nil).Explain(text)
			rule := cls.Rule
			if rule == "" {
				rule = "-"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t(rule: %s)\n", cls.Type, rule)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the message from a file, - for stdin")
	return cmd
}

func extractCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "extract [message...]",
		Short: "Classify a message and print the extracted handler arguments as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args, file)
			if err != nil {
				return err
			}
			cls := router.New(nil).Explain(text)
			out := struct {
				RequestType string            `json:"request_type"`
				Rule        string            `json:"rule,omitempty"`
				Arguments   extract.Arguments `json:"arguments"`
			}{
				RequestType: cls.Type.String(),
				Rule:        cls.Rule,
				Arguments:   extract.Extract(text, cls.Type),
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the message from a file, - for stdin")
	return cmd
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the classification rules in evaluation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tRULE\tREQUEST TYPE")
			for i, r := range router.New(nil).Rules() {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, r.Name, r.Type)
			}
			return w.Flush()
		},
	}
}
