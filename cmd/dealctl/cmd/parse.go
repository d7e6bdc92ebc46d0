package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse a promotional message into a deal candidate",
		Long: "Sends raw promotional text to the API server's extraction cascade and\n" +
			"prints the structured candidate. Reads from stdin when no argument is\n" +
			"given, so messages can be piped in.",
		Args: cobra.MaximumNArgs(1),
		Example: `  dealctl parse "boAt Airdopes 141 @ ₹999 (MRP ₹2999) https://amzn.to/xyz"
  cat message.txt | dealctl parse`,
		RunE: func(_ *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				raw, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				text = strings.TrimSpace(string(raw))
			}
			if text == "" {
				return fmt.Errorf("no message text provided")
			}

			c := newClient()
			result, err := c.Parse(context.Background(), text)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(result)
			}
			return printParseResult(result)
		},
	}
}
