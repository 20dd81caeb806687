package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"snippetkit/internal/encoder"
)

// encode [text]: print the edit key for text, or for stdin.
func encodeCmd() *cobra.Command {
	var decode bool
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Produce the ?edit= key for a piece of text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in string
			if len(args) == 1 && args[0] != "-" {
				in = args[0]
			} else {
				raw, err := readInput(cmd, nil)
				if err != nil {
					return err
				}
				in = strings.TrimRight(raw, "\r\n")
			}
			if decode {
				out, err := encoder.Decode(strings.TrimSpace(in))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			out, err := encoder.Encode(in)
			if err != nil {
				logger(cmd).Printf("Encoding Error: %v", err)
				fmt.Fprintln(cmd.OutOrStdout(), encoder.FailureMessage)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "reverse an existing ?edit= key")
	return cmd
}
