package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"snippetkit/internal/convert"
)

// parse [file]: show the repaired head/body tree the converter walks.
func parseCmd() *cobra.Command {
	var parserName string
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Dump the head and body node tree of a snippet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			p, release, err := parserFor(cmd, parserName)
			if err != nil {
				return err
			}
			defer release()
			out, err := convert.Outline(cmd.Context(), p, in)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&parserName, "parser", "html", "parser backend: html or browser")
	return cmd
}
