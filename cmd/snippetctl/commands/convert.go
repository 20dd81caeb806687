package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"snippetkit/internal/convert"
)

// convert [file]: rewrite an HTML snippet into Next.js head/body code.
func convertCmd() *cobra.Command {
	var (
		parserName string
		asJSON     bool
		stableIDs  bool
	)
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert an HTML tracking snippet to Next.js components",
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

			opts := []convert.Option{convert.WithParser(p)}
			if stableIDs {
				opts = append(opts, convert.WithIDs(convert.SequentialIDs))
			}
			res := convert.New(opts...).Convert(cmd.Context(), in)
			lg := logger(cmd)
			for _, w := range res.Warnings {
				lg.Printf("CONVERT %s", w)
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			writeSections(out, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&parserName, "parser", "html", "parser backend: html or browser")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&stableIDs, "stable-ids", false, "number inline script ids sequentially instead of randomly")
	return cmd
}

func writeSections(out io.Writer, res convert.Result) {
	if res.Instructions != "" {
		fmt.Fprintf(out, "== Instructions ==\n%s\n", res.Instructions)
	}
	if res.Head != "" {
		fmt.Fprintf(out, "\n== Head Code ==\n%s\n", res.Head)
	}
	if res.Body != "" {
		fmt.Fprintf(out, "\n== Body Code ==\n%s\n", res.Body)
	}
}
