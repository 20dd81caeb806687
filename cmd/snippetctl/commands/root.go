package commands

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"snippetkit/internal/convert"
)

var (
	verbose    bool
	chromePath string
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "snippetctl",
		Short:        "Encode edit keys and convert tracking snippets for Next.js",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parser and conversion details to stderr")
	root.PersistentFlags().StringVar(&chromePath, "chrome", os.Getenv("SNIPPETKIT_CHROME"), "Chrome binary for --parser browser")

	root.AddCommand(encodeCmd(), convertCmd(), parseCmd())
	return root
}

func logger(cmd *cobra.Command) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "snippetctl ", log.LstdFlags|log.Lmicroseconds)
}

// readInput returns the named file, or stdin when args is empty or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// parserFor maps --parser to a backend. The returned func releases it.
func parserFor(cmd *cobra.Command, name string) (convert.Parser, func(), error) {
	switch strings.ToLower(name) {
	case "", "html":
		return convert.HTMLParser{}, func() {}, nil
	case "browser":
		bp := convert.NewBrowserParser(chromePath, logger(cmd))
		return bp, bp.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown parser %q (want html or browser)", name)
	}
}
