package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bili/pkg/logger"
)

// NewRootCommand builds the bili command tree.
func NewRootCommand(cfg Config, log *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "bili",
		Short: "Sanitize text and numbers from the command line",
		Long: `bili sanitizes loosely formatted input for markup, URLs, filenames
and numeric storage fields.

Every command reads its inputs from the arguments, or line by line from stdin
when no arguments are given, and prints one result per line.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newDecimalCommand(log),
		newFloatCommand(log),
		newClampCommand(cfg, log),
		newXMLCommand(log),
		newXHTMLCommand(log),
		newEscapeAmpCommand(log),
		newEntitiesCommand(log),
		newSlugCommand(cfg, log),
		newASCIICommand(log),
		newFilenameCommand(log),
		newIntegersCommand(log),
	)

	return root
}

// readInputs returns args, or the lines of r when args is empty.
func readInputs(r io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

// commandContext tags ctx with the command name for the logger.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, operationKey{}, cmd.Name())
}

// runLines applies transform to every input and prints one result per line.
func runLines(cmd *cobra.Command, args []string, log *slog.Logger, transform func(string) string) error {
	ctx := commandContext(cmd)

	inputs, err := readInputs(cmd.InOrStdin(), args)
	if err != nil {
		log.ErrorContext(ctx, "reading inputs failed", logger.Error(err))
		return err
	}

	start := time.Now()
	out := cmd.OutOrStdout()
	for _, in := range inputs {
		if _, err := fmt.Fprintln(out, transform(in)); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	log.DebugContext(ctx, "inputs sanitized",
		logger.Count(len(inputs)),
		logger.Duration(time.Since(start)),
	)
	return nil
}
