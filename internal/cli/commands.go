package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bili/pkg/logger"
	"github.com/dmitrymomot/bili/pkg/sanitizer"
	"github.com/dmitrymomot/bili/pkg/slug"
)

func newDecimalCommand(log *slog.Logger) *cobra.Command {
	var passThrough bool

	cmd := &cobra.Command{
		Use:   "decimal [value...]",
		Short: "Normalize numbers written with . or , as decimal separator",
		Example: `  bili decimal 1.541.045,45 1,541,045.45
  bili decimal --pass-through abc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := sanitizer.ZeroFallback
			if passThrough {
				policy = sanitizer.PassThrough
			}
			return runLines(cmd, args, log, func(s string) string {
				return sanitizer.NormalizeDecimal(sanitizer.Text(s), policy).String()
			})
		},
	}
	cmd.Flags().BoolVar(&passThrough, "pass-through", false, "print unconvertible input as is instead of 0")

	return cmd
}

func newFloatCommand(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "float [value...]",
		Short: "Parse numbers written with . or , as decimal separator into floats",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLines(cmd, args, log, func(s string) string {
				return sanitizer.FormatNumber(sanitizer.NormalizeFloat(sanitizer.Text(s)))
			})
		},
	}
}

func newClampCommand(cfg Config, log *slog.Logger) *cobra.Command {
	var digits int

	cmd := &cobra.Command{
		Use:   "clamp [value...]",
		Short: "Bound the integer digits of numbers for fixed width storage",
		Example: `  bili clamp 234234234.23234234        # 99999999
  bili clamp --digits 4 12345.6           # 9999`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if digits < 1 {
				return fmt.Errorf("--digits must be at least 1, got %d", digits)
			}
			return runLines(cmd, args, log, func(s string) string {
				return sanitizer.FormatNumber(sanitizer.ClampFloatLength(sanitizer.Text(s), digits))
			})
		},
	}
	cmd.Flags().IntVar(&digits, "digits", cfg.MaxIntegerDigits, "maximum number of integer digits")

	return cmd
}

func newXMLCommand(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "xml [text...]",
		Short: "Escape bare ampersands and dollar signs for XML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLines(cmd, args, log, sanitizer.ToXML)
		},
	}
}

func newXHTMLCommand(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "xhtml [text...]",
		Short: "Escape text for XHTML and rewrite link targets to rel=\"external\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLines(cmd, args, log, sanitizer.ToXHTML)
		},
	}
}

func newEscapeAmpCommand(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "escape-amp [text...]",
		Short: "Escape ampersands that do not start an entity reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLines(cmd, args, log, sanitizer.EscapeAmpersand)
		},
	}
}

func newEntitiesCommand(log *slog.Logger) *cobra.Command {
	var decode bool

	cmd := &cobra.Command{
		Use:   "entities [text...]",
		Short: "Encode or decode HTML entities",
		RunE: func(cmd *cobra.Command, args []string) error {
			transform := sanitizer.ToEntities
			if decode {
				transform = sanitizer.FromEntities
			}
			return runLines(cmd, args, log, transform)
		},
	}
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "decode entity references instead of encoding")

	return cmd
}

func newSlugCommand(cfg Config, log *slog.Logger) *cobra.Command {
	var maxLength int

	cmd := &cobra.Command{
		Use:     "slug [text...]",
		Short:   "Turn text into URL slugs",
		Example: `  bili slug "Héllo World!!"   # hello-world`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []slug.Option
			if maxLength > 0 {
				opts = append(opts, slug.MaxLength(maxLength))
			}
			return runLines(cmd, args, log, func(s string) string {
				return slug.Make(s, opts...)
			})
		},
	}
	cmd.Flags().IntVar(&maxLength, "max-length", cfg.SlugMaxLength, "truncate slugs to this length (0 means no limit)")

	return cmd
}

func newASCIICommand(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "ascii [text...]",
		Short: "Fold text to ASCII",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLines(cmd, args, log, sanitizer.ToASCII)
		},
	}
}

func newFilenameCommand(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "filename [name...]",
		Short: "Strip characters that are not allowed in filenames",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLines(cmd, args, log, sanitizer.ToFilename)
		},
	}
}

func newIntegersCommand(log *slog.Logger) *cobra.Command {
	var keepInvalid bool

	cmd := &cobra.Command{
		Use:   "integers [value...]",
		Short: "Coerce a list of values to integers, dropping invalid ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				log.ErrorContext(ctx, "reading inputs failed", logger.Error(err))
				return err
			}

			policy := sanitizer.DiscardInvalid
			if keepInvalid {
				policy = sanitizer.KeepInvalid
			}
			ints := sanitizer.ToIntegers(sanitizer.Texts(inputs...), policy)

			fields := make([]string, len(ints))
			for i, n := range ints {
				fields[i] = strconv.FormatInt(n, 10)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(fields, " ")); err != nil {
				return fmt.Errorf("write result: %w", err)
			}

			log.DebugContext(ctx, "integers coerced",
				logger.Count(len(inputs)),
				slog.Int("dropped", len(inputs)-len(ints)),
			)
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepInvalid, "keep-invalid", false, "coerce invalid values to 0 instead of dropping them")

	return cmd
}
