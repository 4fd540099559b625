package main

import (
	"fmt"
	"os"

	"github.com/nathanpc/pickle-go/format"
	"github.com/nathanpc/pickle-go/picklist"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var maxLineLength int

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a pick list document and dump the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := picklist.ParseFile(args[0], picklist.WithMaxLineLength(maxLineLength))
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "line":
				encoder = format.NewLineEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, line)")
	cmd.Flags().IntVar(&maxLineLength, "max-line-length", picklist.DefaultMaxLineLength, "maximum document line length in bytes")

	return cmd
}
