package main

import (
	"fmt"

	"github.com/nathanpc/pickle-go/picklist"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Check a pick list document for syntax errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := picklist.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			fmt.Printf("%s: ok: %d properties, %d categories, %d components\n",
				args[0],
				len(doc.Properties()),
				len(doc.Categories()),
				len(doc.Components()),
			)
			return nil
		},
	}
}
