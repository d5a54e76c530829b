package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacoelho/xsdgen"
)

func inspectCmd() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the global elements a schema declares",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := xsdgen.LoadFile(schemaPath)
			if err != nil {
				return err
			}
			names := schema.GlobalElements()
			if len(names) == 0 {
				return xsdgen.ErrNoRootElement
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to the XSD schema file")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}
