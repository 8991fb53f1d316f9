package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [path...]",
		Short: "Print each document's tree after layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			files, err := collectFiles(args)
			if err != nil {
				return err
			}
			docs, err := loadAll(cmd.Context(), files, cfg, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range docs {
				fmt.Fprintf(out, "%s:\n", d.file)
				if err := d.Tree.Dump(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
