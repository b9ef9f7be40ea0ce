package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jpfluger/atempo/acalendar"
	"github.com/jpfluger/atempo/aset"
)

func newContainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <file.json> <RFC3339 instant>",
		Short: "Evaluate a set's Contains at a single instant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := loadExpr(args[0])
			if err != nil {
				return err
			}
			s, err := aset.New(expr)
			if err != nil {
				return err
			}
			t, err := time.Parse(time.RFC3339, args[1])
			if err != nil {
				return err
			}
			cmd.Println(s.Contains(acalendar.New(t)))
			return nil
		},
	}
}
