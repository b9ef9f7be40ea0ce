package main

import (
	"github.com/spf13/cobra"

	"github.com/jpfluger/atempo/acodec"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.json>",
		Short: "Check whether a file holds a well-formed wire expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readExprFile(args[0])
			if err != nil {
				return err
			}
			if acodec.Validate(raw) {
				cmd.Println("valid")
				return nil
			}
			cmd.Println("invalid")
			return nil
		},
	}
}
