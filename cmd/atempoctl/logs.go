package main

import (
	"github.com/spf13/cobra"

	"github.com/jpfluger/atempo/aerr"
	"github.com/jpfluger/atempo/alog"
)

func newLogsCmd(cfg Config) *cobra.Command {
	var count int
	var filter string
	var tail bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Page through atempoctl's own log file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := logFilePath(cfg)
			if path == "" {
				return aerr.NewInvalidArgument("logs: no logDir configured in ~/.atempoctl.hjson")
			}

			res := alog.ReadLogFilePaged(alog.LogPageOptions{
				FilePath: path,
				Count:    count,
				Filter:   filter,
				Tail:     tail,
			})
			if err := res.Err(); err != nil {
				return err
			}
			for _, line := range res.Lines() {
				cmd.Println(line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 50, "number of lines to return")
	cmd.Flags().StringVar(&filter, "filter", "", "only include lines containing this substring")
	cmd.Flags().BoolVar(&tail, "tail", true, "return the last N matching lines")
	return cmd
}
