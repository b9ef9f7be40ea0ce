package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jpfluger/atempo/acalendar"
	"github.com/jpfluger/atempo/aset"
)

func newForwardCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "forward <file.json> <RFC3339 start>",
		Short: "Print the next N forward pairs of a set",
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
			from, err := time.Parse(time.RFC3339, args[1])
			if err != nil {
				return err
			}

			f := s.Forward(acalendar.New(from), true)
			for i := 0; i < count; i++ {
				pair, ok := f.Next()
				if !ok {
					break
				}
				cmd.Printf("%s .. %s (%s)\n", pair.Lo, pair.Hi, humanDuration(pair.Lo, pair.Hi))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 5, "number of pairs to print")
	return cmd
}

// humanDuration renders the span between lo and hi the way a CLI user
// reads a relative time, rather than a raw Go duration string.
func humanDuration(lo, hi acalendar.Instant) string {
	return humanize.RelTime(lo.Time(), hi.Time(), "", "later")
}
