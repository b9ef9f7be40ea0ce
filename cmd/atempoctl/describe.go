package main

import (
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/jpfluger/atempo/aexpr"
	"github.com/jpfluger/atempo/arecur"
)

func newDescribeCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "describe <file.json>",
		Short: "Print a human-readable description of each leaf in a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := describeFile(cmd, args[0]); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchAndDescribe(cmd, args[0])
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "re-describe the file whenever it changes")
	return cmd
}

func describeFile(cmd *cobra.Command, path string) error {
	expr, err := loadExpr(path)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, leaf := range leaves(expr) {
		cmd.Println(leaf.Describe(now))
	}
	return nil
}

// leaves lists expr's leaves in left-to-right order. Unlike aset's
// internal flattening (shared hot path for Forward), this runs once per
// CLI invocation, so a plain recursive walk is the simplest correct tool.
func leaves(n *aexpr.Node) []*arecur.RecurrentEvent {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return []*arecur.RecurrentEvent{n.Leaf}
	}
	var out []*arecur.RecurrentEvent
	for _, c := range n.Children {
		out = append(out, leaves(c)...)
	}
	return out
}

func watchAndDescribe(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if err := describeFile(cmd, path); err != nil {
					cmd.PrintErrln(err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
