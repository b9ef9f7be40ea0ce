package main

import (
	"github.com/spf13/cobra"

	"github.com/jpfluger/atempo/arelational"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Print the provisioning SQL for the relational adapter's table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Print(arelational.DDL())
			return nil
		},
	}
}

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Print the teardown SQL matching install",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Print(arelational.UninstallDDL())
			return nil
		},
	}
}
