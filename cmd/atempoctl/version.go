package main

import (
	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/jpfluger/atempo/aapp"
)

// cliVersion is bumped by hand alongside tagged releases.
const cliVersion = "0.1.0"

func buildAppVersion() (*aapp.AppVersion, error) {
	v, err := semver.NewVersion(cliVersion)
	if err != nil {
		return nil, err
	}
	av := &aapp.AppVersion{
		Name:      "atempoctl",
		Version:   v,
		Title:     "atempoctl",
		About:     "CLI/installer for recurring temporal event sets",
		Owner:     "atempo",
		LegalMark: "atempo contributors",
	}
	if err := av.Validate(); err != nil {
		return nil, err
	}
	return av, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the atempoctl version",
		RunE: func(cmd *cobra.Command, args []string) error {
			av, err := buildAppVersion()
			if err != nil {
				return err
			}
			out, err := av.Format(aapp.APPVERSION_FORMAT_BUILD)
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
	}
}
