package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jpfluger/atempo/alog"
)

// Execute builds and runs the atempoctl command tree.
func Execute() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := initLogger(cfg); err != nil {
		return err
	}

	root := &cobra.Command{
		Use:   "atempoctl",
		Short: "Install, validate, and inspect atempo recurrent event sets",
	}

	root.AddCommand(
		newVersionCmd(),
		newInstallCmd(),
		newUninstallCmd(),
		newValidateCmd(),
		newContainsCmd(),
		newForwardCmd(),
		newDescribeCmd(),
		newLogsCmd(cfg),
	)

	return root.Execute()
}

// initLogger wires the CLI's logging channel the way the teacher's own
// tooling provisions a channel: one ChannelProvisioner, console output
// always on, plus a rotating file channel when cfg.LogDir is set so
// `atempoctl logs` has something to page through.
func initLogger(cfg Config) error {
	prov := &alog.ChannelProvisioner{
		ChannelProvisionerBase: alog.ChannelProvisionerBase{DirLog: cfg.LogDir},
		App:                    "atempoctl",
	}
	writerTypes := alog.WriterTypes{alog.WRITERTYPE_CONSOLE_STDERR}
	if cfg.LogDir != "" {
		writerTypes = append(writerTypes, alog.WRITERTYPE_FILE)
	}
	channels := alog.Channels{
		{
			Name:        alog.LOGGER_CLI,
			LogLevel:    cfg.LogLevel,
			WriterTypes: writerTypes,
		},
	}
	return alog.SetGlobalLogger(time.RFC3339, channels, prov)
}

func logFilePath(cfg Config) string {
	if cfg.LogDir == "" {
		return ""
	}
	return cfg.LogDir + "/" + alog.LOGGER_CLI.String() + ".log"
}
