package main

import "github.com/urfave/cli/v3"

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "baka",
		Usage: "Local Windows control assistant",
		Description: "baka drives the local machine from the command line: directory and process " +
			"listings, program launches, VirtualBox/VMware control, configured macros, and an " +
			"interactive chat mode that maps plain requests onto the same operations.",
		Version: version,
		Commands: []*cli.Command{
			NewChatCommand(),
			NewExecCommand(),
			NewDirCommand(),
			NewPsCommand(),
			NewOpenCommand(),
			NewVMCommand(),
			NewMacroCommand(),
			NewHistoryCommand(),
			NewInitCommand(),
		},
	}
}
