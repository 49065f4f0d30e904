package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// shellFunction runs tread with a command file and evaluates what verbs
// exported to it, which lets verbs like cd act on the calling shell
const shellFunction = `# tread shell function, source it from your shell rc file:
#   eval "$(tread shell-function)"
function td {
    local cmd cmd_file code
    cmd_file=$(mktemp)
    if tread --outcmd "$cmd_file" "$@"; then
        cmd=$(<"$cmd_file")
        rm -f "$cmd_file"
        eval "$cmd"
    else
        code=$?
        rm -f "$cmd_file"
        return "$code"
    fi
}
`

func newShellFunctionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell-function",
		Short: "Print the td shell function for bash and zsh",
		Args:  cobra.NoArgs,
		// the function is printed without loading any configuration
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), shellFunction)
		},
	}
}
