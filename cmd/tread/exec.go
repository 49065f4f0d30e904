package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"tread/internal/app"
	"tread/internal/errors"
	"tread/internal/external"
	"tread/internal/log"
	"tread/pkg/types"

	"github.com/spf13/cobra"
)

func newExecCmd(opts *rootOptions) *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "exec <path> <invocation...>",
		Short: "Run a verb on a path without the navigator",
		Long: `Run one verb invocation on a path, as if it was typed in the navigator
with the path selected. With --preview, only tell what would be done.`,
		Example: `  tread exec notes.txt mv ../archive/notes.txt
  tread exec --preview . md build/out`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to resolve %q", args[0])
			}
			sel := types.NewSelection(path)
			invocation := strings.Join(args[1:], " ")

			opts.launchArgs.Root = sel.Path
			if !sel.IsDir {
				opts.launchArgs.Root = filepath.Dir(sel.Path)
			}
			launcher := &external.ExecLauncher{
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			}
			dispatcher, _, err := opts.newDispatcher(launcher)
			if err != nil {
				return err
			}

			if preview {
				status := dispatcher.Status(invocation, sel)
				if status.IsError {
					return errors.New(status.Message)
				}
				fmt.Fprintln(cmd.OutOrStdout(), status.Message)
				return nil
			}

			res := dispatcher.Invoke(invocation, sel)
			log.LogWithFields(log.F("invocation", invocation), log.F("path", sel.Path)).Debugf("result: %s", res)
			switch res.Kind {
			case app.DisplayError:
				return errors.New(res.Message)
			case app.Launch:
				return launcher.Launch(res.Launchable)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "print what the invocation would do without running it")
	return cmd
}
