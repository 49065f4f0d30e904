package main

import (
	"io"
	"os"

	"tread/internal/app"
	"tread/internal/config"
	"tread/internal/errors"
	"tread/internal/external"
	"tread/internal/log"
	"tread/internal/tui"
	"tread/internal/verb"
	"tread/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by the commands and what they load
type rootOptions struct {
	cfgFile string
	debug   bool
	logFile string

	launchArgs config.LaunchArgs

	cfg     *config.Config
	logSink io.Closer
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "tread [directory]",
		Short: "A terminal file navigator running verbs on the selected file",
		Long: `tread lists a directory and runs verbs on the selected entry.

Type ':' followed by a verb name or shortcut (eg ':mv ../old.txt') or hit a
verb key. Verbs like 'cd' must run in the parent shell: launch tread through
the 'td' shell function (see 'tread shell-function') for them to work.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.setupLogging(); err != nil {
				return err
			}
			return opts.loadConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logSink != nil {
				opts.logSink.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.launchArgs.Root = args[0]
			}
			return runNavigator(cmd, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "conf", "", "config file (default is $HOME/.config/tread/conf.toml)")
	pf.BoolVar(&opts.debug, "debug", false, "log debug messages")
	pf.StringVar(&opts.logFile, "log-file", "", "file receiving the logs (logs are discarded when not set)")
	pf.StringVar(&opts.launchArgs.CmdExportPath, "outcmd", "", "file where commands to run in the parent shell are appended")
	pf.StringVar(&opts.launchArgs.FileExportPath, "out", "", "file where the selected path is appended on print_path")
	pf.BoolVarP(&opts.launchArgs.ShowHidden, "hidden", "a", false, "show hidden files")

	rootCmd.AddCommand(newVerbsCmd(opts))
	rootCmd.AddCommand(newExecCmd(opts))
	rootCmd.AddCommand(newShellFunctionCmd())

	return rootCmd
}

// setupLogging sends the logs to the log file, away from the terminal
// owned by the TUI
func (o *rootOptions) setupLogging() error {
	log.SetDebug(o.debug)
	if o.logFile == "" {
		log.Configure(log.WithOutput(io.Discard))
		return nil
	}
	f, err := os.OpenFile(o.logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "failed to open log file")
	}
	o.logSink = f
	log.Configure(log.WithOutput(f))
	return nil
}

// loadConfig reads the configuration. The default one is written on first
// launch so that users find it where they expect it.
func (o *rootOptions) loadConfig() error {
	path := o.cfgFile
	if path == "" {
		var err error
		if path, err = config.DefaultLocation(); err != nil {
			return errors.Wrap(err, "failed to locate configuration")
		}
		written, err := config.WriteDefault(path)
		if err != nil {
			log.LogWithFields(log.F("path", path), log.F("error", err)).Warn("cannot write default configuration")
		} else if written {
			log.LogWithFields(log.F("path", path)).Info("default configuration written")
		}
	} else if _, err := os.Stat(path); os.IsNotExist(err) {
		// only the default location falls back to the default verbs
		return errors.NewConfigError("configuration file not found", path, errors.ConfigNotFound, err)
	}

	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		return err
	}
	if cfg.Settings.ShowHidden {
		o.launchArgs.ShowHidden = true
	}
	o.cfg = cfg
	return nil
}

// newDispatcher builds the verb store from the configuration. A verb which
// can't be built prevents tread from starting.
func (o *rootOptions) newDispatcher(launcher external.Launcher) (*app.Dispatcher, *app.State, error) {
	store, err := verb.NewStoreFromConfig(o.cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "bad configuration")
	}
	state, err := app.NewState(o.launchArgs)
	if err != nil {
		return nil, nil, err
	}
	return app.NewDispatcher(store, o.launchArgs, launcher, state), state, nil
}

func runNavigator(cmd *cobra.Command, opts *rootOptions) error {
	launcher := &external.ExecLauncher{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
	dispatcher, state, err := opts.newDispatcher(launcher)
	if err != nil {
		return err
	}
	if info, err := os.Stat(state.Root); err != nil || !info.IsDir() {
		return errors.Newf("not a directory: %s", state.Root)
	}

	watcher, err := watch.New()
	if err != nil {
		log.LogWithFields(log.F("error", err)).Warn("directory watching disabled")
		watcher = nil
	} else if err := watcher.Start(); err != nil {
		return err
	} else {
		defer watcher.Stop()
	}

	m := tui.New(dispatcher, state, watcher)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "error running TUI")
	}

	pending := m.Pending()
	if pending == nil {
		return nil
	}
	log.Infof("launching %s", pending)
	return launcher.Launch(pending)
}
