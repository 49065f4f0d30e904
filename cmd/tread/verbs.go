package main

import (
	"fmt"

	"tread/internal/errors"
	"tread/internal/tui/styles"
	"tread/internal/verb"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newVerbsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verbs",
		Short: "List the available verbs",
		Long:  `List the configured and built-in verbs, in the order they're searched.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := verb.NewStoreFromConfig(opts.cfg)
			if err != nil {
				return errors.Wrap(err, "bad configuration")
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderVerbs(store))
			return nil
		},
	}
}

func renderVerbs(store *verb.Store) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "SHORTCUT", "KEY", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Theme.Title.MarginBottom(0)
			}
			return lipgloss.NewStyle()
		})

	for _, v := range store.Verbs() {
		description := v.Description
		if description == "" {
			description = "`" + v.Execution + "`"
		}
		t.Row(v.Invocation.String(), v.Shortcut, v.KeyDesc, description)
	}
	return t.Render()
}
