package main

import (
	"fmt"

	"github.com/fwojciec/scorelib"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	entries, err := deps.Library.List(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scorelib.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'scorelib add' to add one.")
		return nil
	}

	config, err := deps.Config.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scorelib.ErrorMessage(err))
		return err
	}

	field := config.SortBy
	if c.SortBy != "" {
		field = scorelib.SortField(c.SortBy)
	}
	direction := config.SortDirection
	if c.Direction != "" {
		direction = scorelib.SortDirection(c.Direction)
	}

	for _, e := range scorelib.SortEntries(entries, field, direction) {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", e.ID, e.Title, e.Composer, e.Instrument)
	}

	return nil
}
