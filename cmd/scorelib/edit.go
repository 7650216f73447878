package main

import (
	"fmt"

	"github.com/fwojciec/scorelib"
)

// Run executes the edit command.
func (c *EditCmd) Run(deps *Dependencies) error {
	upd := scorelib.DocumentUpdate{
		Title:      c.Title,
		Composer:   c.Composer,
		Instrument: c.Instrument,
		SortOrder:  c.SortOrder,
		SideBySide: c.SideBySide,
		PageOffset: c.PageOffset,
	}

	doc, err := deps.Library.Edit(deps.Ctx, c.ID, upd)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scorelib.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated %q (%s)\n", doc.Title, doc.ID)
	return nil
}
