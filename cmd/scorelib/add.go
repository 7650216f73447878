package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/scorelib"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %q: %v\n", c.Path, err)
		return err
	}

	doc, err := deps.Library.Upload(deps.Ctx, data, filepath.Base(c.Path))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scorelib.ErrorMessage(err))
		return err
	}

	// Metadata flags become a follow-up edit so the stored record and the
	// catalog entry stay mirrored through the one mutation path.
	if c.Title != "" || c.Composer != "" || c.Instrument != "" {
		upd := scorelib.DocumentUpdate{}
		if c.Title != "" {
			upd.Title = &c.Title
		}
		if c.Composer != "" {
			upd.Composer = &c.Composer
		}
		if c.Instrument != "" {
			upd.Instrument = &c.Instrument
		}
		if doc, err = deps.Library.Edit(deps.Ctx, doc.ID, upd); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scorelib.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Added %q (%s)\n", doc.Title, doc.ID)
	return nil
}
