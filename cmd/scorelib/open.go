package main

import (
	"fmt"

	"github.com/fwojciec/scorelib"
)

// Run executes the open command. It records the access and prints the raw
// file path so the score can be handed to any PDF viewer.
func (c *OpenCmd) Run(deps *Dependencies) error {
	doc, err := deps.Library.Open(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scorelib.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, deps.Scores.ScorePath(doc.ID))
	return nil
}
