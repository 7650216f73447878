package main

import (
	"fmt"

	"github.com/fwojciec/scorelib"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return scorelib.Errorf(scorelib.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Library.Remove(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scorelib.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s\n", c.ID)
	return nil
}
