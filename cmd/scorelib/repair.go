package main

import (
	"fmt"

	"github.com/fwojciec/scorelib"
)

// Run executes the repair command.
func (c *RepairCmd) Run(deps *Dependencies) error {
	result, err := deps.Library.Reconcile(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scorelib.ErrorMessage(err))
		return err
	}

	if result.Adopted == 0 && result.Dropped == 0 && result.Repaired == 0 {
		fmt.Fprintln(deps.Stdout, "Catalog is consistent.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Adopted %d, dropped %d, repaired %d\n",
		result.Adopted, result.Dropped, result.Repaired)
	return nil
}
