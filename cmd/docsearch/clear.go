package main

import (
	"fmt"

	"github.com/fwojciec/docsearch"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if err := deps.Cache.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Cleared cached snapshot.")
	return nil
}
