package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/docsearch"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	state := docsearch.NewListState()
	if err := state.Load(deps.Ctx, deps.Metadata); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", state.ErrorMessage)
		return err
	}

	if len(state.Entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No documentation entries found.")
		return nil
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		for _, e := range state.Entries {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	}

	for _, e := range state.Entries {
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", e.Title, e.Type, e.URL)
	}
	return nil
}
