package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/docsearch/freshness"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	snap, ok := deps.Cache.ReadSnapshot(deps.Ctx)
	if !ok {
		fmt.Fprintln(deps.Stdout, "No cached snapshot. Run 'docsearch list' to download one.")
		return nil
	}

	now := time.Now()
	if deps.Now != nil {
		now = deps.Now()
	}

	fmt.Fprintf(deps.Stdout, "Tag:          %s\n", valueOr(string(snap.TagName), "(none)"))
	if snap.LastCheckedAt.IsZero() {
		fmt.Fprintln(deps.Stdout, "Last checked: (never)")
	} else {
		age := now.Sub(snap.LastCheckedAt).Truncate(time.Second)
		fmt.Fprintf(deps.Stdout, "Last checked: %s (%s ago)\n", snap.LastCheckedAt.UTC().Format(time.RFC3339), age)
	}
	fmt.Fprintf(deps.Stdout, "Entries:      %d\n", len(snap.Metadata))
	fmt.Fprintf(deps.Stdout, "Digest:       %s\n", valueOr(snap.Digest, "(none)"))

	next := "release check"
	if snap.Metadata != nil && !snap.LastCheckedAt.IsZero() && now.Sub(snap.LastCheckedAt) <= freshness.StalenessWindow {
		next = "cache"
	}
	fmt.Fprintf(deps.Stdout, "Next lookup:  %s\n", next)
	return nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
