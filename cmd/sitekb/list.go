package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/sitekb"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	collections, err := deps.Collections.FindCollections(deps.Ctx, sitekb.CollectionFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitekb.ErrorMessage(err))
		return err
	}

	if len(collections) == 0 {
		fmt.Fprintln(deps.Stdout, "No collections found. Use 'sitekb add' to create one.")
		return nil
	}

	for _, col := range collections {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", col.ID, col.Name, strings.Join(col.SeedURLs, " "))
	}

	return nil
}
