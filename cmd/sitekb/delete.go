package main

import (
	"fmt"

	"github.com/fwojciec/sitekb"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return sitekb.Errorf(sitekb.EINVALID, "use --force to confirm deletion")
	}

	collections, err := deps.Collections.FindCollections(deps.Ctx, sitekb.CollectionFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitekb.ErrorMessage(err))
		return err
	}

	if len(collections) == 0 {
		fmt.Fprintf(deps.Stderr, "error: collection %q not found. Use 'sitekb list' to see available collections.\n", c.Name)
		return sitekb.Errorf(sitekb.ENOTFOUND, "collection %q not found", c.Name)
	}

	collection := collections[0]
	if err := deps.Collections.DeleteCollection(deps.Ctx, collection.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitekb.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted collection %q\n", collection.Name)
	return nil
}
