package main

import (
	"fmt"

	"github.com/fwojciec/sitekb"
	"github.com/fwojciec/sitekb/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
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

	docs, err := deps.Documents.FindDocuments(deps.Ctx, sitekb.DocumentFilter{
		CollectionID: &collection.ID,
		SortBy:       sitekb.SortByPosition,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitekb.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: collection %q has no documents\n", c.Name)
		return sitekb.Errorf(sitekb.ENOTFOUND, "collection %q has no documents", c.Name)
	}

	store := fs.NewStore(c.Dir, collection.Name)
	for _, doc := range docs {
		if err := store.Stage(doc); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitekb.ErrorMessage(err))
			return err
		}
	}
	if err := store.Commit(); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitekb.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", len(docs), c.Dir+"/"+collection.Name)
	return nil
}
