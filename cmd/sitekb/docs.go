package main

import (
	"fmt"

	"github.com/fwojciec/sitekb"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
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
		fmt.Fprintf(deps.Stderr, "error: collection %q has no documents. To re-crawl, run 'sitekb add %s <url> --force'.\n", c.Name, c.Name)
		return sitekb.Errorf(sitekb.ENOTFOUND, "collection %q has no documents", c.Name)
	}

	if c.Full {
		for _, doc := range docs {
			fmt.Fprintf(deps.Stdout, "=== %s ===\n\n%s\n\n", doc.SourceURL, doc.Content)
		}
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents for %s (%d total):\n\n", c.Name, len(docs))
	for i, doc := range docs {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n", i+1, doc.SourceURL)
	}

	return nil
}
