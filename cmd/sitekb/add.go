package main

import (
	"fmt"

	"github.com/fwojciec/sitekb"
	"github.com/fwojciec/sitekb/crawl"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	// Preview mode: show discovered URLs without creating a collection
	if c.Preview {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URLs[0])
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitekb.ErrorMessage(err))
			return err
		}
		if len(urls) == 0 {
			fmt.Fprintln(deps.Stdout, "No sitemap found; the crawl would start from the seed URLs.")
			for _, u := range c.URLs {
				fmt.Fprintln(deps.Stdout, u)
			}
			return nil
		}
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	// Force mode: delete an existing collection of the same name first
	if c.Force {
		existing, err := deps.Collections.FindCollections(deps.Ctx, sitekb.CollectionFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitekb.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deps.Collections.DeleteCollection(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", sitekb.ErrorMessage(err))
				return err
			}
		}
	}

	collection := &sitekb.Collection{
		Name:        c.Name,
		SeedURLs:    c.URLs,
		Recursive:   c.Recursive,
		TranslateTo: c.TranslateTo,
	}

	if err := deps.Collections.CreateCollection(deps.Ctx, collection); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitekb.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added collection %q (%s)\n", c.Name, collection.ID)

	if deps.Crawler == nil {
		return nil
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			if event.Total > 0 {
				fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
			}
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	docs, err := deps.Crawler.Crawl(deps.Ctx, collection.CrawlRequest(), progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	for _, doc := range docs {
		doc.CollectionID = collection.ID
		if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitekb.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d pages\n", len(docs))
	return nil
}
