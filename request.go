package sitekb

// CrawlRequest describes a single crawl run. It is constructed once per
// invocation and read-only thereafter.
type CrawlRequest struct {
	// SeedURLs are the starting URLs. The first seed determines the crawl's
	// base domain: pages on any other host are never emitted.
	SeedURLs []string

	// Recursive enables link-following discovery when the site declares no
	// sitemap. It has no effect when sitemap discovery succeeds, since the
	// sitemap is treated as the authoritative page list.
	Recursive bool

	// TranslateTo is an optional ISO 639-1 language code. When set, extracted
	// text is translated before the document is emitted.
	TranslateTo string
}

// Validate returns an error if the request cannot be executed.
func (r *CrawlRequest) Validate() error {
	if len(r.SeedURLs) == 0 {
		return Errorf(EINVALID, "crawl request requires at least one seed URL")
	}
	for _, u := range r.SeedURLs {
		if u == "" {
			return Errorf(EINVALID, "crawl request seed URL must not be empty")
		}
	}
	return nil
}
