// Package sitekb provides a local, CLI-based knowledge base builder.
// It discovers the pages of a website (sitemap first, link-following as a
// fallback), fetches and extracts their content, optionally translates it,
// and persists the resulting documents as a named collection ready for
// downstream indexing.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, sqlite/, gemini/).
package sitekb
