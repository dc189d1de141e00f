// Package mock provides hand-rolled mock implementations of sitekb
// interfaces for testing. Each mock exposes function fields that tests
// assign per-case.
package mock
