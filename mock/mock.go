// Package mock provides hand-rolled mock implementations of the mailscout
// interfaces for use in tests.
package mock
