// Package synchronizer owns the fetch, refresh and error lifecycle of each remote
// collection and publishes results into a store.MemoryStore.
//
// Every cycle follows idle -> loading -> ready|errored. A failed cycle stores a
// display-safe message and keeps whatever value was already published.
package synchronizer
