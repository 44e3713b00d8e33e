// Package statefile persists small JSON state blobs for the timer and bloom
// engines.
//
// Each logical state object maps to a single file under the data directory
// (for example timer.json, bloom.json). Saves overwrite the whole blob; there
// is no partial-update or append format. Loads are forgiving by design: a
// missing file or malformed JSON reports "no prior state" so callers fall
// back to defaults instead of failing. Concurrent writers follow
// last-writer-wins with no cross-process locking.
package statefile
