// Package store persists contact and candidate records as flat JSON
// documents.
//
// Every operation reads, modifies, and rewrites the whole document; there is
// no partial access and no locking. Concurrent writers racing on overlapping
// updates resolve last-writer-wins, which is an accepted limitation for this
// tool's single-operator usage. An unreadable or unparseable document reads
// as an empty collection so the service stays up on corruption.
package store
