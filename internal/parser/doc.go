// Package parser turns extracted page data into contact records, one per
// county at most.
//
// Extraction is an ordered list of rules, each a (pattern, cleanup, validity
// check) triple tried against the page body text; the first rule to produce a
// valid name wins, keeping output deterministic for a given snapshot. A
// county with no evidence at all produces no record — this is a scan for
// evidence, not a full-coverage template. The heuristics are intentionally
// approximate: they can pick up adjacent unrelated capitalized text and will
// miss chairs whose names sit far from the county name.
package parser
