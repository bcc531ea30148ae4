// Package chair provides types and functions for county party leadership
// contact records.
//
// Each record is keyed by a deterministic ID derived from the state code and
// the normalized county name, so the same county always maps to the same
// record across scrape runs and manual edits. Normalization strips the
// jurisdiction suffix (County, Parish, Borough) for comparison only; the
// stored display name keeps it.
package chair
