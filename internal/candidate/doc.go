// Package candidate provides types for tracking prospective political
// candidates through the recruitment funnel.
//
// Candidates are linked to county contact records by normalized display-name
// matching rather than a stored foreign key; the two entities are owned and
// edited independently, and the link is display-only.
package candidate
