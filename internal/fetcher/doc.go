// Package fetcher retrieves raw page content for target URLs.
//
// Two modes are provided: a static HTTP fetch for server-rendered pages, and
// a headless-browser fetch for sites that only populate their county listings
// client-side. Both identify as a desktop browser since several target sites
// reject default client identifiers. Failures are typed so callers can
// distinguish timeouts, network errors, and non-success statuses.
package fetcher
