// Package states holds the static per-state data the scraper works from:
// code to name mapping, canonical county lists, scrape targets, and the
// candidate URL patterns tried when a state's leadership page moves.
package states

// Names maps two-letter state codes to full names.
var Names = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MO": "Missouri",
	"MS": "Mississippi", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "DC": "District of Columbia",
}

// Suffixes maps states whose county equivalents use a different jurisdiction
// suffix. Everything else uses "County".
var Suffixes = map[string]string{
	"LA": "Parish",
	"AK": "Borough",
}

// Suffix returns the jurisdiction suffix for a state code.
func Suffix(code string) string {
	if s, ok := Suffixes[code]; ok {
		return s
	}
	return "County"
}

// Target is one state leadership page to scrape with the rendering engine.
type Target struct {
	Code string
	Name string
	URL  string
}

// Targets lists the JavaScript-heavy state party sites scraped in rendered
// mode, processed strictly in this order.
var Targets = []Target{
	{Code: "OH", Name: "Ohio", URL: "https://ohiogop.org/county-chairs"},
	{Code: "PA", Name: "Pennsylvania", URL: "https://pagop.org/county-leadership"},
	{Code: "IA", Name: "Iowa", URL: "https://www.iowagop.org/leadership"},
	{Code: "WI", Name: "Wisconsin", URL: "https://wisgop.org/county-leadership"},
	{Code: "MN", Name: "Minnesota", URL: "https://mngop.com/leadership"},
	{Code: "MI", Name: "Michigan", URL: "https://migop.org/county-leadership"},
	{Code: "IL", Name: "Illinois", URL: "https://ilgop.org/county-leadership"},
	{Code: "IN", Name: "Indiana", URL: "https://indianagop.com/county-leadership"},
	{Code: "TN", Name: "Tennessee", URL: "https://tngop.org/county-leadership"},
	{Code: "KY", Name: "Kentucky", URL: "https://rpk.org/local-gop"},
	{Code: "SC", Name: "South Carolina", URL: "https://scgop.com/counties"},
	{Code: "LA", Name: "Louisiana", URL: "https://lagop.com/parish-leadership"},
	{Code: "AZ", Name: "Arizona", URL: "https://azgop.com/county-leadership"},
	{Code: "CA", Name: "California", URL: "https://cagop.org/county-leadership"},
	{Code: "NY", Name: "New York", URL: "https://www.nygop.org/county-organizations"},
	{Code: "FL", Name: "Florida", URL: "https://www.floridagop.org/county-organizations"},
	{Code: "NC", Name: "North Carolina", URL: "https://ncgop.org/county-organizations"},
	{Code: "GA", Name: "Georgia", URL: "https://gagop.org/county-leadership"},
}

// URLPatterns lists alternative URLs to probe per state, in priority order,
// for sites whose canonical leadership page URL is unknown or has moved.
var URLPatterns = map[string][]string{
	"PA": {
		"https://pagop.org/about/counties/",
		"https://pagop.org/county-leadership/",
		"https://www.pagop.org/counties/",
	},
	"FL": {
		"https://www.floridagop.org/county-organizations/",
		"https://www.floridagop.org/leadership/",
		"https://floridagop.org/counties/",
	},
	"IA": {
		"https://iowagop.org/county-chairs/",
		"https://www.iowagop.org/county-leadership/",
		"https://www.iowagop.org/counties/",
	},
	"WI": {
		"https://wisgop.org/counties/",
		"https://wisgop.org/county-leadership/",
		"https://www.wisgop.org/leadership/",
	},
	"MN": {
		"https://mngop.com/counties/",
		"https://mngop.com/county-chairs/",
		"https://www.mngop.com/leadership/",
	},
	"MI": {
		"https://migop.org/counties/",
		"https://migop.org/county-leadership/",
		"https://www.migop.org/leadership/",
	},
	"IL": {
		"https://ilgop.org/counties/",
		"https://illinois.gop/counties/",
		"https://ilgop.org/leadership/",
	},
	"IN": {
		"https://indianagop.com/counties/",
		"https://indianagop.com/leadership/",
		"https://www.indianagop.com/county-organizations/",
	},
	"TN": {
		"https://tngop.org/counties/",
		"https://tngop.org/county-chairs/",
		"https://www.tngop.org/leadership/",
	},
	"KY": {
		"https://rpk.org/counties/",
		"https://rpk.org/county-leadership/",
		"https://kentuckygop.org/counties/",
	},
	"SC": {
		"https://scgop.com/counties/",
		"https://scgop.com/county-leadership/",
		"https://www.scgop.com/leadership/",
	},
	"LA": {
		"https://lagop.com/counties/",
		"https://lagop.com/parish-chairs/",
		"https://www.lagop.com/leadership/",
	},
	"AZ": {
		"https://azgop.com/counties/",
		"https://azgop.com/county-leadership/",
		"https://www.azgop.com/leadership/",
	},
	"CA": {
		"https://cagop.org/counties/",
		"https://cagop.org/county-leadership/",
		"https://www.cagop.org/leadership/",
	},
	"NY": {
		"https://nygop.org/counties/",
		"https://nygop.org/county-leadership/",
		"https://www.nygop.org/leadership/",
	},
	"NC": {
		"https://ncgop.org/counties/",
		"https://ncgop.org/county-leadership/",
		"https://www.ncgop.org/leadership/",
	},
	"GA": {
		"https://gagop.org/counties/",
		"https://gagop.org/county-leadership/",
		"https://www.gagop.org/leadership/",
	},
}
