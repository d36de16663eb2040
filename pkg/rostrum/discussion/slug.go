package discussion

import "strings"

// IDExtractor reduces a route id parameter, possibly in compound slug form,
// to the stable identifier that should govern page identity. It must be
// total: any input, including the empty string, yields a result.
//
// The extraction rule is a swappable strategy because slug formats are not
// guaranteed stable across forum versions.
type IDExtractor func(raw string) string

// LeadingID is the default strategy: everything up to the first '-' of the
// slug ("42-winter-cleanup" becomes "42"). A slug with no '-' is returned
// unchanged.
func LeadingID(raw string) string {
	if i := strings.IndexByte(raw, '-'); i >= 0 {
		return raw[:i]
	}
	return raw
}
