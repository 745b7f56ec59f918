package remote

import (
	"strings"

	mandel "github.com/marben/mandelbench"
)

// Slug is the URL name of a landmark, e.g. "seahorse-valley".
func Slug(l mandel.Landmark) string {
	return strings.ToLower(strings.ReplaceAll(l.Name, " ", "-"))
}

// LookupLandmark finds the landmark whose slug is slug.
func LookupLandmark(slug string) (mandel.Landmark, bool) {
	for _, l := range mandel.Landmarks {
		if Slug(l) == slug {
			return l, true
		}
	}
	return mandel.Landmark{}, false
}

// Slugs lists the URL names of all landmarks in viewing order.
func Slugs() []string {
	slugs := make([]string, len(mandel.Landmarks))
	for i, l := range mandel.Landmarks {
		slugs[i] = Slug(l)
	}
	return slugs
}
