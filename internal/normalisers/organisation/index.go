// Package organisation resolves organisation identifier variants to their
// canonical opendatacommunities URIs.
//
// The index is built once from the reference table and the patch table,
// before the first row is processed, and is read-only afterwards.
package organisation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
)

// englishAuthority marks organisation ids that also get a derived
// digital-land.github.io URL registered as a variant.
const englishAuthority = "local-authority-eng"

// beforeLastSlash matches everything up to and including the final "/".
var beforeLastSlash = regexp.MustCompile(`.*/`)

// Index maps every known variant of an organisation identifier (full URI,
// end segment, statistical-geography code, derived URL, patch values) to
// the canonical opendatacommunities URI. All keys are lower-cased before
// insertion and before lookup.
type Index struct {
	uris map[string]string
}

// NewIndex builds the variant index from the reference table, then applies
// the patch table so patch entries may override or add variants. Patch rows
// with a blank or unknown organisation id add nothing.
func NewIndex(orgs []domain.Organisation, patches []domain.OrganisationPatch) *Index {
	idx := &Index{uris: make(map[string]string, len(orgs)*4)}

	byID := make(map[string]domain.Organisation, len(orgs))
	for _, org := range orgs {
		byID[org.Organisation] = org

		if org.OpenDataCommunities == "" {
			continue
		}
		uri := strings.ToLower(org.OpenDataCommunities)
		idx.uris[uri] = uri
		idx.uris[EndOfURI(uri)] = uri
		if code := strings.ToLower(org.StatisticalGeography); code != "" {
			idx.uris[code] = uri
		}

		if strings.Contains(org.Organisation, englishAuthority) {
			url := fmt.Sprintf("https://digital-land.github.io/organisation/%s/", org.Organisation)
			url = strings.ReplaceAll(strings.ToLower(url), "-eng:", "-eng/")
			idx.uris[url] = uri
		}
	}

	for _, patch := range patches {
		if patch.Organisation == "" {
			continue
		}
		org, ok := byID[patch.Organisation]
		if !ok || org.OpenDataCommunities == "" {
			continue
		}
		value := strings.ToLower(collapse(patch.Value))
		idx.uris[value] = strings.ToLower(org.OpenDataCommunities)
	}

	return idx
}

// Len returns the number of registered variants.
func (idx *Index) Len() int {
	return len(idx.uris)
}

// Lookup resolves a lower-cased variant to its canonical URI: first the
// value itself, then its end segment. Exact hits only, no fuzzy matching.
func (idx *Index) Lookup(value string) (string, bool) {
	if uri, ok := idx.uris[value]; ok {
		return uri, true
	}
	if uri, ok := idx.uris[EndOfURI(value)]; ok {
		return uri, true
	}
	return "", false
}

// EndOfURI returns the lower-cased text after the final "/", with any
// trailing "/" removed first.
func EndOfURI(value string) string {
	return beforeLastSlash.ReplaceAllString(strings.ToLower(strings.TrimRight(value, "/")), "")
}

// collapse removes every run of whitespace from s.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), "")
}
