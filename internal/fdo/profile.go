// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fdo

import (
	"github.com/pdiddy/mardi-fdo/internal/claims"
	"github.com/pdiddy/mardi-fdo/pkg/types"
)

// schema.org context IRIs. Articles and persons use the bare host, datasets
// and software the trailing-slash form; consumers have relied on both.
const (
	schemaContext      = "https://schema.org"
	schemaContextSlash = "https://schema.org/"
)

// Built is the result of a profile builder. Resource URLs are surfaced
// separately so the envelope can register components without re-reading
// claims.
type Built struct {
	Profile types.Profile

	// PrimaryURL is a downloadable payload (dataset or software archive).
	PrimaryURL string

	// SecondaryURL is a derived document (article full text, CRAN manual).
	SecondaryURL string
}

// extractor reads one profile value from claims. ok is false when the
// claim is missing or resolved to an empty value.
type extractor func(ns types.Namespaces, c types.Claims) (value any, ok bool)

// fieldRule maps a source extractor onto a profile key.
type fieldRule struct {
	key     string
	extract extractor
}

// apply sets every rule whose extractor yields a value.
func apply(p types.Profile, ns types.Namespaces, c types.Claims, rules []fieldRule) {
	for _, r := range rules {
		if v, ok := r.extract(ns, c); ok {
			p[r.key] = v
		}
	}
}

// links yields schema.org references for every entity-reference statement.
func links(prop string) extractor {
	return func(ns types.Namespaces, c types.Claims) (any, bool) {
		ids := claims.ReferenceIDs(c, prop)
		if len(ids) == 0 {
			return nil, false
		}
		return claims.SchemaLinks(ns.Entity, ids), true
	}
}

// iris yields bare entity IRIs instead of reference objects.
func iris(prop string) extractor {
	return func(ns types.Namespaces, c types.Claims) (any, bool) {
		ids := claims.ReferenceIDs(c, prop)
		if len(ids) == 0 {
			return nil, false
		}
		return claims.EntityIRIs(ns.Entity, ids), true
	}
}

// rawIDs yields the referenced QIDs unchanged.
func rawIDs(prop string) extractor {
	return func(_ types.Namespaces, c types.Claims) (any, bool) {
		ids := claims.ReferenceIDs(c, prop)
		if len(ids) == 0 {
			return nil, false
		}
		return ids, true
	}
}

// literal yields the first non-empty string value.
func literal(prop string) extractor {
	return func(_ types.Namespaces, c types.Claims) (any, bool) {
		s, ok := claims.StringLiteral(c, prop)
		if !ok || s == "" {
			return nil, false
		}
		return s, true
	}
}

// date yields the first normalized time value.
func date(prop string) extractor {
	return func(_ types.Namespaces, c types.Claims) (any, bool) {
		s, ok := claims.TimeLiteral(c, prop)
		if !ok || s == "" {
			return nil, false
		}
		return s, true
	}
}

// stringClaim is StringLiteral with absence collapsed to "".
func stringClaim(c types.Claims, prop string) string {
	s, _ := claims.StringLiteral(c, prop)
	return s
}

// baseProfile returns the fields every profile carries.
func baseProfile(context, schemaType, id, name, description string) types.Profile {
	return types.Profile{
		"@context":    context,
		"@type":       schemaType,
		"@id":         id,
		"name":        name,
		"description": description,
		"url":         id,
	}
}

// doiIdentifier builds the PropertyValue for a DOI.
func doiIdentifier(doi string) types.PropertyValue {
	return types.PropertyValue{
		Type:       "PropertyValue",
		PropertyID: "doi",
		Value:      doi,
		URL:        doiURL(doi),
	}
}

func doiURL(doi string) string {
	return "https://doi.org/" + doi
}

// appendSameAs adds url to the profile's sameAs list.
func appendSameAs(p types.Profile, url string) {
	existing, _ := p["sameAs"].([]string)
	p["sameAs"] = append(existing, url)
}

// appendIdentifier adds pv to the profile's identifier list. A bare
// identifier object already present is coerced into a list first.
func appendIdentifier(p types.Profile, pv types.PropertyValue) {
	switch existing := p["identifier"].(type) {
	case []types.PropertyValue:
		p["identifier"] = append(existing, pv)
	case types.PropertyValue:
		p["identifier"] = []types.PropertyValue{existing, pv}
	default:
		p["identifier"] = []types.PropertyValue{pv}
	}
}

// distribution builds a single-entry DataDownload list. format may be nil.
func distribution(contentURL string, format *types.Link) []types.DataDownload {
	return []types.DataDownload{{
		Type:           "DataDownload",
		ContentURL:     contentURL,
		EncodingFormat: format,
	}}
}
