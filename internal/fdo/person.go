// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fdo

import "github.com/pdiddy/mardi-fdo/pkg/types"

// Person properties.
const (
	propAffiliation = "P1416"
	propWebsite     = "P856"
	propORCID       = "P496"
)

const orcidBase = "https://orcid.org/"

var personRules = []fieldRule{
	{"affiliation", links(propAffiliation)},
}

// BuildPerson builds a schema.org Person profile. Persons carry no resource
// URLs.
func (t *Translator) BuildPerson(qid string, e *types.Entity) Built {
	c := e.Claims
	id := t.ns.Entity + qid

	p := baseProfile(schemaContext, "Person", id, e.Label(t.lang, qid), e.Description(t.lang))
	apply(p, t.ns, c, personRules)

	if website := stringClaim(c, propWebsite); website != "" {
		p["sameAs"] = []string{website}
	}

	if orcid := stringClaim(c, propORCID); orcid != "" {
		appendIdentifier(p, types.PropertyValue{
			Type:       "PropertyValue",
			PropertyID: "orcid",
			Value:      orcid,
			URL:        orcidBase + orcid,
		})
	}

	return Built{Profile: p}
}
