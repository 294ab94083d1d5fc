// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fdo

import (
	"github.com/pdiddy/mardi-fdo/internal/claims"
	"github.com/pdiddy/mardi-fdo/pkg/types"
)

// Dataset and software properties shared with articles: author (P16), DOI
// (P27), publication date (P28).
const (
	propLicense      = "P163"
	propFileFormat   = "P204"
	propDownloadURL  = "P205"
	propZenodoID     = "P227"
	propDescribedBy  = "P286"
	propOpenMLID     = "P1473"
	propCommunity    = "P1495"
	zenodoRecordBase = "https://zenodo.org/record/"
	openMLBase       = "https://www.openml.org/d/"
)

var datasetRules = []fieldRule{
	{"datePublished", date(propPublicationDate)},
	{"creator", links(propAuthor)},
	{"license", links(propLicense)},
	{"about", links(propCommunity)},
	{"citation", links(propDescribedBy)},
}

// BuildDataset builds a schema.org Dataset profile. The download URL, when
// present, is returned as PrimaryURL.
func (t *Translator) BuildDataset(qid string, e *types.Entity) Built {
	c := e.Claims
	id := t.ns.Object + qid

	p := baseProfile(schemaContextSlash, "Dataset", id, e.Label(t.lang, qid), e.Description(t.lang))
	apply(p, t.ns, c, datasetRules)

	if doi := stringClaim(c, propDOI); doi != "" {
		p["identifier"] = doiIdentifier(doi)
		appendSameAs(p, doiURL(doi))
	}

	download := stringClaim(c, propDownloadURL)
	if download != "" {
		var format *types.Link
		// Only the first declared file format is used.
		if formats := claims.SchemaLinks(t.ns.Entity, claims.ReferenceIDs(c, propFileFormat)); len(formats) > 0 {
			format = &formats[0]
		}
		p["distribution"] = distribution(download, format)
	}

	if zenodo := stringClaim(c, propZenodoID); zenodo != "" {
		appendSameAs(p, zenodoRecordBase+zenodo)
	}
	if openml := stringClaim(c, propOpenMLID); openml != "" {
		appendSameAs(p, openMLBase+openml)
	}

	return Built{Profile: p, PrimaryURL: download}
}
