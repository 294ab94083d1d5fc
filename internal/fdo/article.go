// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fdo

import (
	"strings"

	"github.com/pdiddy/mardi-fdo/pkg/types"
)

// ScholarlyArticle properties.
const (
	propAuthor          = "P16"
	propDOI             = "P27"
	propPublicationDate = "P28"
	propArxivID         = "P21"
	propPublisher       = "P200"
	propCites           = "P223"
	propMainSubject     = "P226"
	propLicenseArticle  = "P275"
	propPageRange       = "P304"
	propLanguage        = "P407"
	propPublishedIn     = "P1433"
	propComment         = "P1448"
	propKeyword         = "P1450"
)

// arxivPDFBase is the arXiv full-text endpoint.
const arxivPDFBase = "https://arxiv.org/pdf/"

var articleRules = []fieldRule{
	{"datePublished", date(propPublicationDate)},
	{"author", links(propAuthor)},
	{"isPartOf", links(propPublishedIn)},
	{"publisher", links(propPublisher)},
	{"about", links(propMainSubject)},
	// inLanguage carries bare IRIs, not reference objects.
	{"inLanguage", iris(propLanguage)},
	{"license", links(propLicenseArticle)},
	// Keywords come from P1450; the claim key must keep its "P" prefix.
	{"keywords", links(propKeyword)},
	{"comment", literal(propComment)},
	{"citation", links(propCites)},
}

// BuildArticle builds a schema.org ScholarlyArticle profile. The arXiv full
// text URL, when an arXiv ID is present, is returned as SecondaryURL.
func (t *Translator) BuildArticle(qid string, e *types.Entity) Built {
	c := e.Claims
	id := t.ns.Entity + qid
	label := e.Label(t.lang, qid)

	p := baseProfile(schemaContext, "ScholarlyArticle", id, label, e.Description(t.lang))
	p["headline"] = label
	apply(p, t.ns, c, articleRules)

	if doi := stringClaim(c, propDOI); doi != "" {
		p["identifier"] = doiIdentifier(doi)
		p["sameAs"] = []string{doiURL(doi)}
	}

	if pages := stringClaim(c, propPageRange); pages != "" {
		setPagination(p, pages)
	}

	var fulltext string
	if arxiv := stringClaim(c, propArxivID); arxiv != "" {
		fulltext = arxivPDFBase + arxiv + ".pdf"
	}

	return Built{Profile: p, SecondaryURL: fulltext}
}

// setPagination splits a page range on its first hyphen. A range without a
// hyphen only sets pagination.
func setPagination(p types.Profile, pages string) {
	if start, end, found := strings.Cut(pages, "-"); found {
		if start != "" {
			p["pageStart"] = start
		}
		if end != "" {
			p["pageEnd"] = end
		}
	}
	p["pagination"] = pages
}
