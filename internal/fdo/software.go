// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fdo

import "github.com/pdiddy/mardi-fdo/pkg/types"

// SoftwareSourceCode properties.
const (
	propProgrammingLanguage = "P114"
	propSoftwareVersion     = "P132"
	propCRANPackage         = "P229"
	propRepositoryURL       = "P339"
	propSoftwareHeritageID  = "P1454"
	softwareHeritageBase    = "https://archive.softwareheritage.org/"
)

var softwareRules = []fieldRule{
	{"creator", links(propAuthor)},
	{"license", links(propLicense)},
	{"datePublished", date(propPublicationDate)},
	{"softwareVersion", literal(propSoftwareVersion)},
	// programmingLanguage keeps the raw QIDs.
	{"programmingLanguage", rawIDs(propProgrammingLanguage)},
	{"codeRepository", literal(propRepositoryURL)},
	{"citation", links(propDescribedBy)},
}

// BuildSoftware builds a schema.org SoftwareSourceCode profile. The download
// URL is returned as PrimaryURL; the CRAN reference manual, derived from a
// CRAN package name, as SecondaryURL.
func (t *Translator) BuildSoftware(qid string, e *types.Entity) Built {
	c := e.Claims
	id := t.ns.Object + qid

	p := baseProfile(schemaContextSlash, "SoftwareSourceCode", id, e.Label(t.lang, qid), e.Description(t.lang))
	apply(p, t.ns, c, softwareRules)

	download := stringClaim(c, propDownloadURL)
	if download != "" {
		p["distribution"] = distribution(download, nil)
	}

	if doi := stringClaim(c, propDOI); doi != "" {
		p["identifier"] = doiIdentifier(doi)
		appendSameAs(p, doiURL(doi))
	}
	if swhid := stringClaim(c, propSoftwareHeritageID); swhid != "" {
		appendSameAs(p, softwareHeritageBase+swhid)
	}

	var manual string
	if cran := stringClaim(c, propCRANPackage); cran != "" {
		manual = cranManualURL(cran)
	}

	return Built{Profile: p, PrimaryURL: download, SecondaryURL: manual}
}

func cranManualURL(pkg string) string {
	return "https://cran.r-project.org/web/packages/" + pkg + "/" + pkg + ".pdf"
}
