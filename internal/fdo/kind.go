// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fdo translates Wikibase entities into FAIR Digital Object JSON-LD
// documents: it classifies an entity by its instance-of claim, builds the
// matching schema.org profile, and wraps it in a kernel/provenance envelope.
package fdo

import (
	"fmt"
	"strings"

	"github.com/pdiddy/mardi-fdo/pkg/types"
)

// Kind is the profile shape selected for an entity.
type Kind int

const (
	KindUnknown Kind = iota
	KindArticle
	KindPerson
	KindDataset
	KindSoftware
)

func (k Kind) String() string {
	switch k {
	case KindArticle:
		return "article"
	case KindPerson:
		return "person"
	case KindDataset:
		return "dataset"
	case KindSoftware:
		return "software"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name (as used in configuration) to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "article", "scholarlyarticle":
		return KindArticle, nil
	case "person":
		return KindPerson, nil
	case "dataset":
		return KindDataset, nil
	case "software", "softwaresourcecode":
		return KindSoftware, nil
	default:
		return KindUnknown, fmt.Errorf("unknown profile kind %q: use article, person, dataset, or software", name)
	}
}

// instanceOf is the Wikibase "instance of" property.
const instanceOf = "P31"

// Instance-of QIDs of the MaRDI knowledge graph with a dedicated profile.
const (
	QIDScholarlyArticle = "Q56887"
	QIDPerson           = "Q57162"
	QIDDataset          = "Q5984635"
	QIDSoftware         = "Q56866"
)

// KindFor maps an instance-of QID to its kind. Unmapped QIDs are KindUnknown.
func KindFor(qid string) Kind {
	switch qid {
	case QIDScholarlyArticle:
		return KindArticle
	case QIDPerson:
		return KindPerson
	case QIDDataset:
		return KindDataset
	case QIDSoftware:
		return KindSoftware
	default:
		return KindUnknown
	}
}

// Classify reads the first instance-of statement and returns its kind along
// with the raw type QID. Only the first statement is considered; an entity
// typed several ways is classified by whichever comes first. Without an
// instance-of value it returns KindUnknown and an empty raw type.
func Classify(c types.Claims) (Kind, string) {
	stmt, ok := c.First(instanceOf)
	if !ok {
		return KindUnknown, ""
	}
	raw, ok := stmt.Mainsnak.DataValue.EntityID()
	if !ok {
		return KindUnknown, ""
	}
	return KindFor(raw), raw
}

// typeIRI is the schema.org type IRI declared as digitalObjectType.
func (k Kind) typeIRI() string {
	switch k {
	case KindArticle:
		return "https://schema.org/ScholarlyArticle"
	case KindPerson:
		return "https://schema.org/Person"
	case KindDataset:
		return "https://schema.org/Dataset"
	case KindSoftware:
		return "https://schema.org/SoftwareSourceCode"
	default:
		return ""
	}
}

// envelopeType is the top-level @type of a wrapped document.
func (k Kind) envelopeType() string {
	if k == KindPerson {
		return "schema:Person"
	}
	return "DigitalObject"
}
