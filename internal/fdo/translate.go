// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fdo

import (
	"fmt"
	"time"

	"github.com/pdiddy/mardi-fdo/pkg/types"
)

const (
	defaultLanguage = "en"

	// unknownType is the @type of a minimal document whose entity has no
	// instance-of value.
	unknownType = "mardi:UnknownType"

	entityMediaType = "application/vnd.mardi.entity+json"
)

// Translator turns fetched entities into FDO documents. It holds no mutable
// state and is safe for concurrent use.
type Translator struct {
	ns    types.Namespaces
	lang  string
	extra map[string]Kind
	now   func() time.Time
}

// Option configures a Translator.
type Option func(*Translator)

// WithNamespaces overrides the IRI namespaces.
func WithNamespaces(ns types.Namespaces) Option {
	return func(t *Translator) { t.ns = ns }
}

// WithLanguage selects the label and description language.
func WithLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.lang = lang
		}
	}
}

// WithTypeMap adds instance-of QIDs to the built-in type table.
func WithTypeMap(m map[string]Kind) Option {
	return func(t *Translator) {
		for qid, k := range m {
			t.extra[qid] = k
		}
	}
}

// WithClock sets the time source used when an entity has no timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Translator) { t.now = now }
}

// NewTranslator returns a Translator using the MaRDI namespaces and English
// labels unless overridden.
func NewTranslator(opts ...Option) *Translator {
	t := &Translator{
		ns:    types.DefaultNamespaces(),
		lang:  defaultLanguage,
		extra: make(map[string]Kind),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ParseTypeMap converts configured QID-to-kind-name entries.
func ParseTypeMap(m map[string]string) (map[string]Kind, error) {
	out := make(map[string]Kind, len(m))
	for qid, name := range m {
		k, err := ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("type_map entry %s: %w", qid, err)
		}
		out[qid] = k
	}
	return out, nil
}

// Classify is the package-level Classify with configured extra entries.
func (t *Translator) Classify(c types.Claims) (Kind, string) {
	kind, raw := Classify(c)
	if kind == KindUnknown && raw != "" {
		if k, ok := t.extra[raw]; ok {
			return k, raw
		}
	}
	return kind, raw
}

// ToFDO classifies the entity and returns either a wrapped envelope for a
// known kind or the minimal document for an unknown one.
func (t *Translator) ToFDO(qid string, e *types.Entity) (types.Document, error) {
	if e == nil {
		return nil, fmt.Errorf("translating %s: nil entity", qid)
	}

	kind, raw := t.Classify(e.Claims)

	var built Built
	switch kind {
	case KindArticle:
		built = t.BuildArticle(qid, e)
	case KindPerson:
		built = t.BuildPerson(qid, e)
	case KindDataset:
		built = t.BuildDataset(qid, e)
	case KindSoftware:
		built = t.BuildSoftware(qid, e)
	case KindUnknown:
		m := t.Minimal(qid, e, raw)
		return &m, nil
	default:
		return nil, fmt.Errorf("translating %s: no builder for kind %v", qid, kind)
	}

	created, modified := t.timestamps(e)
	env := Wrap(t.ns, EnvelopeInput{
		QID:          qid,
		Kind:         kind,
		Profile:      built.Profile,
		PrimaryURL:   built.PrimaryURL,
		SecondaryURL: built.SecondaryURL,
		Created:      created,
		Modified:     modified,
	})
	return &env, nil
}

// timestamps returns the entity's creation time (possibly empty) and a
// modification time that falls back to creation, then to now.
func (t *Translator) timestamps(e *types.Entity) (created, modified string) {
	created = e.Created
	switch {
	case e.Modified != "":
		modified = e.Modified
	case e.Created != "":
		modified = e.Created
	default:
		modified = t.now().UTC().Format(time.RFC3339)
	}
	return created, modified
}

// Minimal builds the reduced document used for entities without a
// dedicated profile. Its kernel carries label and description directly.
func (t *Translator) Minimal(qid string, e *types.Entity, rawType string) types.MinimalEnvelope {
	typ := rawType
	if typ == "" {
		typ = unknownType
	}
	entityIRI := t.ns.Entity + qid

	return types.MinimalEnvelope{
		Context: minimalContext(),
		ID:      entityIRI,
		Type:    typ,
		Kernel: types.MinimalKernel{
			Type:        typ,
			Name:        e.Label(t.lang, qid),
			Description: e.Description(t.lang),
		},
		Access: types.Access{
			AccessURL: entityIRI,
			MediaType: entityMediaType,
		},
		GeneratedAtTime: e.Modified,
		WasAttributedTo: Attribution,
	}
}

// minimalContext extends the envelope context with the kernel/access terms
// used by the flat minimal shape.
func minimalContext() []any {
	return []any{
		fdoContextIRI,
		map[string]string{
			"schema":    "https://schema.org/",
			"prov":      "http://www.w3.org/ns/prov#",
			"fdo":       "https://w3id.org/fdo/vocabulary/",
			"kernel":    "fdo:kernel",
			"access":    "fdo:access",
			"accessURL": "fdo:accessURL",
			"mediaType": "fdo:mediaType",
		},
	}
}
