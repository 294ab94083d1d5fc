// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fdo

import "github.com/pdiddy/mardi-fdo/pkg/types"

const (
	// KernelVersion tags the kernel layout.
	KernelVersion = "v1"

	// Attribution names the source of every generated object.
	Attribution = "MaRDI Knowledge Graph"

	fdoContextIRI = "https://w3id.org/fdo/context/v1"
	pidPrefix     = "mardi:"
)

// Component descriptors registered from resource URLs.
const (
	componentFulltext = "fulltext"
	componentROCrate  = "rocrate"
	mediaTypePDF      = "application/pdf"
	mediaTypeZip      = "application/zip"
)

// EnvelopeInput is everything Wrap needs; it is assembled by the translator
// but can be built from literals.
type EnvelopeInput struct {
	QID          string
	Kind         Kind
	Profile      types.Profile
	PrimaryURL   string
	SecondaryURL string

	// Created is omitted from the kernel when empty.
	Created string

	// Modified is always emitted and doubles as the generation time.
	Modified string
}

// envelopeContext is the JSON-LD context of wrapped documents.
func envelopeContext() []any {
	return []any{
		fdoContextIRI,
		map[string]string{
			"schema": "https://schema.org/",
			"prov":   "http://www.w3.org/ns/prov#",
			"fdo":    "https://w3id.org/fdo/vocabulary/",
		},
	}
}

// Wrap assembles the kernel, profile and provenance blocks. It performs no
// I/O and does not inspect claims.
func Wrap(ns types.Namespaces, in EnvelopeInput) types.Envelope {
	fdoID := ns.Object + in.QID

	kernel := types.Kernel{
		ID:                fdoID,
		DigitalObjectType: in.Kind.typeIRI(),
		PrimaryIdentifier: pidPrefix + in.QID,
		KernelVersion:     KernelVersion,
		Immutable:         true,
		Created:           in.Created,
		Modified:          in.Modified,
		Components:        components(in),
	}

	return types.Envelope{
		Context: envelopeContext(),
		ID:      fdoID,
		Type:    in.Kind.envelopeType(),
		Kernel:  kernel,
		Profile: in.Profile,
		Provenance: types.Provenance{
			GeneratedAtTime: in.Modified,
			WasAttributedTo: Attribution,
		},
	}
}

// components returns nil, not an empty slice, when there is nothing to
// register so the kernel omits the key.
func components(in EnvelopeInput) []types.Component {
	switch {
	case in.Kind == KindArticle && in.SecondaryURL != "":
		return []types.Component{newComponent(componentFulltext, mediaTypePDF)}
	case in.Kind == KindDataset && in.PrimaryURL != "":
		return []types.Component{newComponent(componentROCrate, mediaTypeZip)}
	default:
		return nil
	}
}

func newComponent(name, mediaType string) types.Component {
	return types.Component{
		ID:          "#" + name,
		ComponentID: name,
		MediaType:   mediaType,
	}
}
