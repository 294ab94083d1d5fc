// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Namespaces holds the IRI bases used to mint identifiers. Identifiers are
// always the base followed by the QID, with no further normalization.
type Namespaces struct {
	// Entity is the knowledge-graph entity namespace.
	Entity string `json:"entity" yaml:"entity" mapstructure:"entity"`

	// Object is the FDO object namespace.
	Object string `json:"object" yaml:"object" mapstructure:"object"`

	// Access is the FDO access namespace.
	Access string `json:"access" yaml:"access" mapstructure:"access"`
}

// DefaultNamespaces returns the MaRDI portal namespaces.
func DefaultNamespaces() Namespaces {
	return Namespaces{
		Entity: "https://portal.mardi4nfdi.de/entity/",
		Object: "https://fdo.portal.mardi4nfdi.de/fdo/",
		Access: "https://fdo.portal.mardi4nfdi.de/access/",
	}
}

// Profile is a schema.org JSON-LD description of the resource. Values are
// strings, []Link, []string, PropertyValue, []PropertyValue or
// []DataDownload.
type Profile map[string]any

// Link is a JSON-LD node reference.
type Link struct {
	ID string `json:"@id" yaml:"@id"`
}

// PropertyValue is a schema.org PropertyValue identifier block.
type PropertyValue struct {
	Type       string `json:"@type" yaml:"@type"`
	PropertyID string `json:"propertyID" yaml:"propertyID"`
	Value      string `json:"value" yaml:"value"`
	URL        string `json:"url" yaml:"url"`
}

// DataDownload is a schema.org DataDownload distribution entry.
type DataDownload struct {
	Type           string `json:"@type" yaml:"@type"`
	ContentURL     string `json:"contentUrl" yaml:"contentUrl"`
	EncodingFormat *Link  `json:"encodingFormat,omitempty" yaml:"encodingFormat,omitempty"`
}

// Component describes a retrievable part of a digital object.
type Component struct {
	ID          string `json:"@id" yaml:"@id"`
	ComponentID string `json:"componentId" yaml:"componentId"`
	MediaType   string `json:"mediaType" yaml:"mediaType"`
}

// Kernel is the identity, type and versioning block of an FDO.
type Kernel struct {
	ID                string      `json:"@id" yaml:"@id"`
	DigitalObjectType string      `json:"digitalObjectType" yaml:"digitalObjectType"`
	PrimaryIdentifier string      `json:"primaryIdentifier" yaml:"primaryIdentifier"`
	KernelVersion     string      `json:"kernelVersion" yaml:"kernelVersion"`
	Immutable         bool        `json:"immutable" yaml:"immutable"`
	Created           string      `json:"created,omitempty" yaml:"created,omitempty"`
	Modified          string      `json:"modified" yaml:"modified"`
	Components        []Component `json:"fdo:hasComponent,omitempty" yaml:"fdo:hasComponent,omitempty"`
}

// Provenance records when and by whom the object was generated.
type Provenance struct {
	GeneratedAtTime string `json:"prov:generatedAtTime" yaml:"prov:generatedAtTime"`
	WasAttributedTo string `json:"prov:wasAttributedTo" yaml:"prov:wasAttributedTo"`
}

// Envelope is the FDO document emitted for entities of a known kind.
type Envelope struct {
	Context    []any      `json:"@context" yaml:"@context"`
	ID         string     `json:"@id" yaml:"@id"`
	Type       string     `json:"@type" yaml:"@type"`
	Kernel     Kernel     `json:"kernel" yaml:"kernel"`
	Profile    Profile    `json:"profile" yaml:"profile"`
	Provenance Provenance `json:"provenance" yaml:"provenance"`
}

// MinimalKernel carries the label and description of an entity whose type
// has no dedicated profile.
type MinimalKernel struct {
	Type        string `json:"@type" yaml:"@type"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Access points at the raw entity representation.
type Access struct {
	AccessURL string `json:"accessURL" yaml:"accessURL"`
	MediaType string `json:"mediaType" yaml:"mediaType"`
}

// MinimalEnvelope is the reduced document emitted for unknown kinds. It has
// no profile block and carries provenance as flat top-level fields.
type MinimalEnvelope struct {
	Context         []any         `json:"@context" yaml:"@context"`
	ID              string        `json:"@id" yaml:"@id"`
	Type            string        `json:"@type" yaml:"@type"`
	Kernel          MinimalKernel `json:"kernel" yaml:"kernel"`
	Access          Access        `json:"access" yaml:"access"`
	GeneratedAtTime string        `json:"prov:generatedAtTime" yaml:"prov:generatedAtTime"`
	WasAttributedTo string        `json:"prov:wasAttributedTo" yaml:"prov:wasAttributedTo"`
}

// Document is an FDO JSON-LD document of either shape.
type Document interface {
	DocumentID() string
	DocumentType() string
}

// DocumentID returns the document's @id.
func (e *Envelope) DocumentID() string { return e.ID }

// DocumentType returns the document's @type.
func (e *Envelope) DocumentType() string { return e.Type }

// DocumentID returns the document's @id.
func (m *MinimalEnvelope) DocumentID() string { return m.ID }

// DocumentType returns the document's @type.
func (m *MinimalEnvelope) DocumentType() string { return m.Type }
