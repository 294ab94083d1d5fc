// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the mardi-fdo service:
// the raw Wikibase entity as returned by wbgetentities, the FDO documents
// emitted by the translator, and service configuration.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Datavalue type tags used by the Wikibase JSON format.
const (
	ValueEntityID = "wikibase-entityid"
	ValueString   = "string"
	ValueTime     = "time"
)

// LangValue is a language-tagged string (label or description).
type LangValue struct {
	Language string `json:"language" yaml:"language"`
	Value    string `json:"value" yaml:"value"`
}

// Entity is a Wikibase item as returned by the wbgetentities API.
// It is read-only once decoded.
type Entity struct {
	// ID is the QID of the item (e.g. "Q2055155").
	ID string `json:"id" yaml:"id"`

	// Labels and Descriptions are keyed by language code.
	Labels       map[string]LangValue `json:"labels,omitempty" yaml:"labels,omitempty"`
	Descriptions map[string]LangValue `json:"descriptions,omitempty" yaml:"descriptions,omitempty"`

	// Claims holds the statements keyed by property ID.
	Claims Claims `json:"claims,omitempty" yaml:"claims,omitempty"`

	// Created and Modified are backend timestamps; either may be empty.
	Created  string `json:"created,omitempty" yaml:"created,omitempty"`
	Modified string `json:"modified,omitempty" yaml:"modified,omitempty"`

	// Missing is set by the backend when the requested QID does not exist.
	Missing *string `json:"missing,omitempty" yaml:"-"`
}

// Label returns the label in lang, or fallback when there is none.
func (e *Entity) Label(lang, fallback string) string {
	if v, ok := e.Labels[lang]; ok && v.Value != "" {
		return v.Value
	}
	return fallback
}

// Description returns the description in lang, or "" when there is none.
func (e *Entity) Description(lang string) string {
	return e.Descriptions[lang].Value
}

// IsMissing reports whether the backend flagged the entity as nonexistent.
func (e *Entity) IsMissing() bool {
	return e.Missing != nil
}

// Claims maps property IDs (e.g. "P31") to their statements.
type Claims map[string][]Statement

// UnmarshalJSON accepts a JSON object of statement lists. The Wikibase API
// serializes an empty claim map as an empty array, so "[]" decodes to an
// empty Claims. Any other shape is an upstream contract violation and
// yields ErrMalformedClaims.
func (c *Claims) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*c = nil
		return nil
	case bytes.Equal(trimmed, []byte("[]")):
		*c = Claims{}
		return nil
	}

	var m map[string][]Statement
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedClaims, err)
	}
	*c = m
	return nil
}

// First returns the first statement for prop.
func (c Claims) First(prop string) (Statement, bool) {
	stmts := c[prop]
	if len(stmts) == 0 {
		return Statement{}, false
	}
	return stmts[0], true
}

// Statement is one claim about an entity.
type Statement struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Rank     string `json:"rank,omitempty" yaml:"rank,omitempty"`
	Mainsnak Snak   `json:"mainsnak" yaml:"mainsnak"`
}

// Snak is the property/value pair carried by a statement.
type Snak struct {
	SnakType  string     `json:"snaktype,omitempty" yaml:"snaktype,omitempty"`
	Property  string     `json:"property,omitempty" yaml:"property,omitempty"`
	DataType  string     `json:"datatype,omitempty" yaml:"datatype,omitempty"`
	DataValue *DataValue `json:"datavalue,omitempty" yaml:"datavalue,omitempty"`
}

// DataValue is a tagged value. The payload is decoded on demand so that an
// unexpected shape degrades to "absent" instead of failing the whole entity.
type DataValue struct {
	Type  string          `json:"type,omitempty" yaml:"type,omitempty"`
	Value json.RawMessage `json:"value,omitempty" yaml:"-"`
}

// EntityID returns the referenced item ID from an entity-id payload. It does
// not check the type tag.
func (v *DataValue) EntityID() (string, bool) {
	if v == nil || len(v.Value) == 0 {
		return "", false
	}
	var ref struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(v.Value, &ref); err != nil || ref.ID == "" {
		return "", false
	}
	return ref.ID, true
}

// StringValue returns the payload when it is a JSON string.
func (v *DataValue) StringValue() (string, bool) {
	if v == nil || len(v.Value) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v.Value, &s); err != nil {
		return "", false
	}
	return s, true
}

// TimeValue returns the "time" field of a time payload, unmodified.
func (v *DataValue) TimeValue() (string, bool) {
	if v == nil || len(v.Value) == 0 {
		return "", false
	}
	var t struct {
		Time string `json:"time"`
	}
	if err := json.Unmarshal(v.Value, &t); err != nil || t.Time == "" {
		return "", false
	}
	return t.Time, true
}
