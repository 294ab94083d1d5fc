// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package claims reads typed values out of a Wikibase claims block.
//
// Extraction never fails: a missing property, a statement without a
// datavalue, or a payload of the wrong shape is reported as absent.
package claims

import (
	"strings"

	"github.com/pdiddy/mardi-fdo/pkg/types"
)

// midnightSuffix marks a day-precision Wikibase time value.
const midnightSuffix = "T00:00:00Z"

// ReferenceIDs returns the item IDs of every statement under prop whose
// datavalue is tagged as an entity reference. Statements of other value
// types are skipped.
func ReferenceIDs(c types.Claims, prop string) []string {
	var ids []string
	for _, stmt := range c[prop] {
		dv := stmt.Mainsnak.DataValue
		if dv == nil || dv.Type != types.ValueEntityID {
			continue
		}
		if id, ok := dv.EntityID(); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// StringLiteral returns the string value of the first statement under prop.
// Later statements are ignored.
func StringLiteral(c types.Claims, prop string) (string, bool) {
	stmt, ok := c.First(prop)
	if !ok {
		return "", false
	}
	return stmt.Mainsnak.DataValue.StringValue()
}

// TimeLiteral returns the normalized time value of the first statement
// under prop.
func TimeLiteral(c types.Claims, prop string) (string, bool) {
	stmt, ok := c.First(prop)
	if !ok {
		return "", false
	}
	t, ok := stmt.Mainsnak.DataValue.TimeValue()
	if !ok {
		return "", false
	}
	return NormalizeTime(t), true
}

// NormalizeTime strips the leading sign of a Wikibase time value and
// collapses an exact UTC midnight to a bare date. Other precisions and
// offsets pass through unchanged.
//
//	"+2020-05-17T00:00:00Z" -> "2020-05-17"
//	"+2020-05-17T12:30:00Z" -> "2020-05-17T12:30:00Z"
func NormalizeTime(t string) string {
	t = strings.TrimLeft(t, "+")
	return strings.TrimSuffix(t, midnightSuffix)
}

// SchemaLinks formats ids as JSON-LD references into the entity namespace.
// Order is preserved and duplicates are kept.
func SchemaLinks(entityNS string, ids []string) []types.Link {
	if len(ids) == 0 {
		return nil
	}
	links := make([]types.Link, len(ids))
	for i, id := range ids {
		links[i] = types.Link{ID: entityNS + id}
	}
	return links
}

// EntityIRIs formats ids as bare IRI strings in the entity namespace.
func EntityIRIs(entityNS string, ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	iris := make([]string, len(ids))
	for i, id := range ids {
		iris[i] = entityNS + id
	}
	return iris
}
