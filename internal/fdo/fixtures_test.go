// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fdo

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mardi-fdo/pkg/types"
)

const (
	entityNS = "https://portal.mardi4nfdi.de/entity/"
	objectNS = "https://fdo.portal.mardi4nfdi.de/fdo/"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func newTestTranslator(opts ...Option) *Translator {
	return NewTranslator(append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

// --- claim builders for fixtures ---

func refStmt(qid string) string {
	return fmt.Sprintf(`{"mainsnak": {"datavalue": {"type": "wikibase-entityid", "value": {"entity-type": "item", "id": %q}}}}`, qid)
}

// untypedRefStmt mirrors instance-of statements that carry no type tag.
func untypedRefStmt(qid string) string {
	return fmt.Sprintf(`{"mainsnak": {"datavalue": {"value": {"id": %q}}}}`, qid)
}

func strStmt(v string) string {
	return fmt.Sprintf(`{"mainsnak": {"datavalue": {"type": "string", "value": %q}}}`, v)
}

func timeStmt(v string) string {
	return fmt.Sprintf(`{"mainsnak": {"datavalue": {"type": "time", "value": {"time": %q, "precision": 11}}}}`, v)
}

// claimsJSON joins property -> statements into a claims object.
func claimsJSON(props map[string][]string) string {
	parts := make([]string, 0, len(props))
	for prop, stmts := range props {
		parts = append(parts, fmt.Sprintf("%q: [%s]", prop, strings.Join(stmts, ",")))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// entityJSON builds a wbgetentities entity record.
func entityJSON(label, description, modified string, props map[string][]string) string {
	var b strings.Builder
	b.WriteString("{")
	if label != "" {
		fmt.Fprintf(&b, `"labels": {"en": {"language": "en", "value": %q}},`, label)
	}
	if description != "" {
		fmt.Fprintf(&b, `"descriptions": {"en": {"language": "en", "value": %q}},`, description)
	}
	if modified != "" {
		fmt.Fprintf(&b, `"modified": %q,`, modified)
	}
	fmt.Fprintf(&b, `"claims": %s}`, claimsJSON(props))
	return b.String()
}

func decodeEntity(t *testing.T, raw string) *types.Entity {
	t.Helper()
	var e types.Entity
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	return &e
}

// toJSONMap round-trips a document into a generic map so assertions look at
// the emitted JSON-LD shape.
func toJSONMap(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}
