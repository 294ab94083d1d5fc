// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fdo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/mardi-fdo/pkg/types"
)

// identifierPattern matches an FDO identifier: a QID, optionally suffixed
// with _FULLTEXT.
var identifierPattern = regexp.MustCompile(`(?i)^Q[0-9]+(?:_FULLTEXT)?$`)

// NormalizeIdentifier upper-cases raw and checks it against the FDO
// identifier syntax. Invalid input yields types.ErrInvalidIdentifier.
func NormalizeIdentifier(raw string) (string, error) {
	id := strings.ToUpper(raw)
	if !identifierPattern.MatchString(id) {
		return "", fmt.Errorf("%w: %q", types.ErrInvalidIdentifier, raw)
	}
	return id, nil
}
