// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

var (
	// ErrNotFound means the QID does not resolve in the Wikibase backend.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidIdentifier means the requested FDO identifier is malformed.
	ErrInvalidIdentifier = errors.New("invalid FDO identifier")

	// ErrMalformedClaims means the claims block is not a JSON object.
	ErrMalformedClaims = errors.New("malformed claims structure")

	// ErrUpstream means the Wikibase API answered with an unexpected status
	// or payload.
	ErrUpstream = errors.New("wikibase upstream failure")
)
