package core

import "errors"

// ErrInvalidGeometry is returned when an entity or arena violates basic geometric sanity
var ErrInvalidGeometry = errors.New("invalid geometry")
