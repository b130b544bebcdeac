package group

// Copyright (c) 2025 Colin McRae

import (
	"github.com/pkg/errors"
)

// ErrInvalidPresentation is returned when a relator refers to a generator
// the presentation does not have
var ErrInvalidPresentation = errors.New("invalid presentation")
