package main

// Copyright (c) 2025 Colin McRae

import (
	"os"

	"github.com/pkg/errors"

	"github.com/predrag3141/FPGroup/group"
	"github.com/predrag3141/FPGroup/presfile"
)

func savePresentation(path string, p *group.Presentation) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err = presfile.Save(f, p); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
