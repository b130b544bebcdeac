package presfile

// Copyright (c) 2025 Colin McRae

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/predrag3141/FPGroup/group"
)

// Document is the YAML form of a single presentation:
//
//	generators: 2
//	relators:
//	  - a b A B
type Document struct {
	Generators int      `yaml:"generators"`
	Relators   []string `yaml:"relators"`
}

// Expect holds the known answers for a catalogue entry. Empty fields are
// not checked.
type Expect struct {
	Generators *int   `yaml:"generators,omitempty"`
	Relators   *int   `yaml:"relators,omitempty"`
	Abelian    string `yaml:"abelian,omitempty"`
	Recognised string `yaml:"recognised,omitempty"`
}

// Entry is a named presentation with its known answers
type Entry struct {
	Name       string   `yaml:"name"`
	Generators int      `yaml:"generators"`
	Relators   []string `yaml:"relators"`
	Expect     Expect   `yaml:"expect"`
}

// Catalogue is a list of named presentations
type Catalogue struct {
	Presentations []Entry `yaml:"presentations"`
}

// Presentation parses the document's relators
func (d *Document) Presentation() (*group.Presentation, error) {
	retVal, err := group.NewFromStrings(d.Generators, d.Relators...)
	if err != nil {
		return nil, errors.Wrap(err, "Document-Presentation")
	}
	return retVal, nil
}

// Presentation parses the entry's relators
func (e *Entry) Presentation() (*group.Presentation, error) {
	retVal, err := group.NewFromStrings(e.Generators, e.Relators...)
	if err != nil {
		return nil, errors.Wrapf(err, "Entry-Presentation: %s", e.Name)
	}
	return retVal, nil
}

// NewDocument returns the document for p, with relators written in g0 g1
// form so that they read back for any number of generators
func NewDocument(p *group.Presentation) *Document {
	return &Document{Generators: p.CountGenerators(), Relators: p.RelatorStrings()}
}

// Load reads a presentation document from r
func Load(r io.Reader) (*group.Presentation, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "Load: decoding presentation")
	}
	retVal, err := doc.Presentation()
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	return retVal, nil
}

// LoadFile reads a presentation document from the named file
func LoadFile(path string) (*group.Presentation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "LoadFile: %s", path)
	}
	defer f.Close()
	retVal, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "LoadFile: %s", path)
	}
	return retVal, nil
}

// Save writes p to w as a presentation document
func Save(w io.Writer, p *group.Presentation) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(NewDocument(p)); err != nil {
		return errors.Wrap(err, "Save: encoding presentation")
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrap(err, "Save")
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "Save")
	}
	return nil
}

// LoadCatalogue reads a catalogue from r and checks that every entry parses
func LoadCatalogue(r io.Reader) (*Catalogue, error) {
	var retVal Catalogue
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&retVal); err != nil {
		return nil, errors.Wrap(err, "LoadCatalogue: decoding catalogue")
	}
	for i := range retVal.Presentations {
		if _, err := retVal.Presentations[i].Presentation(); err != nil {
			return nil, errors.Wrapf(err, "LoadCatalogue: entry %d", i)
		}
	}
	return &retVal, nil
}

// LoadCatalogueFile reads a catalogue from the named file
func LoadCatalogueFile(path string) (*Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "LoadCatalogueFile: %s", path)
	}
	defer f.Close()
	retVal, err := LoadCatalogue(f)
	if err != nil {
		return nil, errors.Wrapf(err, "LoadCatalogueFile: %s", path)
	}
	return retVal, nil
}
