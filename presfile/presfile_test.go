package presfile

// Copyright (c) 2025 Colin McRae

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/predrag3141/FPGroup/group"
	"github.com/predrag3141/FPGroup/word"
)

func TestLoadAndSave(t *testing.T) {
	input := "generators: 2\nrelators:\n  - a b A B\n  - g0^3\n"
	p, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, "< a b | a b a^-1 b^-1, a^3 >", p.String())

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, p))
	require.Equal(t, "generators: 2\nrelators:\n  - g0 g1 g0^-1 g1^-1\n  - g0^3\n", buf.String())

	q, err := Load(&buf)
	require.NoError(t, err)
	require.True(t, p.Equal(q))

	// Relators of the trivial presentation survive the round trip
	var trivial bytes.Buffer
	require.NoError(t, Save(&trivial, group.New(0)))
	q, err = Load(&trivial)
	require.NoError(t, err)
	require.Equal(t, "< >", q.String())
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		input    string
		sentinel error
	}{
		{"generators: 1\nrelators: [ab]\n", group.ErrInvalidPresentation},
		{"generators: 2\nrelators: [a^^2]\n", word.ErrParse},
	} {
		_, err := Load(strings.NewReader(tc.input))
		require.Error(t, err, tc.input)
		require.True(t, errors.Is(err, tc.sentinel), "%q: %v", tc.input, err)
	}

	// Unknown keys and malformed YAML are decoding errors
	_, err := Load(strings.NewReader("generators: 1\nrelator: [a]\n"))
	require.Error(t, err)
	_, err = Load(strings.NewReader("generators: [\n"))
	require.Error(t, err)
	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestCatalogue(t *testing.T) {
	input := `presentations:
  - name: klein
    generators: 2
    relators: [a b A b]
    expect:
      abelian: Z + Z_2
      recognised: Z~Z w/monodromy a ↦ a^-1
  - name: trefoil
    generators: 2
    relators: [a a a B B]
    expect:
      generators: 2
      relators: 1
`
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o600))
	c, err := LoadCatalogueFile(path)
	require.NoError(t, err)
	require.Len(t, c.Presentations, 2)

	klein := c.Presentations[0]
	require.Equal(t, "klein", klein.Name)
	require.Equal(t, "Z + Z_2", klein.Expect.Abelian)
	require.Nil(t, klein.Expect.Generators)
	p, err := klein.Presentation()
	require.NoError(t, err)
	require.Equal(t, []string{"g0 g1 g0^-1 g1"}, p.RelatorStrings())

	trefoil := c.Presentations[1]
	require.NotNil(t, trefoil.Expect.Generators)
	require.Equal(t, 2, *trefoil.Expect.Generators)
	require.Equal(t, 1, *trefoil.Expect.Relators)
	require.Equal(t, "", trefoil.Expect.Recognised)

	_, err = LoadCatalogue(strings.NewReader("presentations:\n  - name: bad\n    generators: 1\n    relators: [b]\n"))
	require.True(t, errors.Is(err, group.ErrInvalidPresentation))
}
