// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast_test

import (
	"errors"
	"testing"

	"carvel.dev/yamlast/pkg/orderedmap"
	"carvel.dev/yamlast/pkg/yamlast"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyStructureIsEqualToOriginal(t *testing.T) {
	inputs := []string{
		"a: 1\nb:\n  - x\n  - y: z\n    w: [1, {k: v}]\n",
		"- |\n  literal\n- 'quoted'\n- \"double\"\n-\n- nested:\n",
		"key: value",
		"",
	}

	for _, input := range inputs {
		doc := yamlast.SafeLoad(input)
		copied, err := yamlast.CopyStructure(doc.Root)
		require.NoError(t, err)

		assert.True(t, yamlast.Equal(doc.Root, copied), "input %q", input)
		if copied != nil {
			assert.Equal(t, 0, copied.EndPosition())
			assert.Nil(t, copied.Parent())
		}
	}
}

func TestEqualIgnoresPositionsButNotValues(t *testing.T) {
	a := yamlast.SafeLoad("a: 1\nb: [x, y]\n").Root
	b := yamlast.SafeLoad("\n\na:   1\nb:\n  - x\n  - y\n").Root
	c := yamlast.SafeLoad("a: 1\nb: [y, x]\n").Root
	d := yamlast.SafeLoad("a: 1\n").Root

	assert.True(t, yamlast.Equal(a, b))
	assert.False(t, yamlast.Equal(a, c))
	assert.False(t, yamlast.Equal(a, d))
	assert.False(t, yamlast.Equal(a, nil))
	assert.True(t, yamlast.Equal(nil, nil))
}

func TestCopyStructureRejectsReferences(t *testing.T) {
	doc := yamlast.SafeLoad("a: &x 1\nb: *x\n")
	_, err := yamlast.CopyStructure(doc.Root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, yamlast.ErrNotImplemented))
	assert.Equal(t, `Visiting alias "x": not implemented`, err.Error())

	doc = yamlast.SafeLoad("- !include lib.yml\n")
	_, err = yamlast.CopyStructure(doc.Root)
	assert.ErrorIs(t, err, yamlast.ErrNotImplemented)
	assert.Equal(t, `Visiting include of "lib.yml": not implemented`, err.Error())
}

type kindCounter struct {
	counts map[yamlast.Kind]int
}

func (c *kindCounter) visitChildren(n yamlast.Node) (int, error) {
	c.counts[n.Kind()]++
	total := 1
	for _, child := range yamlast.Children(n) {
		sub, err := yamlast.Accept[int](c, child)
		if err != nil {
			return 0, err
		}
		total += sub
	}
	return total, nil
}

func (c *kindCounter) VisitScalar(n *yamlast.Scalar) (int, error)       { return c.visitChildren(n) }
func (c *kindCounter) VisitMapping(n *yamlast.Mapping) (int, error)     { return c.visitChildren(n) }
func (c *kindCounter) VisitSequence(n *yamlast.Sequence) (int, error)   { return c.visitChildren(n) }
func (c *kindCounter) VisitMap(n *yamlast.Map) (int, error)             { return c.visitChildren(n) }
func (c *kindCounter) VisitAnchorRef(n *yamlast.AnchorRef) (int, error) { return c.visitChildren(n) }
func (c *kindCounter) VisitIncludeRef(n *yamlast.IncludeRef) (int, error) {
	return c.visitChildren(n)
}

func TestAcceptDispatchesOnKind(t *testing.T) {
	doc := yamlast.SafeLoad("a: &x [1, 2]\nb: *x\nc: !include f.yml\nd:\n")
	counter := &kindCounter{counts: map[yamlast.Kind]int{}}

	total, err := yamlast.Accept[int](counter, doc.Root)
	require.NoError(t, err)

	assert.Equal(t, 14, total)
	assert.Equal(t, map[yamlast.Kind]int{
		yamlast.KindMap:        1,
		yamlast.KindMapping:    4,
		yamlast.KindScalar:     6,
		yamlast.KindSequence:   1,
		yamlast.KindAnchorRef:  1,
		yamlast.KindIncludeRef: 1,
	}, counter.counts)

	zero, err := yamlast.Accept[int](counter, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, zero)
}

func TestAsInterface(t *testing.T) {
	doc := yamlast.SafeLoad("name: app\nports: [80, 443]\nbase: &b\n  x: 1\ncopy: *b\nempty:\ninc: !include lib.yml\n")

	val, err := yamlast.AsInterface(doc.Root)
	require.NoError(t, err)

	expected := map[string]interface{}{
		"name":  "app",
		"ports": []interface{}{"80", "443"},
		"base":  map[string]interface{}{"x": "1"},
		"copy":  map[string]interface{}{"x": "1"},
		"empty": nil,
		"inc":   "!include lib.yml",
	}
	actual := orderedmap.Conversion{Object: val}.AsUnorderedStringMaps()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("Converted value mismatch (-expected +actual):\n%s", diff)
	}

	assert.Equal(t, []string{"name", "ports", "base", "copy", "empty", "inc"}, val.(*orderedmap.Map).Keys())
}

func TestConverterLimitsAliasExpansion(t *testing.T) {
	const data = `a: &a [x, x, x, x, x, x, x, x, x, x]
b: &b [*a, *a, *a, *a, *a, *a, *a, *a, *a, *a]
c: &c [*b, *b, *b, *b, *b, *b, *b, *b, *b, *b]
d: [*c, *c, *c, *c, *c, *c, *c, *c, *c, *c]
`
	doc := yamlast.SafeLoad(data)
	require.Empty(t, doc.Errors)

	_, err := yamlast.Accept[interface{}](&yamlast.Converter{MaxNodes: 1000}, doc.Root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expanded to more than 1000 nodes")
}

func TestDuplicateKeys(t *testing.T) {
	doc := yamlast.SafeLoad("a: 1\nb:\n  x: 1\n  x: 2\na: 3\nlist:\n  - k: 1\n    k: 2\n")

	dups := yamlast.DuplicateKeys(doc.Root)
	require.Len(t, dups, 3)

	assert.Equal(t, "x", dups[0].Key)
	assert.Equal(t, "a", dups[1].Key)
	assert.Equal(t, 0, dups[1].First.StartPosition())
	assert.Equal(t, 22, dups[1].Duplicate.StartPosition())
	assert.Equal(t, "k", dups[2].Key)
	assert.Equal(t, `duplicated mapping key "a" (first defined at offset 0)`, dups[1].Error())

	assert.Empty(t, yamlast.DuplicateKeys(yamlast.SafeLoad("a: 1\nb: {a: 2}\n").Root))
}
