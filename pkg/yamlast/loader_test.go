// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast_test

import (
	"strings"
	"testing"

	"carvel.dev/yamlast/pkg/yamlast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoDocuments = "---\nwhatever: true\n...\n---\nwhatever: false\n..."

func TestLoadAllYieldsDocumentsInOrder(t *testing.T) {
	var docs []*yamlast.Document
	yamlast.LoadAll(twoDocuments, func(doc *yamlast.Document) {
		docs = append(docs, doc)
	})

	require.Len(t, docs, 2)
	expectedValues := []string{"true", "false"}
	for i, doc := range docs {
		assert.Empty(t, doc.Errors)
		expected := yamlast.NewMap([]*yamlast.Mapping{
			yamlast.NewMapping(yamlast.NewScalar("whatever"), yamlast.NewScalar(expectedValues[i])),
		})
		assert.True(t, yamlast.Equal(expected, doc.Root), "document %d", i)
	}

	assert.Equal(t, 0, docs[0].StartPosition())
	assert.Equal(t, docs[0].EndPosition(), docs[1].StartPosition())
	assert.Equal(t, len(twoDocuments), docs[1].EndPosition())
}

func TestLoadRejectsExtraDocuments(t *testing.T) {
	doc, err := yamlast.Load(twoDocuments)
	require.NoError(t, err)

	require.Len(t, doc.Errors, 1)
	assert.Equal(t, "expected a single document in the stream, but found more", doc.Errors[0].Message)
	assert.Equal(t, 23, doc.Errors[0].Offset)
	assert.Equal(t, len(twoDocuments), doc.EndPosition())

	value, found := doc.Map().Get("whatever")
	require.True(t, found)
	assert.Equal(t, "true", value.(*yamlast.Scalar).Value)
}

func TestDocumentsTileTheInput(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"   \n\n",
		"# only a comment",
		"a: 1\n---\nb: 2\n",
		"a: 1\n...\n# trailing\n---\n",
		"%YAML 1.2\n---\na: 1\n...\n%YAML 1.2\n---\nb: 2",
		"---\n---\n---\n",
		"- x\n--- # inline\n- y\n...\n",
	}

	for _, input := range inputs {
		var docs []*yamlast.Document
		for doc := range yamlast.Documents(input) {
			docs = append(docs, doc)
		}

		require.NotEmpty(t, docs, "input %q", input)
		assert.Equal(t, 0, docs[0].StartPosition(), "input %q", input)
		for i := 1; i < len(docs); i++ {
			assert.Equal(t, docs[i-1].EndPosition(), docs[i].StartPosition(), "input %q", input)
		}
		assert.Equal(t, len(input), docs[len(docs)-1].EndPosition(), "input %q", input)

		var text strings.Builder
		for _, doc := range docs {
			text.WriteString(doc.Text())
		}
		assert.Equal(t, input, text.String())
	}
}

func TestDocumentsSegmentCounts(t *testing.T) {
	counts := map[string]int{
		"":                          1,
		"a: 1\n---\nb: 2\n":         2,
		"---\na: 1\n":               1,
		"a: 1\n...\n# trailing\n":   1,
		"a: 1\n...\nb: 2\n":         2,
		"%YAML 1.2\n---\na: 1\n":    1,
		"a: 1\n...\n%YAML 1.2\n---": 2,
	}
	for input, expected := range counts {
		count := 0
		yamlast.LoadAll(input, func(*yamlast.Document) { count++ })
		assert.Equal(t, expected, count, "input %q", input)
	}
}

func TestDocumentsCanStopEarlyAndRestart(t *testing.T) {
	seq := yamlast.Documents("a: 1\n---\nb: 2\n---\nc: 3\n")

	var first []*yamlast.Document
	for doc := range seq {
		first = append(first, doc)
		if len(first) == 2 {
			break
		}
	}
	require.Len(t, first, 2)

	var again []*yamlast.Document
	for doc := range seq {
		again = append(again, doc)
	}
	require.Len(t, again, 3)
	assert.NotSame(t, first[0], again[0])
	assert.True(t, yamlast.Equal(first[1].Root, again[1].Root))
}

func TestLoadAllParallelMatchesSequential(t *testing.T) {
	var src strings.Builder
	for i := 0; i < 50; i++ {
		src.WriteString("---\nname: doc\nitems:\n  - a\n  - [b, c]\nbroken: 'x\n  y'\n")
	}
	input := src.String()

	var sequential []*yamlast.Document
	yamlast.LoadAll(input, func(doc *yamlast.Document) { sequential = append(sequential, doc) })
	parallel := yamlast.LoadAllParallel(input, 8)

	require.Len(t, parallel, len(sequential))
	printer := yamlast.NewPrinterWithOpts(nil, yamlast.PrinterOpts{ExcludeRefs: true})
	for i := range sequential {
		assertEqual(t, printer.PrintStr(parallel[i]), printer.PrintStr(sequential[i]))
	}
}

func TestDocumentSetFromBytes(t *testing.T) {
	data := []byte("a: *x\n---\nb: [1, 2]\n---\n")

	for _, workers := range []int{0, 4} {
		docSet := yamlast.NewDocumentSetFromBytes(data, yamlast.DocSetOpts{AssociatedName: "set.yml", Parallel: workers})
		require.Len(t, docSet.Items, 3)
		assert.Equal(t, data, docSet.AsSourceBytes())
		assert.True(t, docSet.HasErrors())
		require.Len(t, docSet.Errors(), 1)
		assert.Equal(t, `unidentified alias "x" (set.yml:1:4)`, docSet.Errors()[0].Error())

		values, err := docSet.AsInterfaces()
		require.Error(t, err)
		assert.Nil(t, values)
	}
}

func TestDocumentPositions(t *testing.T) {
	doc, err := yamlast.NewParser(yamlast.ParserOpts{AssociatedName: "pos.yml"}).Load("a:\n  b: c\n")
	require.NoError(t, err)

	b := doc.Map().Mappings[0].Value.(*yamlast.Map).Mappings[0]
	pos := doc.Position(b.StartPosition())
	assert.Equal(t, "pos.yml:2:3", pos.AsCompactString())
	assert.Equal(t, "  b: c", pos.GetLine())
}
