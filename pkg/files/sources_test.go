// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carvel.dev/yamlast/pkg/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSourceFetchesOnce(t *testing.T) {
	url := "http://example.com/some/config.yml"

	requests := 0
	fileSource := files.NewHTTPSource(url)
	fileSource.Client = NewTestClient(func(req *http.Request) *http.Response {
		requests++
		require.Equal(t, req.URL.String(), url)
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(`a: 1`)),
			Header:     make(http.Header),
		}
	})
	for i := 0; i < 2; i++ {
		body, err := fileSource.Bytes()
		require.NoError(t, err)
		require.Equal(t, []byte("a: 1"), body)
	}
	assert.Equal(t, 1, requests)

	status := "404 Not Found"
	fileSource = files.NewHTTPSource(url)
	fileSource.Client = NewTestClient(func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Status:     status,
			Body:       io.NopCloser(bytes.NewBufferString(``)),
			Header:     make(http.Header),
		}
	})
	_, err := fileSource.Bytes()
	require.EqualError(t, err, fmt.Sprintf("Requesting URL '%s': %s", url, status))
}

func TestStdinSourceReadsOnce(t *testing.T) {
	src := files.NewStdinSource(strings.NewReader("a: 1\n"))

	for i := 0; i < 2; i++ {
		bs, err := src.Bytes()
		require.NoError(t, err)
		assert.Equal(t, "a: 1\n", string(bs))
	}
	assert.Equal(t, "standard input", src.Description())
}

func TestNewFilesWalksDirectoriesForYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	for name, content := range map[string]string{
		"b.yml":          "b: 1",
		"a.yaml":         "a: 1",
		"notes.txt":      "skip",
		"nested/c.yml":   "c: 1",
		"nested/d.json":  "{}",
		"nested/e.yaml~": "skip",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	_, err := files.NewFiles([]string{dir}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --recursive")

	result, err := files.NewFiles([]string{dir}, true)
	require.NoError(t, err)

	var names []string
	for _, file := range result {
		names = append(names, file.RelativePath())
	}
	assert.Equal(t, []string{"a.yaml", "b.yml", filepath.Join("nested", "c.yml")}, names)

	localPath, ok := result[0].LocalPath()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "a.yaml"), localPath)

	bs, err := result[0].Bytes()
	require.NoError(t, err)
	assert.Equal(t, "a: 1", string(bs))
}

func TestNewFilesNamesEachKindOfPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	result, err := files.NewFiles([]string{path, "https://example.com/a/values.yml", "-"}, false)
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, "notes.txt", result[0].RelativePath())
	assert.Equal(t, fmt.Sprintf("file '%s'", path), result[0].Description())
	assert.Equal(t, "values.yml", result[1].RelativePath())
	assert.Equal(t, "HTTP URL 'https://example.com/a/values.yml'", result[1].Description())
	assert.Equal(t, "stdin.yml", result[2].RelativePath())

	_, ok := result[1].LocalPath()
	assert.False(t, ok)

	_, err = files.NewFiles([]string{"-", "-"}, false)
	require.EqualError(t, err, "Expected standard input ('-') to be given at most once")

	_, err = files.NewFiles([]string{filepath.Join(t.TempDir(), "missing.yml")}, false)
	require.Error(t, err)
}

// NewTestClient returns *http.Client with Transport replaced to avoid making real calls
func NewTestClient(fn RoundTripFunc) *http.Client {
	return &http.Client{
		Transport: RoundTripFunc(fn),
	}
}

type RoundTripFunc func(req *http.Request) *http.Response

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}
