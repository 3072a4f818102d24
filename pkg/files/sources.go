// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
)

// Source is where the bytes of a File come from.
type Source interface {
	Description() string
	Bytes() ([]byte, error)
}

var _ []Source = []Source{LocalSource{}, &StdinSource{}, &HTTPSource{}}

// LocalSource reads its file on every call so that re-checks see edits.
type LocalSource struct {
	path string
}

func NewLocalSource(path string) LocalSource { return LocalSource{path} }

func (s LocalSource) Description() string    { return fmt.Sprintf("file '%s'", s.path) }
func (s LocalSource) Path() string           { return s.path }
func (s LocalSource) Bytes() ([]byte, error) { return os.ReadFile(s.path) }

// readOnce keeps the result of the first read; streams and remote
// documents can not be read a second time.
type readOnce struct {
	once  sync.Once
	bytes []byte
	err   error
}

func (r *readOnce) get(read func() ([]byte, error)) ([]byte, error) {
	r.once.Do(func() { r.bytes, r.err = read() })
	return r.bytes, r.err
}

type StdinSource struct {
	reader io.Reader
	data   readOnce
}

func NewStdinSource(reader io.Reader) *StdinSource { return &StdinSource{reader: reader} }

func (s *StdinSource) Description() string { return "standard input" }

func (s *StdinSource) Bytes() ([]byte, error) {
	return s.data.get(func() ([]byte, error) { return io.ReadAll(s.reader) })
}

type HTTPSource struct {
	url    string
	Client *http.Client
	data   readOnce
}

func NewHTTPSource(url string) *HTTPSource { return &HTTPSource{url: url, Client: &http.Client{}} }

func (s *HTTPSource) Description() string { return fmt.Sprintf("HTTP URL '%s'", s.url) }

func (s *HTTPSource) Bytes() ([]byte, error) {
	return s.data.get(s.fetch)
}

func (s *HTTPSource) fetch() ([]byte, error) {
	resp, err := s.Client.Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("Requesting URL '%s': %s", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Requesting URL '%s': %s", s.url, resp.Status)
	}

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Reading URL '%s': %s", s.url, err)
	}
	return result, nil
}
