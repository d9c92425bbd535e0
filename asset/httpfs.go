// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"time"
)

// HTTPFS is a read-only [fs.FS] whose files are fetched with GET requests
// relative to a base URL. The web build reads the model through it from
// the server that served the app.
type HTTPFS struct {

	// Base is the URL that file names are resolved against.
	Base *url.URL

	// Client is the client used for requests; nil means [http.DefaultClient].
	Client *http.Client
}

// NewHTTPFS returns an HTTPFS rooted at base. A trailing slash is added
// to the base path if missing.
func NewHTTPFS(base string) (*HTTPFS, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("asset: base url: %w", err)
	}
	if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
		u.Path += "/"
	}
	return &HTTPFS{Base: u}, nil
}

func (h *HTTPFS) client() *http.Client {
	if h.Client != nil {
		return h.Client
	}
	return http.DefaultClient
}

// ReadFile fetches name. A 404 response is reported as [fs.ErrNotExist].
func (h *HTTPFS) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	u := h.Base.JoinPath(name)
	res, err := h.client().Get(u.String())
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	defer res.Body.Close()
	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	case res.StatusCode != http.StatusOK:
		return nil, &fs.PathError{Op: "read", Path: name, Err: fmt.Errorf("GET %s: %s", u, res.Status)}
	}
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return b, nil
}

// Open fetches name and returns it as an in-memory file.
func (h *HTTPFS) Open(name string) (fs.File, error) {
	b, err := h.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return &httpFile{Reader: bytes.NewReader(b), info: httpFileInfo{name: path.Base(name), size: int64(len(b))}}, nil
}

type httpFile struct {
	*bytes.Reader
	info httpFileInfo
}

func (f *httpFile) Stat() (fs.FileInfo, error) { return f.info, nil }
func (f *httpFile) Close() error               { return nil }

type httpFileInfo struct {
	name string
	size int64
}

func (fi httpFileInfo) Name() string       { return fi.name }
func (fi httpFileInfo) Size() int64        { return fi.size }
func (fi httpFileInfo) Mode() fs.FileMode  { return 0o444 }
func (fi httpFileInfo) ModTime() time.Time { return time.Time{} }
func (fi httpFileInfo) IsDir() bool        { return false }
func (fi httpFileInfo) Sys() any           { return nil }
