// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devserver

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"sync"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
	"github.com/h2non/filetype"
	"golang.org/x/sync/errgroup"
	"tokyo3d/config"
)

// Debounce is how long the watcher waits after the last change in the
// public directory before rebuilding.
var Debounce = 100 * time.Millisecond

// Server serves the build output under the base path and tells
// connected pages to reload after every rebuild.
type Server struct {
	Config *config.Config

	upgrader websocket.Upgrader

	// mu guards conns and serializes writes to them.
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewServer returns a new server for c.
func NewServer(c *config.Config) *Server {
	return &Server{Config: c, conns: map[*websocket.Conn]struct{}{}}
}

// Handler returns the HTTP handler: files of the build output under the
// base path, the reload websocket, and a redirect from / to the base path.
func (s *Server) Handler() http.Handler {
	base := s.Config.Base()
	files := http.FileServer(http.Dir(s.Config.Build.Output))
	files = http.StripPrefix(strings.TrimSuffix(base, "/"), files)

	mux := http.NewServeMux()
	mux.HandleFunc(base+ReloadPath, s.serveReload)
	mux.HandleFunc(base, func(w http.ResponseWriter, r *http.Request) {
		ext := strings.TrimPrefix(path.Ext(r.URL.Path), ".")
		if ext == "wasm" {
			w.Header().Set("Content-Type", "application/wasm")
		} else if t := filetype.GetType(ext); ext != "" && t != filetype.Unknown {
			w.Header().Set("Content-Type", t.MIME.Value)
		}
		files.ServeHTTP(w, r)
	})
	if base != "/" {
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/" {
				http.NotFound(w, r)
				return
			}
			http.Redirect(w, r, base, http.StatusFound)
		})
	}
	return mux
}

func (s *Server) serveReload(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	// pages never send anything; reading detects the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends msg to every connected page and returns how many
// received it. Pages that fail are dropped.
func (s *Server) Broadcast(msg string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for conn := range s.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			slog.Warn("devserver: dropping reload client", "remote", conn.RemoteAddr(), "err", err)
			delete(s.conns, conn)
			conn.Close()
			continue
		}
		n++
	}
	return n
}

// Clients returns the number of connected pages.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Close closes all reload connections.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		conn.Close()
		delete(s.conns, conn)
	}
}

// Watch rebuilds the output whenever the public directory changes, then
// broadcasts "reload". Failed rebuilds are logged and not broadcast.
// It returns when ctx is done.
func (s *Server) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(s.Config.Public); err != nil {
		return err
	}

	timer := time.NewTimer(Debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			timer.Reset(Debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		case <-timer.C:
			if errors.Log(Build(s.Config)) != nil {
				continue
			}
			n := s.Broadcast("reload")
			slog.Info("devserver: rebuilt", "clients", n)
		}
	}
}

// Serve builds the app, then serves it on the config port until
// interrupted, rebuilding and reloading pages on every change.
func Serve(c *config.Config) error {
	if err := Build(c); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := NewServer(c)
	srv := &http.Server{Addr: ":" + c.Web.Port, Handler: s.Handler()}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Watch(ctx)
	})
	g.Go(func() error {
		logx.PrintlnWarn("Serving at http://localhost:" + c.Web.Port + c.Base())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.Close()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
