// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package devserver builds the static deployable directory of the app
// and serves it under the base path during development.
package devserver

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/exec"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/base/logx"
	"tokyo3d/asset"
	"tokyo3d/config"
	"tokyo3d/shell"
)

// ReloadPath is the websocket endpoint, relative to the base path,
// that announces rebuilds.
const ReloadPath = "__reload"

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<base href="{{.Base}}">
<title>{{.Name}}</title>
</head>
<body style="margin:0;background:#000;color:#fff;font-family:sans-serif">
<div style="position:absolute;top:1em;left:1em;pointer-events:none">
<h2>{{.Heading}}</h2>
<p>{{.Text}}</p>
</div>
{{if .Wasm}}<script src="wasm_exec.js"></script>
<script>
(() => {
	const go = new Go();
	WebAssembly.instantiateStreaming(fetch("app.wasm"), go.importObject).then((r) => go.run(r.instance));
})();
</script>
{{end}}<script>
(() => {
	const u = new URL("{{.Reload}}", document.baseURI);
	u.protocol = u.protocol === "https:" ? "wss:" : "ws:";
	const ws = new WebSocket(u);
	ws.onmessage = (e) => { if (e.data === "reload") location.reload(); };
})();
</script>
</body>
</html>
`))

// Build validates the model in c.Public by decoding it, then copies
// c.Public into c.Build.Output with a generated index.html and, if
// c.Build.Package is set, the app compiled to app.wasm. Any previous
// output is replaced.
func Build(c *config.Config) error {
	pub := os.DirFS(c.Public)
	ok, err := fsx.FileExistsFS(pub, c.Asset)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("build: model %q not found in %q", c.Asset, c.Public)
	}
	if _, err := asset.NewProvider(pub).Load(context.Background(), c.Asset); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	if err := checkOutput(c.Build.Output, c.Public); err != nil {
		return err
	}
	if err := os.RemoveAll(c.Build.Output); err != nil {
		return err
	}
	if err := os.CopyFS(c.Build.Output, pub); err != nil {
		return fmt.Errorf("build: staging %q: %w", c.Public, err)
	}
	wasm := c.Build.Package != ""
	if wasm {
		if err := buildWasm(c); err != nil {
			return err
		}
	}

	f, err := os.Create(filepath.Join(c.Build.Output, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()
	app := shell.New(c)
	err = indexTmpl.Execute(f, map[string]any{
		"Base":    c.Base(),
		"Name":    c.Name,
		"Heading": app.Overlay.Heading,
		"Text":    app.Overlay.Text,
		"Reload":  ReloadPath,
		"Wasm":    wasm,
	})
	if err != nil {
		return err
	}
	logx.PrintlnWarn("Built " + c.Name + " into " + c.Build.Output)
	return f.Close()
}

// buildWasm compiles c.Build.Package for js/wasm into app.wasm in the
// output and copies in the wasm_exec.js loader of the same toolchain.
func buildWasm(c *config.Config) error {
	out := filepath.Join(c.Build.Output, "app.wasm")
	err := exec.Major().SetEnv("GOOS", "js").SetEnv("GOARCH", "wasm").Run("go", "build", "-o", out, c.Build.Package)
	if err != nil {
		return fmt.Errorf("build: compiling %s: %w", c.Build.Package, err)
	}
	root, err := exec.Minor().Output("go", "env", "GOROOT")
	if err != nil {
		return err
	}
	// lib/wasm since Go 1.24, misc/wasm before
	for _, dir := range []string{"lib/wasm", "misc/wasm"} {
		b, err := os.ReadFile(filepath.Join(root, dir, "wasm_exec.js"))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(c.Build.Output, "wasm_exec.js"), b, 0o644)
	}
	return fmt.Errorf("build: wasm_exec.js not found in %q", root)
}

// checkOutput returns an error if removing out would also remove the
// public directory or the working directory, or if out is inside the
// public directory.
func checkOutput(out, public string) error {
	if strings.TrimSpace(out) == "" {
		return errors.New("build: empty output directory")
	}
	o, err := filepath.Abs(out)
	if err != nil {
		return err
	}
	p, err := filepath.Abs(public)
	if err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	switch {
	case within(o, wd):
		return fmt.Errorf("build: output %q contains the working directory", out)
	case within(o, p):
		return fmt.Errorf("build: output %q contains the public directory %q", out, public)
	case within(p, o):
		return fmt.Errorf("build: output %q is inside the public directory %q", out, public)
	}
	return nil
}

// within reports whether path is dir or below it. Both must be absolute.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
