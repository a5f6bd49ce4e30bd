package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"terrazaeden.com/web/internal/format"
	"terrazaeden.com/web/internal/observability"
)

// viewSet holds one template tree per page plus the shared tree that
// fragments execute from. Pages all define "content", so each page gets its
// own clone of the layout.
type viewSet struct {
	shared *template.Template
	pages  map[string]*template.Template
}

type views struct {
	dir string
	dev bool

	mu    sync.RWMutex
	cache *viewSet
}

func newViews(dir string, dev bool) (*views, error) {
	v := &views{dir: dir, dev: dev}
	if dev {
		// fail fast on a broken tree even though requests reparse
		_, err := parseTemplates(dir)
		return v, err
	}
	set, err := parseTemplates(dir)
	if err != nil {
		return nil, err
	}
	v.cache = set
	return v, nil
}

func (v *views) current() (*viewSet, error) {
	if v.dev {
		return parseTemplates(v.dir)
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.cache == nil {
		return nil, fmt.Errorf("templates not initialized")
	}
	return v.cache, nil
}

var funcMap = template.FuncMap{
	"now": time.Now,
	"year": func() int {
		return time.Now().Year()
	},
	"add": func(a, b int) int {
		return a + b
	},
	"date": format.Date,
	// jsonld marks a pre-encoded JSON-LD document as safe script content.
	"jsonld": func(s string) template.JS {
		return template.JS(s)
	},
}

func parseTemplates(dir string) (*viewSet, error) {
	var shared, pages []string
	// Recursively discover all .tmpl files. ParseGlob doesn't support **.
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".tmpl") {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) == "pages" {
			pages = append(pages, path)
		} else {
			shared = append(shared, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(shared) == 0 || len(pages) == 0 {
		return nil, fmt.Errorf("no templates found under %s", dir)
	}
	root, err := template.New("_root").Funcs(funcMap).ParseFiles(shared...)
	if err != nil {
		return nil, err
	}
	set := &viewSet{shared: root, pages: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		clone, err := root.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFiles(p); err != nil {
			return nil, err
		}
		set.pages[strings.TrimSuffix(filepath.Base(p), ".tmpl")] = clone
	}
	return set, nil
}

// renderPage executes the base layout with the named page's content.
func (v *views) renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	set, err := v.current()
	if err != nil {
		renderFailed(w, r, err)
		return
	}
	t, ok := set.pages[page]
	if !ok {
		renderFailed(w, r, fmt.Errorf("unknown page %q", page))
		return
	}
	v.write(w, r, status, t, "base", data)
}

// renderFragment executes a shared fragment such as frag_brand_menu.
func (v *views) renderFragment(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	set, err := v.current()
	if err != nil {
		renderFailed(w, r, err)
		return
	}
	v.write(w, r, status, set.shared, name, data)
}

// write buffers the output so a failing template never sends a partial page.
func (v *views) write(w http.ResponseWriter, r *http.Request, status int, t *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		renderFailed(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	observability.FromContext(r.Context()).Error("template render failed", zap.Error(err))
	http.Error(w, "template error", http.StatusInternalServerError)
}
