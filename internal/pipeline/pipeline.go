// Package pipeline ingests an LSIF dump stream into a store.Store. Loading
// is a single sequential pass; any failure discards all partial state and no
// usable store is returned.
package pipeline

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/DeusData/lsif-nav-mcp/internal/lsif"
	"github.com/DeusData/lsif-nav-mcp/internal/store"
)

// maxLineBytes bounds a single dump line. Embedded document contents can
// make lines large; 64 MiB accommodates generated files without letting a
// corrupt stream exhaust memory.
const maxLineBytes = 64 << 20

// Load reads one JSON record per line from r and builds the navigation
// store. The returned store is frozen: Load is its only writer.
func Load(ctx context.Context, r io.Reader) (*store.Store, error) {
	start := time.Now()
	st := store.New()
	p := &loader{store: st}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		rec, err := lsif.ParseLine(data)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		if err := p.process(rec); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &StreamError{Err: err}
	}

	if err := p.finish(); err != nil {
		return nil, err
	}
	st.SetRootURI(p.rootURI)
	slog.Info("pipeline.load.done",
		"lines", line,
		"vertices", st.CountVertices(),
		"documents", st.CountDocuments(),
		"duration", time.Since(start).Round(time.Millisecond))
	return st, nil
}

// loader tracks the pipeline-only state that never enters the store: the
// dump version, the group root, and the currently active scopes.
type loader struct {
	store *store.Store

	version  string
	rootURI  string
	sawMeta  bool
	sawGroup bool

	activeGroup   lsif.ID
	activeProject lsif.ID
}

func (p *loader) process(rec *lsif.Record) error {
	switch rec.Type {
	case lsif.ElementVertex:
		return p.processVertex(rec.Vertex)
	case lsif.ElementEdge:
		return p.store.ApplyEdge(rec.Edge)
	}
	return nil
}

func (p *loader) processVertex(v lsif.Vertex) error {
	switch vt := v.(type) {
	case *lsif.MetaData:
		p.sawMeta = true
		p.version = vt.Version
	case *lsif.Group:
		p.sawGroup = true
		if _, err := url.Parse(vt.RootURI); err == nil && vt.RootURI != "" {
			p.rootURI = vt.RootURI
		}
	case *lsif.Event:
		p.processEvent(vt)
	}
	return p.store.RegisterVertex(v)
}

// processEvent updates the active group/project bookkeeping. Scope events
// are informational only; they never affect query results.
func (p *loader) processEvent(ev *lsif.Event) {
	switch {
	case ev.Kind == "begin" && ev.Scope == "group":
		p.activeGroup = ev.Data
	case ev.Kind == "begin" && ev.Scope == "project":
		p.activeProject = ev.Data
	case ev.Kind == "end" && ev.Scope == "group" && ev.Data == p.activeGroup:
		p.activeGroup = ""
	case ev.Kind == "end" && ev.Scope == "project" && ev.Data == p.activeProject:
		p.activeProject = ""
	}
}

// finish runs the post-stream schema checks.
func (p *loader) finish() error {
	if !p.sawMeta || p.version == "" {
		return &SchemaError{Msg: "dump contains no version"}
	}
	if !p.sawGroup || p.rootURI == "" {
		return &SchemaError{Msg: "dump contains no project root"}
	}
	return CheckVersion(p.version)
}
