package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/DeusData/lsif-nav-mcp/internal/lsp"
	"github.com/DeusData/lsif-nav-mcp/internal/store"
)

// dump joins records into a newline-delimited stream.
func dump(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

var header = []string{
	`{"id":1,"type":"vertex","label":"metaData","version":"0.5.0"}`,
	`{"id":2,"type":"vertex","label":"group","rootUri":"file:///workspace"}`,
}

// smallDump is a complete single-document dump: one definition range and
// one reference range sharing a result set with hover and definition
// results.
var smallDump = dump(append(header,
	`{"id":3,"type":"vertex","label":"project","kind":"go"}`,
	`{"id":4,"type":"vertex","label":"$event","scope":"project","kind":"begin","data":3}`,
	`{"id":5,"type":"vertex","label":"document","uri":"file:///workspace/a.go","languageId":"go","contents":"package a\n\nfunc A() {}\n"}`,
	`{"id":6,"type":"vertex","label":"resultSet"}`,
	`{"id":7,"type":"vertex","label":"range","start":{"line":2,"character":5},"end":{"line":2,"character":6}}`,
	`{"id":8,"type":"vertex","label":"range","start":{"line":4,"character":0},"end":{"line":4,"character":1}}`,
	`{"id":9,"type":"edge","label":"next","outV":7,"inV":6}`,
	`{"id":10,"type":"edge","label":"next","outV":8,"inV":6}`,
	`{"id":11,"type":"vertex","label":"hoverResult","result":{"contents":"func A()"}}`,
	`{"id":12,"type":"edge","label":"textDocument/hover","outV":6,"inV":11}`,
	`{"id":13,"type":"vertex","label":"definitionResult"}`,
	`{"id":14,"type":"edge","label":"textDocument/definition","outV":6,"inV":13}`,
	`{"id":15,"type":"edge","label":"item","outV":13,"inVs":[7],"document":5}`,
	`{"id":16,"type":"vertex","label":"referenceResult"}`,
	`{"id":17,"type":"edge","label":"textDocument/references","outV":6,"inV":16}`,
	`{"id":18,"type":"edge","label":"item","outV":16,"inVs":[7],"property":"definitions","document":5}`,
	`{"id":19,"type":"edge","label":"item","outV":16,"inVs":[8],"property":"references","document":5}`,
	`{"id":20,"type":"edge","label":"contains","outV":3,"inVs":[5]}`,
	`{"id":21,"type":"edge","label":"contains","outV":5,"inVs":[7,8]}`,
	`{"id":22,"type":"vertex","label":"$event","scope":"project","kind":"end","data":3}`,
)...)

func load(t *testing.T, input string) *store.Store {
	t.Helper()
	st, err := Load(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return st
}

func TestLoadSmallDump(t *testing.T) {
	st := load(t, smallDump)

	handle, ok := st.FindFile("file:///workspace/a.go")
	if !ok {
		t.Fatal("document not indexed")
	}
	text, ok := st.FileContent(handle)
	if !ok || !strings.Contains(text, "func A()") {
		t.Errorf("unexpected content: %q", text)
	}
	if st.RootURI() != "file:///workspace" {
		t.Errorf("root URI: got %q", st.RootURI())
	}

	defs := st.Definitions("file:///workspace/a.go", lsp.Position{Line: 4, Character: 0})
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}
	if defs[0].Range.Start.Line != 2 {
		t.Errorf("definition range: %+v", defs[0].Range)
	}

	refs := st.References("file:///workspace/a.go", lsp.Position{Line: 2, Character: 5}, true)
	if len(refs) != 2 {
		t.Errorf("expected 2 references, got %d", len(refs))
	}

	hover, ok := st.Hover("file:///workspace/a.go", lsp.Position{Line: 4, Character: 0})
	if !ok || string(hover.Contents) != `"func A()"` {
		t.Errorf("hover: ok=%v contents=%s", ok, hover.Contents)
	}
}

func TestLoadDeterministic(t *testing.T) {
	st1 := load(t, smallDump)
	st2 := load(t, smallDump)

	pos := lsp.Position{Line: 2, Character: 5}
	if !reflect.DeepEqual(
		st1.References("file:///workspace/a.go", pos, true),
		st2.References("file:///workspace/a.go", pos, true),
	) {
		t.Error("reference results differ across identical loads")
	}
	if !reflect.DeepEqual(st1.DocumentInfos(), st2.DocumentInfos()) {
		t.Error("document infos differ across identical loads")
	}
}

func TestLoadRequiresMetaData(t *testing.T) {
	input := dump(
		`{"id":2,"type":"vertex","label":"group","rootUri":"file:///workspace"}`,
	)
	_, err := Load(context.Background(), strings.NewReader(input))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if !strings.Contains(schemaErr.Msg, "no version") {
		t.Errorf("unexpected message: %s", schemaErr.Msg)
	}
}

func TestLoadRequiresGroupRoot(t *testing.T) {
	input := dump(
		`{"id":1,"type":"vertex","label":"metaData","version":"0.5.0"}`,
	)
	_, err := Load(context.Background(), strings.NewReader(input))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if !strings.Contains(schemaErr.Msg, "no project root") {
		t.Errorf("unexpected message: %s", schemaErr.Msg)
	}
}

func TestLoadRejectsVersion(t *testing.T) {
	input := dump(
		`{"id":1,"type":"vertex","label":"metaData","version":"0.4.5"}`,
		`{"id":2,"type":"vertex","label":"group","rootUri":"file:///workspace"}`,
	)
	_, err := Load(context.Background(), strings.NewReader(input))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if !strings.Contains(schemaErr.Msg, "0.4.5") {
		t.Errorf("error should name the offending version: %s", schemaErr.Msg)
	}
}

func TestLoadBadJSON(t *testing.T) {
	input := dump(append(header, `{"id":3,`)...)
	_, err := Load(context.Background(), strings.NewReader(input))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Line != 3 {
		t.Errorf("line number: got %d, want 3", parseErr.Line)
	}
}

func TestLoadMissingDiscriminator(t *testing.T) {
	input := dump(append(header, `{"id":3,"label":"project"}`)...)
	_, err := Load(context.Background(), strings.NewReader(input))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestLoadDanglingEdge(t *testing.T) {
	input := dump(append(header,
		`{"id":3,"type":"vertex","label":"project"}`,
		`{"id":4,"type":"edge","label":"contains","outV":3,"inVs":[99]}`,
	)...)
	_, err := Load(context.Background(), strings.NewReader(input))
	var dangling *store.DanglingReferenceError
	if !errors.As(err, &dangling) {
		t.Fatalf("expected DanglingReferenceError, got %v", err)
	}
	if dangling.Missing != "99" {
		t.Errorf("missing id: got %s", dangling.Missing)
	}
}

func TestLoadDuplicateNextEdge(t *testing.T) {
	input := dump(append(header,
		`{"id":3,"type":"vertex","label":"range","start":{"line":0,"character":0},"end":{"line":0,"character":1}}`,
		`{"id":4,"type":"vertex","label":"resultSet"}`,
		`{"id":5,"type":"vertex","label":"resultSet"}`,
		`{"id":6,"type":"edge","label":"next","outV":3,"inV":4}`,
		`{"id":7,"type":"edge","label":"next","outV":3,"inV":5}`,
	)...)
	_, err := Load(context.Background(), strings.NewReader(input))
	var dup *store.DuplicateEdgeError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateEdgeError, got %v", err)
	}
}

func TestLoadDivergentContentWarnsOnly(t *testing.T) {
	input := dump(append(header,
		`{"id":3,"type":"vertex","label":"document","uri":"file:///workspace/a.go","contents":"one"}`,
		`{"id":4,"type":"vertex","label":"document","uri":"file:///workspace/a.go","contents":"two"}`,
	)...)
	st := load(t, input)

	handle, ok := st.FindFile("file:///workspace/a.go")
	if !ok {
		t.Fatal("document not indexed")
	}
	if handle.ID != "3" {
		t.Errorf("first-registered document should stay canonical, got %s", handle.ID)
	}
	text, _ := st.FileContent(handle)
	if text != "one" {
		t.Errorf("canonical content: got %q", text)
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	input := header[0] + "\n\n" + header[1] + "\n"
	if _, err := Load(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatalf("blank lines should be skipped: %v", err)
	}
}

// failingReader errors after the first read to exercise stream failures.
type failingReader struct {
	data io.Reader
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, fmt.Errorf("connection reset")
	}
	r.done = true
	return r.data.Read(p)
}

func TestLoadStreamError(t *testing.T) {
	r := &failingReader{data: strings.NewReader(smallDump)}
	_, err := Load(context.Background(), r)
	var streamErr *StreamError
	if !errors.As(err, &streamErr) {
		t.Fatalf("expected StreamError, got %v", err)
	}
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, strings.NewReader(smallDump))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
