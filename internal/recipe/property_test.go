package recipe

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func drawKind(t *rapid.T) Kind {
	return rapid.SampledFrom(Default().Kinds()).Draw(t, "kind")
}

func drawRequest(t *rapid.T) Request {
	return Request{
		Kind:    drawKind(t),
		Name:    rapid.StringMatching(`[a-z][a-z0-9+.-]{0,20}`).Draw(t, "name"),
		Version: rapid.StringMatching(`[0-9][0-9a-z.+~-]{0,12}`).Draw(t, "version"),
		License: rapid.SampledFrom([]string{"", "MIT", "Apache-2.0", "GPL-2.0-only", "CLOSED"}).Draw(t, "license"),
	}
}

func TestProperty_RenderSubstitutesFields(t *testing.T) {
	g := newTestGenerator()
	rapid.Check(t, func(t *rapid.T) {
		req := drawRequest(t)

		text, err := g.Render(req)
		if err != nil {
			t.Fatalf("render %+v: %v", req, err)
		}

		wantLicense := req.License
		if wantLicense == "" {
			wantLicense = DefaultLicense
		}
		if !strings.Contains(text, `LICENSE = "`+wantLicense+`"`) {
			t.Fatalf("missing LICENSE line for %q", wantLicense)
		}
		if !strings.Contains(text, req.Name) || !strings.Contains(text, req.Version) {
			t.Fatalf("name or version not substituted in %s recipe", req.Kind)
		}
	})
}

func TestProperty_RenderAcceptsAnyNonEmptyFields(t *testing.T) {
	g := newTestGenerator()
	rapid.Check(t, func(t *rapid.T) {
		req := Request{
			Kind:    drawKind(t),
			Name:    rapid.StringN(1, 32, -1).Draw(t, "name"),
			Version: rapid.StringN(1, 32, -1).Draw(t, "version"),
		}

		text, err := g.Render(req)
		if err != nil {
			t.Fatalf("render %+v: %v", req, err)
		}
		if !strings.Contains(text, req.Name) || !strings.Contains(text, req.Version) {
			t.Fatalf("name %q or version %q missing from %s recipe", req.Name, req.Version, req.Kind)
		}
	})
}

func TestProperty_FilenameLaw(t *testing.T) {
	g := newTestGenerator()
	rapid.Check(t, func(t *rapid.T) {
		req := drawRequest(t)

		got, err := g.Filename(req)
		if err != nil {
			t.Fatalf("filename %+v: %v", req, err)
		}

		want := req.Name + "_" + req.Version + ".bb"
		if req.Kind == Python {
			want = "python3-" + want
		}
		if got != want {
			t.Fatalf("filename = %q, want %q", got, want)
		}
	})
}

func TestProperty_WriteMatchesRender(t *testing.T) {
	g := newTestGenerator()
	base := t.TempDir()
	rapid.Check(t, func(t *rapid.T) {
		req := drawRequest(t)
		dir := filepath.Join(base, rapid.StringMatching(`[a-z]{1,8}(/[a-z]{1,8}){0,2}`).Draw(t, "subdir"))

		path, err := g.Write(req, dir)
		if err != nil {
			t.Fatalf("write %+v: %v", req, err)
		}
		written, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		rendered, err := g.Render(req)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if string(written) != rendered {
			t.Fatalf("written content differs from render for %s", path)
		}
	})
}

func TestProperty_UnknownKindRejected(t *testing.T) {
	g := newTestGenerator()
	base := t.TempDir()
	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.StringMatching(`[a-z-]{1,16}`).Filter(func(s string) bool {
			return !IsValidKind(s)
		}).Draw(t, "kind")
		dir := filepath.Join(base, "never-"+kind)

		_, err := g.Write(Request{Kind: Kind(kind), Name: "demo", Version: "1.0"}, dir)
		if !errors.Is(err, ErrUnknownKind) {
			t.Fatalf("kind %q: err = %v, want ErrUnknownKind", kind, err)
		}
		if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
			t.Fatalf("directory %s created for unknown kind", dir)
		}
	})
}
