package assets

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"nanofloor/internal/genai"
)

type recordingRegistry struct {
	records []Record
	err     error
}

func (r *recordingRegistry) Register(ctx context.Context, rec Record) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, rec)
	return nil
}

func discardLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func inlineResult() *genai.Result {
	return &genai.Result{
		MIMEType:   "image/png",
		Base64Data: base64.StdEncoding.EncodeToString([]byte("rendered-bytes")),
	}
}

func TestPersistRemoteURLPassesThrough(t *testing.T) {
	store := NewStore(t.TempDir(), "/static", nil, discardLogger())
	got := store.Persist(context.Background(), &genai.Result{MIMEType: "image/jpeg", RemoteURL: "https://files.example.com/out.jpg"})

	if got.URL != "https://files.example.com/out.jpg" {
		t.Fatalf("url = %q", got.URL)
	}
	if got.AssetID != "" || got.InlineDataURI != "" {
		t.Fatalf("remote result must carry only the URL: %+v", got)
	}
}

func TestPersistWritesFileAndRegisters(t *testing.T) {
	dir := t.TempDir()
	registry := &recordingRegistry{}
	store := NewStore(dir, "/static/", registry, discardLogger())

	got := store.Persist(context.Background(), inlineResult())

	if got.AssetID == "" {
		t.Fatalf("asset id must be set when registration succeeds")
	}
	if !strings.HasPrefix(got.URL, "/static/nano-floor-") || !strings.HasSuffix(got.URL, ".png") {
		t.Fatalf("url = %q", got.URL)
	}
	if !strings.HasPrefix(got.InlineDataURI, "data:image/png;base64,") {
		t.Fatalf("inline data uri = %q", got.InlineDataURI)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("files on disk = %d, want 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(data) != "rendered-bytes" {
		t.Fatalf("stored bytes = %q", data)
	}

	if len(registry.records) != 1 {
		t.Fatalf("registered records = %d, want 1", len(registry.records))
	}
	rec := registry.records[0]
	if rec.ID != got.AssetID || rec.MIMEType != "image/png" || rec.Bytes != int64(len("rendered-bytes")) {
		t.Fatalf("record = %+v", rec)
	}
}

func TestPersistRegistryFailureKeepsFile(t *testing.T) {
	dir := t.TempDir()
	registry := &recordingRegistry{err: errors.New("connection refused")}
	store := NewStore(dir, "/static", registry, discardLogger())

	got := store.Persist(context.Background(), inlineResult())

	if got.AssetID != "" {
		t.Fatalf("asset id must be empty when registration fails")
	}
	if got.URL == "" {
		t.Fatalf("file URL must survive a registry failure")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("file must stay on disk, found %d entries", len(entries))
	}
}

func TestPersistWithoutStoragePathDeliversInline(t *testing.T) {
	store := NewStore("", "", nil, discardLogger())
	got := store.Persist(context.Background(), inlineResult())

	if got.URL != "" || got.AssetID != "" {
		t.Fatalf("no durable fields expected without a storage path: %+v", got)
	}
	if !strings.HasPrefix(got.InlineDataURI, "data:image/png;base64,") {
		t.Fatalf("inline data uri = %q", got.InlineDataURI)
	}
}

func TestPersistInvalidBase64DegradesToInline(t *testing.T) {
	store := NewStore(t.TempDir(), "/static", nil, discardLogger())
	got := store.Persist(context.Background(), &genai.Result{MIMEType: "image/png", Base64Data: "%%not-base64%%"})

	if got.URL != "" {
		t.Fatalf("nothing should be written for undecodable data: %+v", got)
	}
	if got.InlineDataURI == "" {
		t.Fatalf("inline delivery must still happen")
	}
}

func TestPersistNilResult(t *testing.T) {
	store := NewStore(t.TempDir(), "/static", nil, discardLogger())
	if got := store.Persist(context.Background(), nil); got != (PersistedAsset{}) {
		t.Fatalf("nil result must yield an empty asset: %+v", got)
	}
}

func TestDataURIDefaultsMIME(t *testing.T) {
	if got := DataURI("", "aGk="); got != "data:image/png;base64,aGk=" {
		t.Fatalf("uri = %q", got)
	}
	if got := DataURI("image/webp", "aGk="); got != "data:image/webp;base64,aGk=" {
		t.Fatalf("uri = %q", got)
	}
}
