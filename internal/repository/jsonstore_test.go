package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/portal88/wallapi/internal/models"
)

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())
	posts := []models.PostModel{}
	store.Load(models.PostsFileName, &posts)
	if len(posts) != 0 {
		t.Fatalf("expected empty collection, got %d entries", len(posts))
	}
}

func TestStoreLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "posts.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(dir)
	posts := []models.PostModel{}
	store.Load(models.PostsFileName, &posts)
	if len(posts) != 0 {
		t.Fatalf("expected corrupt file to load as empty, got %d entries", len(posts))
	}
}

func TestStoreSaveIsPrettyPrinted(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	posts := []models.PostModel{{ID: 1, Content: "hello", Username: "ala"}}
	if err := store.Save(models.PostsFileName, posts); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "posts.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Fatalf("expected indented JSON, got %q", data)
	}
}

func TestStoreRoundtrip(t *testing.T) {
	store := NewStore(t.TempDir())
	in := []models.ReportModel{{PostID: 7, ReportedBy: "ala", Reason: "spam"}}
	if err := store.Save(models.ReportsFileName, in); err != nil {
		t.Fatal(err)
	}
	out := []models.ReportModel{}
	store.Load(models.ReportsFileName, &out)
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("roundtrip mismatch: %+v", out)
	}
}
