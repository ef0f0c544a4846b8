package service

import (
	"errors"
	"testing"

	"github.com/portal88/wallapi/internal/repository"
)

func newTestReportService(t *testing.T) (*ReportService, *PostService, *repository.ReportRepository) {
	t.Helper()
	store := repository.NewStore(t.TempDir())
	posts := repository.NewPostRepository(store)
	reports := repository.NewReportRepository(store)
	return NewReportService(posts, reports), NewPostService(posts), reports
}

func TestReportPost(t *testing.T) {
	svc, postSvc, reports := newTestReportService(t)

	post, err := postSvc.CreatePost("ala", "hello")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.ReportPost("ola", post.ID, "spam"); err != nil {
		t.Fatal(err)
	}
	recorded := reports.List()
	if len(recorded) != 1 || recorded[0].PostID != post.ID || recorded[0].ReportedBy != "ola" || recorded[0].Reason != "spam" {
		t.Fatalf("unexpected report: %+v", recorded)
	}
}

func TestReportPostErrors(t *testing.T) {
	svc, postSvc, _ := newTestReportService(t)

	if err := svc.ReportPost("", 1, ""); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
	if err := svc.ReportPost("ola", 999, ""); !errors.Is(err, repository.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}

	post, err := postSvc.CreatePost("ala", "hello")
	if err != nil {
		t.Fatal(err)
	}
	// Duplicate reports are accepted without deduplication
	if err := svc.ReportPost("ola", post.ID, ""); err != nil {
		t.Fatal(err)
	}
	if err := svc.ReportPost("ola", post.ID, ""); err != nil {
		t.Fatal(err)
	}
}

func TestReportSurvivesPostDeletion(t *testing.T) {
	svc, postSvc, reports := newTestReportService(t)

	post, err := postSvc.CreatePost("ala", "hello")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.ReportPost("ola", post.ID, "spam"); err != nil {
		t.Fatal(err)
	}
	if err := postSvc.DeletePost("ala", post.ID); err != nil {
		t.Fatal(err)
	}
	// The report keeps its dangling post reference
	if len(reports.List()) != 1 {
		t.Fatal("expected report to survive post deletion")
	}
}
