package service

import (
	"github.com/portal88/wallapi/internal/repository"
)

// ReportService records moderation reports against posts
type ReportService struct {
	posts   *repository.PostRepository
	reports *repository.ReportRepository
}

// NewReportService creates a new service for the report API
func NewReportService(posts *repository.PostRepository, reports *repository.ReportRepository) *ReportService {
	return &ReportService{
		posts:   posts,
		reports: reports,
	}
}

// ReportPost appends a report for an existing post and persists the
// report collection. Repeat reports by the same user are accepted. The
// post may be deleted later, leaving a dangling reference.
func (s *ReportService) ReportPost(username string, postID int64, reason string) error {
	if username == "" {
		return ErrNotLoggedIn
	}
	if _, ok := s.posts.Get(postID); !ok {
		return repository.ErrPostNotFound
	}
	return s.reports.Append(postID, username, reason)
}
