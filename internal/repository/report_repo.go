package repository

import (
	"sync"
	"time"

	"github.com/portal88/wallapi/internal/models"
)

// ReportRepository owns the append-only report collection and mirrors
// every append to the store.
type ReportRepository struct {
	store   *Store
	mu      sync.Mutex
	reports []models.ReportModel
}

// NewReportRepository creates a new repository and loads the report collection
func NewReportRepository(store *Store) *ReportRepository {
	r := &ReportRepository{store: store, reports: []models.ReportModel{}}
	store.Load(models.ReportsFileName, &r.reports)
	return r
}

// Append records a report and persists the collection. Duplicate reports
// are accepted without deduplication.
func (r *ReportRepository) Append(postID int64, reportedBy, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	report := models.ReportModel{
		PostID:     postID,
		ReportedBy: reportedBy,
		Reason:     reason,
		ReportedAt: time.Now().Format(createdAtLayout),
	}
	reports := append(r.reports, report)
	if err := r.store.Save(models.ReportsFileName, reports); err != nil {
		return err
	}
	r.reports = reports
	return nil
}

// List returns a snapshot of all reports in append order
func (r *ReportRepository) List() []models.ReportModel {
	r.mu.Lock()
	defer r.mu.Unlock()
	reports := make([]models.ReportModel, len(r.reports))
	copy(reports, r.reports)
	return reports
}

// Count returns the number of reports
func (r *ReportRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}
