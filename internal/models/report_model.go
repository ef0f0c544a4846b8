package models

// ReportsFileName is the collection name for moderation reports
const ReportsFileName = "reports"

// ReportModel is a moderation report against a post. Reports are
// append-only and may outlive the post they reference.
type ReportModel struct {
	PostID     int64  `json:"postId"`
	ReportedBy string `json:"reportedBy"`
	Reason     string `json:"reason"`
	ReportedAt string `json:"reportedAt"`
}
