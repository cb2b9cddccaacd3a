package catalog

import "time"

// OrganizeRun records one organize pass over a source directory.
type OrganizeRun struct {
	ID              string `gorm:"primaryKey"` // run UUID
	SourceDir       string `gorm:"not null"`
	DestinationRoot string `gorm:"not null"`
	DryRun          bool
	ImagesProcessed int
	FilesMoved      int
	FilesSkipped    int
	ErrorCount      int
	StartedAt       time.Time
	FinishedAt      time.Time
	CreatedAt       time.Time
}

// FileMove records the outcome of one file within a run. Failed moves are
// kept with Moved=false and the error message, so a partial run can be
// reconstructed afterwards.
type FileMove struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	RunID           string `gorm:"index;not null"`
	BaseName        string
	Role            string
	Format          string
	SourcePath      string `gorm:"not null"`
	DestinationPath string
	SizeBytes       int64
	Moved           bool
	Error           string
	CreatedAt       time.Time
}
