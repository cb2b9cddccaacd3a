// Package catalog persists a manifest of organize runs in SQLite.
//
// The catalog is an optional collaborator: the organizer works without one,
// and catalog failures never fail a run.
package catalog

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Catalog wraps the manifest database.
type Catalog struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the catalog database at path and
// migrates its schema.
func Open(path string) (*Catalog, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}

	if err := db.AutoMigrate(&OrganizeRun{}, &FileMove{}); err != nil {
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}

	return &Catalog{db: db}, nil
}

// RecordRun stores a completed run and its per-file outcomes.
func (c *Catalog) RecordRun(run *OrganizeRun, moves []FileMove) error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(run).Error; err != nil {
			return fmt.Errorf("create run: %w", err)
		}
		for i := range moves {
			moves[i].RunID = run.ID
		}
		if len(moves) > 0 {
			if err := tx.CreateInBatches(moves, 100).Error; err != nil {
				return fmt.Errorf("create moves: %w", err)
			}
		}
		return nil
	})
}

// RecentRuns returns up to limit runs, most recent first.
func (c *Catalog) RecentRuns(limit int) ([]OrganizeRun, error) {
	var runs []OrganizeRun
	err := c.db.Order("started_at desc").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	return runs, nil
}

// MovesForRun returns all file outcomes of one run.
func (c *Catalog) MovesForRun(runID string) ([]FileMove, error) {
	var moves []FileMove
	err := c.db.Where("run_id = ?", runID).Order("id").Find(&moves).Error
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	return moves, nil
}

// Close releases the underlying database handle.
func (c *Catalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
