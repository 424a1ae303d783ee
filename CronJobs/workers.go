package CronJobs

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"ChestVision/Models"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// Retention for files no analysis row points at anymore. Uploads that failed
// mid-analysis land here, as do reports of hard-deleted rows.
const orphanAge = 24 * time.Hour

var sweepDirs = []string{"uploads", "reports"}

// FileSweeper prunes uploaded images, heatmaps and reports that lost their
// database row.
type FileSweeper struct {
	DB *gorm.DB
}

// NewFileSweeper creates a new file sweeper service
func NewFileSweeper(db *gorm.DB) *FileSweeper {
	return &FileSweeper{
		DB: db,
	}
}

// StartSweepCron starts the cron job that periodically removes orphaned files
func (fs *FileSweeper) StartSweepCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Hour().Do(func() {
		log.Println("Running orphaned file sweep...")
		if err := fs.SweepOrphanedFiles(); err != nil {
			log.Printf("Error sweeping orphaned files: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Orphaned file sweeper cron job started")

	return scheduler
}

func (fs *FileSweeper) SweepOrphanedFiles() error {
	cutoff := time.Now().Add(-orphanAge)

	for _, dir := range sweepDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				log.Printf("Failed to stat %s: %v", entry.Name(), err)
				continue
			}
			if info.ModTime().After(cutoff) {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			var refs int64
			err = fs.DB.Model(&Models.Analysis{}).
				Where("image_path = ? OR gradcam_path = ? OR report_path = ?", path, path, path).
				Count(&refs).Error
			if err != nil {
				log.Printf("Failed to check references for %s: %v", path, err)
				continue
			}
			if refs > 0 {
				continue
			}

			if err := os.Remove(path); err != nil {
				log.Printf("Failed to remove orphaned file %s: %v", path, err)
				continue
			}
			log.Printf("Removed orphaned file %s", path)
		}
	}

	return nil
}
