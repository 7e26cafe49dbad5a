package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "fitscore_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler membersihkan token blacklist yang sudah
// kedaluwarsa, tiap 24 jam.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")
			deleted, err := authRepo.CleanupExpiredBlacklist(db)
			if err != nil {
				log.Printf("[CLEANUP ERROR] %v", err)
			} else if deleted > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus", deleted)
			} else {
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}
			time.Sleep(24 * time.Hour)
		}
	}()
}
