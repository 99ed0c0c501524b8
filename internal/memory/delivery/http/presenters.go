package http

import (
	"time"

	"pelangi-assistant/internal/memory"
)

// --- Request DTOs ---

type overwriteReq struct {
	Date    string `json:"-"`
	Content string `json:"content" binding:"required"`
}

func (r overwriteReq) validate() error {
	if r.Date == "" {
		return nil
	}
	return memory.ValidateDate(r.Date)
}

// --- Response DTOs ---

type listDaysResp struct {
	Days []string `json:"days"`
}

type documentResp struct {
	Date    string `json:"date,omitempty"`
	Content string `json:"content"`
}

type overwriteResp struct {
	BackupPath string    `json:"backup_path"`
	BackedUpAt time.Time `json:"backed_up_at"`
}

func newOverwriteResp(o memory.OverwriteOutput) overwriteResp {
	return overwriteResp{BackupPath: o.Backup.Path, BackedUpAt: o.Backup.TakenAt}
}
