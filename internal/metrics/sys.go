package metrics

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// SysHealth is the process snapshot served by the health endpoint.
type SysHealth struct {
	AllocMB      uint64 `json:"alloc_mb"`
	TotalAllocMB uint64 `json:"total_alloc_mb"`
	SysMB        uint64 `json:"sys_mb"`
	NumGC        uint32 `json:"num_gc"`
	Goroutines   int    `json:"goroutines"`
	DataDiskSize string `json:"data_disk_size"`
}

// GetSysHealth collects memory and goroutine stats plus the size of the data directory.
func GetSysHealth(dataPath string) SysHealth {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return SysHealth{
		AllocMB:      m.Alloc / 1024 / 1024,
		TotalAllocMB: m.TotalAlloc / 1024 / 1024,
		SysMB:        m.Sys / 1024 / 1024,
		NumGC:        m.NumGC,
		Goroutines:   runtime.NumGoroutine(),
		DataDiskSize: calculateDirSize(dataPath),
	}
}

func calculateDirSize(path string) string {
	return formatBytes(dirBytes(path))
}

func dirBytes(path string) int64 {
	var size int64
	_ = filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size
}

func formatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

type pinger interface {
	PingContext(ctx context.Context) error
}

// Health is the body of the liveness endpoint.
type Health struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	System   SysHealth `json:"system"`
}

// CheckHealth pings the database and samples the process. A failed ping
// degrades the status but still reports the system snapshot.
func CheckHealth(ctx context.Context, db pinger, dataPath string) Health {
	h := Health{Status: "ok", Database: "ok", System: GetSysHealth(dataPath)}
	if err := db.PingContext(ctx); err != nil {
		h.Status = "degraded"
		h.Database = err.Error()
	}
	return h
}
