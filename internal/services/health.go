package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"mistakebook/internal/database"
	"mistakebook/internal/models"
)

const (
	// quotaWarnPercent is the usage level above which callers should suggest
	// deleting photos or exporting a backup.
	quotaWarnPercent = 80

	// photoCountWarnThreshold is the collection size above which a backup is
	// suggested regardless of quota.
	photoCountWarnThreshold = 200
)

// HealthResult reports service health plus the storage usage picture the
// presentation layer surfaces as warnings.
type HealthResult struct {
	Status       string   `json:"status"`
	Database     string   `json:"database"`
	UsageBytes   int64    `json:"usageBytes"`
	QuotaBytes   int64    `json:"quotaBytes,omitempty"`
	PercentUsed  float64  `json:"percentUsed,omitempty"`
	PhotoCount   int64    `json:"photoCount"`
	Warnings     []string `json:"warnings,omitempty"`
	ErrorMessage string   `json:"error,omitempty"`
}

// HealthCheck pings the database and assembles the storage report.
// quotaBytes of zero means no configured ceiling, so no percentage.
func HealthCheck(ctx context.Context, db *gorm.DB, quotaBytes int64) HealthResult {
	result := HealthResult{Status: "healthy"}

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.ErrorMessage = fmt.Sprintf("database ping failed: %v", err)
		log.Error().Err(err).Msg("health check failed")
		return result
	}
	result.Database = "ok"

	if usage, err := database.Size(db.WithContext(ctx)); err == nil {
		result.UsageBytes = usage
	} else {
		result.Warnings = append(result.Warnings, fmt.Sprintf("storage usage unavailable: %v", err))
	}

	if err := db.WithContext(ctx).Model(&models.Photo{}).Count(&result.PhotoCount).Error; err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("photo count unavailable: %v", err))
	}

	if quotaBytes > 0 {
		result.QuotaBytes = quotaBytes
		result.PercentUsed = float64(result.UsageBytes) / float64(quotaBytes) * 100
		if result.PercentUsed > quotaWarnPercent {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("storage %.0f%% used; delete photos or export a backup", result.PercentUsed))
		}
	}

	if result.PhotoCount > photoCountWarnThreshold {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d photos stored; consider exporting a backup", result.PhotoCount))
	}

	return result
}
