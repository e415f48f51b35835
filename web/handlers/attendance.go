package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	attendance "srkr.edu.in/campus/attendance/core"
	"srkr.edu.in/campus/attendance/model"
	"srkr.edu.in/campus/core"
	v1 "srkr.edu.in/campus/ezygo/v1"
	"srkr.edu.in/campus/infrastructure/devops"
	"srkr.edu.in/campus/web/common"
)

func Register(r *gin.RouterGroup, dm *core.DatabaseManager, cfg *devops.Config) {
	r.POST("/attendance/sync", SyncAttendanceHandler(dm, cfg))
	r.GET("/attendance/sync-logs", ListSyncLogsHandler(dm))
}

type SyncRequest struct {
	// SyncDate is optional; omitted means today (campus time).
	SyncDate common.DateOnly `json:"sync_date"`

	// SourceFile replays a captured payload instead of the live fetch.
	SourceFile string `json:"source_file"`
}

func SyncAttendanceHandler(dm *core.DatabaseManager, cfg *devops.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SyncRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
			return
		}

		opts := attendance.SyncOptions{
			Date:       req.SyncDate.Time,
			SourceFile: req.SourceFile,
		}
		if cfg.Sync.Cutoff != "" {
			cutoff, err := attendance.ParseTimeOfDay(cfg.Sync.Cutoff)
			if err != nil {
				c.JSON(http.StatusInternalServerError, common.NewErrorResponse("invalid configured cutoff: "+err.Error()))
				return
			}
			opts.Cutoff = cutoff
		}

		client := v1.NewEzygoClient(cfg.Ezygo.Endpoint, cfg.Ezygo.Token)

		var res *attendance.SyncResult
		err := dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
			var err error
			res, err = attendance.SyncExternalAttendance(db, client, opts)
			return err
		})

		if errors.Is(err, attendance.ErrSyncInProgress) {
			c.JSON(http.StatusConflict, common.NewErrorResponse(err.Error()))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, common.NewSuccessResponse(res))
	}
}

func ListSyncLogsHandler(dm *core.DatabaseManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")

		var logs []model.AttendanceSyncLog
		err := dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
			q := db.Order("executed_at DESC").Limit(50)
			if date != "" {
				q = q.Where("sync_date = ?", date)
			}
			return q.Find(&logs).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, common.NewSuccessResponse(logs))
	}
}
