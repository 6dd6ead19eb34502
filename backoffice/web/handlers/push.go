package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	webcommon "kasira.com/kasira/backoffice/web/common"
	"kasira.com/kasira/core"
	"kasira.com/kasira/core/models"
	"kasira.com/kasira/utils"
	"kasira.com/kasira/web/common"
)

func RegisterPushHandler(dm *core.DatabaseManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var push RegisterPush

		// Parse JSON body
		if err := c.ShouldBindJSON(&push); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
			return
		}

		host := webcommon.GetHostname(c.Request.Host)
		if err := dm.Exec(c.Request.Context(), host, func(db *gorm.DB) error {
			if err := BulkUpsertShifts(db, push.Changes.Shifts.Created); err != nil {
				return err
			}
			if err := BulkUpsertShifts(db, push.Changes.Shifts.Updated); err != nil {
				return err
			}
			if err := BulkUpsertMovements(db, push.Changes.Movements.Created); err != nil {
				return err
			}
			if err := BulkUpsertMovements(db, push.Changes.Movements.Updated); err != nil {
				return err
			}
			return nil
		}); err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
			"lastPushedAt": time.Now().Unix(),
		}))
	}
}

func BulkUpsertShifts(db *gorm.DB, shifts []ShiftRecord) error {
	if len(shifts) == 0 {
		return nil
	}

	records := utils.Map(shifts, func(s ShiftRecord) models.Shift {
		var end *time.Time
		if s.EndTime != nil {
			end = &s.EndTime.Time
		}
		return models.Shift{
			ID:          s.ID,
			LocationID:  s.LocationID,
			Status:      s.Status,
			StartTime:   s.StartTime.Time,
			EndTime:     end,
			InitialCash: s.InitialCash,
			FinalCash:   s.FinalCash,
			ClosingMeta: s.ClosingMeta,
		}
	})

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}}, // conflict key
		UpdateAll: true,                          // update all fields on conflict
	}).Create(&records).Error
}

func BulkUpsertMovements(db *gorm.DB, movements []MovementRecord) error {
	if len(movements) == 0 {
		return nil
	}

	records := utils.Map(movements, func(m MovementRecord) models.CashMovement {
		return models.CashMovement{
			ID:          m.ID,
			ShiftID:     m.ShiftID,
			Kind:        m.Kind,
			Amount:      m.Amount,
			Description: m.Description,
			Category:    m.Category,
			CreatedAt:   m.Timestamp,
		}
	})

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}}, // conflict key
		UpdateAll: true,                          // update all fields on conflict
	}).Create(&records).Error
}
