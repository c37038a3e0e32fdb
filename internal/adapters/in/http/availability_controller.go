package http

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/space-booking-slots-resolver/internal/config"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/in"
)

type AvailabilityController struct {
	availability in.AvailabilityUseCase
	reassignment in.ReassignmentUseCase
	cfg          *config.Config
}

func NewAvailabilityController(
	availability in.AvailabilityUseCase,
	reassignment in.ReassignmentUseCase,
	cfg *config.Config,
) *AvailabilityController {
	return &AvailabilityController{
		availability: availability,
		reassignment: reassignment,
		cfg:          cfg,
	}
}

func (c *AvailabilityController) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/v1/health", c.health)

	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.GET("/spaces/:spaceId/slots", c.resolveSlots)
		api.POST("/spaces/:spaceId/slots/resolve-batch", c.resolveBatchSlots)
		api.POST("/spaces/:spaceId/reassign", c.reassignEvent)
	}
}

type ResolveBatchSlotsRequest struct {
	Dates []string `json:"dates" binding:"required,min=1"`
}

type ReassignEventRequest struct {
	OldHour      int `json:"oldHour" binding:"min=0,max=23"`
	OldDayOfWeek int `json:"oldDayOfWeek" binding:"min=0,max=6"`
	NewHour      int `json:"newHour" binding:"min=0,max=23"`
	NewDayOfWeek int `json:"newDayOfWeek" binding:"min=0,max=6"`
}

func (c *AvailabilityController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": c.cfg.App.Version,
	})
}

func (c *AvailabilityController) resolveSlots(ctx *gin.Context) {
	spaceID, err := uuid.Parse(ctx.Param("spaceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID format"})
		return
	}

	date, err := json_types.NewDate(ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	availability, err := c.availability.ResolveSlots(ctx.Request.Context(), spaceID, date)
	if err != nil {
		// Пустой список из-за недоступного стора - не то же самое,
		// что "доступности нет": отдаем ошибку, а не пустой успех
		if errors.Is(err, domain.ErrStoreUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"spaceId":        spaceID,
		"date":           date,
		"isSpecificDate": availability.IsSpecificDate,
		"slots":          availability.Slots,
	})
}

func (c *AvailabilityController) resolveBatchSlots(ctx *gin.Context) {
	spaceID, err := uuid.Parse(ctx.Param("spaceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID format"})
		return
	}

	var req ResolveBatchSlotsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dates := make([]json_types.Date, 0, len(req.Dates))
	for _, rawDate := range req.Dates {
		date, err := json_types.NewDate(rawDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
			return
		}
		dates = append(dates, date)
	}

	entries := c.availability.ResolveBatchSlots(ctx.Request.Context(), spaceID, dates)

	ctx.JSON(http.StatusOK, gin.H{
		"spaceId": spaceID,
		"results": entries,
	})
}

func (c *AvailabilityController) reassignEvent(ctx *gin.Context) {
	spaceID, err := uuid.Parse(ctx.Param("spaceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID format"})
		return
	}

	var req ReassignEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	oldSlot := domain.SlotRef{Hour: req.OldHour, DayOfWeek: req.OldDayOfWeek}
	newSlot := domain.SlotRef{Hour: req.NewHour, DayOfWeek: req.NewDayOfWeek}

	result, err := c.reassignment.OnEventRescheduled(ctx.Request.Context(), spaceID, oldSlot, newSlot)
	if err != nil {
		// Частичный результат отдаем вместе с ошибкой,
		// оператору нужны оба, чтобы решить о повторе
		if errors.Is(err, domain.ErrReassignmentConflict) {
			ctx.JSON(http.StatusConflict, gin.H{
				"error":  err.Error(),
				"result": result,
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"spaceId": spaceID,
		"result":  result,
	})
}

func (c *AvailabilityController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
