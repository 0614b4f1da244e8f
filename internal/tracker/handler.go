package tracker

import (
	"errors"
	"net/http"

	"dietracker/internal/food"
	"dietracker/internal/logger"
	"dietracker/internal/middleware"
	"dietracker/internal/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Navigation actions accepted by POST /tracker/navigate.
const (
	ActionEditProfile   = "edit_profile"
	ActionOpenHistory   = "open_history"
	ActionBackToTracker = "back_to_tracker"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func currentUser(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return userID, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, profile.ErrInvalidProfile),
		errors.Is(err, food.ErrInvalidQuantity),
		errors.Is(err, food.ErrMealNameRequired),
		errors.Is(err, food.ErrUnknownOption),
		errors.Is(err, ErrEmptyLog):
		return http.StatusBadRequest
	case errors.Is(err, food.ErrFoodNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrNoPlan),
		errors.Is(err, ErrNothingPending):
		return http.StatusConflict
	case errors.Is(err, ErrArchiveUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respond writes the view, or the error together with the unchanged view.
func respond(c *gin.Context, view View, err error) {
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Error("tracker action failed", zap.String("path", c.FullPath()), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error(), "state": view})
		return
	}
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// Session state
// --------------------------------------------------
func (h *Handler) GetSession(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.State(userID))
}

// --------------------------------------------------
// Create plan from profile
// --------------------------------------------------
func (h *Handler) CreatePlan(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req profile.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.service.CreatePlan(userID, req)
	respond(c, view, err)
}

// --------------------------------------------------
// Page navigation
// --------------------------------------------------
func (h *Handler) Navigate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var (
		view View
		err  error
	)
	switch req.Action {
	case ActionEditProfile:
		view, err = h.service.EditProfile(userID)
	case ActionOpenHistory:
		view, err = h.service.OpenHistory(userID)
	case ActionBackToTracker:
		view, err = h.service.BackToTracker(userID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
		return
	}
	respond(c, view, err)
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------
func (h *Handler) ListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"foods": h.service.Estimator().Catalog().Names()})
}

func (h *Handler) GetFood(c *gin.Context) {
	entry, err := h.service.Estimator().Catalog().Lookup(c.Param("name"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *Handler) MealOptions(c *gin.Context) {
	c.JSON(http.StatusOK, food.MealOptions())
}

// --------------------------------------------------
// Meal estimates
// --------------------------------------------------
func (h *Handler) Analyze(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Dish     string  `json:"dish"`
		Quantity float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.service.Analyze(userID, req.Dish, req.Quantity)
	respond(c, view, err)
}

func (h *Handler) Predict(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req food.Description
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.service.Predict(userID, req)
	respond(c, view, err)
}

func (h *Handler) Accept(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	view, err := h.service.Accept(userID)
	respond(c, view, err)
}

func (h *Handler) Cancel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	view, err := h.service.Cancel(userID)
	respond(c, view, err)
}

// --------------------------------------------------
// Daily log
// --------------------------------------------------
func (h *Handler) Reset(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	view, err := h.service.Reset(userID)
	respond(c, view, err)
}

func (h *Handler) Save(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.service.Save(c.Request.Context(), userID)
	if err != nil {
		respond(c, h.service.State(userID), err)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

func (h *Handler) History(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": h.service.History(c.Request.Context())})
}
