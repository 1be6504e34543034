package handlers

import (
	"net/http"
	"strings"

	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/mappers"
	"github.com/LavaJover/shvark-gig-service/internal/domain"
	taskdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/task"
	"github.com/LavaJover/shvark-gig-service/internal/usecase/task"
	"github.com/LavaJover/shvark-gig-service/internal/usecase/validation"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	uc task.TaskUsecase
}

func NewTaskHandler(uc task.TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// ListAvailable lists tasks the vendor may start.
func (h *TaskHandler) ListAvailable(c *gin.Context) {
	page, limit := pagination(c)
	tasks, total, err := h.uc.ListAvailableTasks(c.Request.Context(), caller(c).UserID, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToTaskListResponse(tasks, total, page, limit))
}

// ListMine lists tasks assigned to the vendor, optionally filtered by
// ?status=in_progress,pending_review.
func (h *TaskHandler) ListMine(c *gin.Context) {
	page, limit := pagination(c)
	var statuses []domain.TaskStatus
	for _, s := range statusQuery(c) {
		status := domain.TaskStatus(s)
		if !status.Valid() {
			writeError(c, validation.Errorf("unknown task status %q", s))
			return
		}
		statuses = append(statuses, status)
	}
	tasks, total, err := h.uc.ListVendorTasks(c.Request.Context(), caller(c).UserID, statuses, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToTaskListResponse(tasks, total, page, limit))
}

func (h *TaskHandler) Start(c *gin.Context) {
	started, err := h.uc.StartTask(c.Request.Context(), c.Param("id"), caller(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToTaskResponse(started))
}

func (h *TaskHandler) Skip(c *gin.Context) {
	taskID := c.Param("id")
	charged, err := h.uc.SkipTask(c.Request.Context(), taskID, caller(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SkipTaskResponse{TaskID: taskID, Charged: string(charged)})
}

func (h *TaskHandler) Submit(c *gin.Context) {
	var req request.SubmitTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	submitted, err := h.uc.SubmitTask(c.Request.Context(), &taskdto.SubmitTaskInput{
		TaskID:        c.Param("id"),
		VendorID:      caller(c).UserID,
		SubmissionURL: req.SubmissionURL,
		Comments:      req.Comments,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToTaskResponse(submitted))
}

func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.uc.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToTaskResponse(t))
}

// Admin

func (h *TaskHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	tasks, total, err := h.uc.ListTasks(c.Request.Context(), &taskdto.ListTasksInput{
		Statuses:   statusQuery(c),
		AssignedTo: c.Query("assigned_to"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToTaskListResponse(tasks, total, page, limit))
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req request.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	created, err := h.uc.CreateTask(c.Request.Context(), &taskdto.CreateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		MediaURL:       req.MediaURL,
		TimeLimitHours: req.TimeLimitHours,
		Reward:         req.Reward,
		AssignedTo:     req.AssignedTo,
		CreatedBy:      caller(c).UserID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mappers.ToTaskResponse(created))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteTask(c.Request.Context(), c.Param("id"), caller(c).UserID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) Review(c *gin.Context) {
	var req request.ReviewTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	err := h.uc.ReviewTask(c.Request.Context(), &taskdto.ReviewTaskInput{
		TaskID:   c.Param("id"),
		AdminID:  caller(c).UserID,
		Decision: req.Decision,
		Reason:   req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.Get(c)
}

func (h *TaskHandler) Assign(c *gin.Context) {
	var req request.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if err := h.uc.AssignTask(c.Request.Context(), c.Param("id"), req.VendorID, caller(c).UserID); err != nil {
		writeError(c, err)
		return
	}
	h.Get(c)
}

func (h *TaskHandler) SetStatus(c *gin.Context) {
	var req request.SetTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	err := h.uc.SetTaskStatus(c.Request.Context(), c.Param("id"), domain.TaskStatus(req.Status), caller(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	h.Get(c)
}

// Bulk always answers 200 with per-item outcomes once the request itself
// is valid.
func (h *TaskHandler) Bulk(c *gin.Context) {
	var req request.BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	result, err := h.uc.BulkAction(c.Request.Context(), &taskdto.BulkActionInput{
		Action:     req.Action,
		TaskIDs:    req.TaskIDs,
		AdminID:    caller(c).UserID,
		Reason:     req.Reason,
		AssigneeID: req.AssigneeID,
		Status:     req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TaskHandler) Sweep(c *gin.Context) {
	missed, err := h.uc.MarkMissedTasks(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SweepResponse{Missed: missed})
}

// statusQuery accepts both ?status=a&status=b and ?status=a,b.
func statusQuery(c *gin.Context) []string {
	var out []string
	for _, v := range c.QueryArray("status") {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
