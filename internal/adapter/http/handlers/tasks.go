package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/internal/core/query"
	"taskboard/pkg/apierrors"
	"taskboard/pkg/translator"
)

const (
	msgKeyTaskCreated = "taskCreated"
	msgKeyTaskUpdated = "taskUpdated"
	msgKeyTaskDeleted = "taskDeleted"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateErrorWithCause(apierrors.MsgFailListTasks, lang, err),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{
		Success: true,
		Count:   len(tasks),
		Data:    mapper.ToTaskItems(tasks),
	})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(validationMsgKey(err), lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateErrorWithCause(apierrors.MsgFailCreateTask, lang, err),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.TaskResponse{
		Success: true,
		Message: translator.Localize(msgKeyTaskCreated, lang),
		Data:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(taskID); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	// Decode twice: the raw map distinguishes an omitted field from an
	// explicit null, the typed struct carries the values.
	var raw map[string]json.RawMessage
	var req dto.UpdateTaskRequest
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(validationMsgKey(err), lang),
		)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateErrorWithCause(apierrors.MsgFailUpdateTask, lang, err),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Success: true,
		Message: translator.Localize(msgKeyTaskUpdated, lang),
		Data:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(taskID); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	task, err := h.taskService.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateErrorWithCause(apierrors.MsgFailDeleteTask, lang, err),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Success: true,
		Message: translator.Localize(msgKeyTaskDeleted, lang),
		Data:    mapper.ToTaskItem(task),
	})
}

// TaskBoard runs the query pipeline server-side: status/priority filters
// plus a sort order, grouped into status buckets when no status filter is
// active. Unknown filter values simply match nothing, as in the UI.
func (h *TaskHandler) TaskBoard(c *gin.Context) {
	lang := middleware.GetLang(c)

	filters := query.Filters{
		Status:   c.DefaultQuery("status", query.FilterAll),
		Priority: c.DefaultQuery("priority", query.FilterAll),
		SortBy:   c.DefaultQuery("sortBy", query.SortByCreatedAt),
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list tasks for board", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateErrorWithCause(apierrors.MsgFailListTasks, lang, err),
		)
		return
	}

	visible := query.Apply(tasks, filters)

	var view dto.BoardView
	if filters.Status == "" || filters.Status == query.FilterAll {
		view.Grouped = true
		for _, group := range query.GroupByStatus(visible) {
			view.Groups = append(view.Groups, dto.BoardGroup{
				Status: string(group.Status),
				Count:  len(group.Tasks),
				Tasks:  mapper.ToTaskItems(group.Tasks),
			})
		}
	} else {
		view.Tasks = mapper.ToTaskItems(visible)
	}

	c.JSON(http.StatusOK, dto.BoardResponse{
		Success: true,
		Count:   len(visible),
		Data:    view,
	})
}

func validationMsgKey(err error) string {
	switch {
	case errors.Is(err, validation.ErrTitleRequired):
		return apierrors.MsgTitleRequired
	case errors.Is(err, validation.ErrInvalidStatus):
		return apierrors.MsgInvalidStatus
	case errors.Is(err, validation.ErrInvalidPriority):
		return apierrors.MsgInvalidPriority
	case errors.Is(err, validation.ErrInvalidDueDate):
		return apierrors.MsgInvalidDueDate
	default:
		return apierrors.MsgInvalidTaskPayload
	}
}
