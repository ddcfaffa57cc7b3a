package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kavia-common/simple-to-do-list-311518-311527/database"
	"github.com/kavia-common/simple-to-do-list-311518-311527/models"
	"github.com/kavia-common/simple-to-do-list-311518-311527/services"
)

func RegisterTaskRoutes(router *gin.Engine, db *database.Database, taskService services.TaskServiceInterface) {
	router.GET("/tasks", func(c *gin.Context) { GetTasks(c, db, taskService) })
	router.POST("/tasks", func(c *gin.Context) { CreateTask(c, db, taskService) })
	router.PUT("/tasks/:id", func(c *gin.Context) { ReplaceTask(c, db, taskService) })
	router.PATCH("/tasks/:id/complete", func(c *gin.Context) { SetTaskCompletion(c, db, taskService) })
	router.DELETE("/tasks/:id", func(c *gin.Context) { DeleteTask(c, db, taskService) })
}

// taskID parses the :id path parameter. Anything that is not an integer of
// at least 1 is a request-validation failure, not a missing task.
func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": gin.H{"id": "must be an integer greater than or equal to 1"},
		})
		return 0, false
	}
	return uint(id), true
}

// validationError reports a 422 with field-level detail for binding
// failures.
func validationError(c *gin.Context, err error) {
	details := gin.H{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				details[field] = "this field is required"
			case "max":
				details[field] = fmt.Sprintf("must be at most %s characters", fe.Param())
			case "min":
				details[field] = fmt.Sprintf("must be at least %s characters", fe.Param())
			default:
				details[field] = "invalid value"
			}
		}
	} else {
		details["body"] = err.Error()
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "details": details})
}

// GetTasks lists every task, newest id first.
func GetTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	tasks, err := taskService.GetAllTasks(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.TaskListResponse{Tasks: tasks})
}

func CreateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	var input models.TaskCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		validationError(c, err)
		return
	}

	createdTask, err := taskService.CreateTask(db, input)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, createdTask)
}

// ReplaceTask fully overwrites an existing task and returns it bare.
func ReplaceTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var input models.TaskReplace
	if err := c.ShouldBindJSON(&input); err != nil {
		validationError(c, err)
		return
	}

	updatedTask, err := taskService.ReplaceTask(db, id, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, updatedTask)
}

// SetTaskCompletion flips only the completion flag and returns the task
// inside the named wrapper the contract requires.
func SetTaskCompletion(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var input models.TaskCompletion
	if err := c.ShouldBindJSON(&input); err != nil {
		validationError(c, err)
		return
	}

	updatedTask, err := taskService.SetTaskCompletion(db, id, *input.Completed)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.TaskCompletionResponse{Task: updatedTask})
}

func DeleteTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := taskService.DeleteTask(db, id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
