package services

import (
	"errors"
	"fmt"

	"github.com/kavia-common/simple-to-do-list-311518-311527/broker"
	"github.com/kavia-common/simple-to-do-list-311518-311527/database"
	"github.com/kavia-common/simple-to-do-list-311518-311527/models"

	"gorm.io/gorm"
)

type TaskServiceInterface interface {
	GetAllTasks(db *database.Database) ([]models.Task, error)
	CreateTask(db *database.Database, input models.TaskCreate) (models.Task, error)
	ReplaceTask(db *database.Database, id uint, input models.TaskReplace) (models.Task, error)
	SetTaskCompletion(db *database.Database, id uint, completed bool) (models.Task, error)
	DeleteTask(db *database.Database, id uint) error
}

type TaskService struct{}

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

// validateTaskFields guards the store against out-of-bound writes even when
// a caller bypasses request binding. Lengths are counted in characters.
func validateTaskFields(title string, description *string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len([]rune(title)) > maxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrValidation, maxTitleLength)
	}
	if description != nil && len([]rune(*description)) > maxDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters", ErrValidation, maxDescriptionLength)
	}
	return nil
}

// GetAllTasks returns every task ordered by id descending, newest first.
func (s *TaskService) GetAllTasks(db *database.Database) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := db.DB.Order("id DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) CreateTask(db *database.Database, input models.TaskCreate) (models.Task, error) {
	if err := validateTaskFields(input.Title, input.Description); err != nil {
		return models.Task{}, err
	}

	now := models.UTCNow()
	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	if err := tx.Create(&task).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	broker.PublishTaskEvent(broker.TaskCreated, task)

	return task, nil
}

// ReplaceTask overwrites title, description and completed for an existing
// task. The existence check and the update run in one transaction so a
// concurrent delete cannot leave a half-applied row.
func (s *TaskService) ReplaceTask(db *database.Database, id uint, input models.TaskReplace) (models.Task, error) {
	if err := validateTaskFields(input.Title, input.Description); err != nil {
		return models.Task{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Completed = *input.Completed
	task.UpdatedAt = models.UTCNow()

	if err := tx.Save(&task).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	broker.PublishTaskEvent(broker.TaskUpdated, task)

	return task, nil
}

// SetTaskCompletion updates only the completion flag and updated_at; title,
// description and created_at are left untouched.
func (s *TaskService) SetTaskCompletion(db *database.Database, id uint, completed bool) (models.Task, error) {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	task.Completed = completed
	task.UpdatedAt = models.UTCNow()

	updates := map[string]interface{}{
		"completed":  task.Completed,
		"updated_at": task.UpdatedAt,
	}
	if err := tx.Model(&task).Updates(updates).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	broker.PublishTaskEvent(broker.TaskUpdated, task)

	return task, nil
}

// DeleteTask removes the row permanently. Ids are never reissued because the
// table keeps its autoincrement high-water mark.
func (s *TaskService) DeleteTask(db *database.Database, id uint) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	if err := tx.Delete(&task).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	broker.PublishTaskEvent(broker.TaskDeleted, task)

	return nil
}

var TaskServiceInstance TaskServiceInterface = &TaskService{}
