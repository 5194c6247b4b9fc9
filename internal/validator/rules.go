package validator

import (
	"kirismor_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds the enum rules used by the request DTOs.
func registerCustomRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"user_role": func(fl validator.FieldLevel) bool {
			return models.ValidRole(models.UserRole(fl.Field().String()))
		},
		"task_status": func(fl validator.FieldLevel) bool {
			return models.ValidTaskStatus(models.TaskStatus(fl.Field().String()))
		},
		"task_priority": func(fl validator.FieldLevel) bool {
			return models.ValidTaskPriority(models.TaskPriority(fl.Field().String()))
		},
		"request_status": func(fl validator.FieldLevel) bool {
			return models.ValidRequestStatus(models.RequestStatus(fl.Field().String()))
		},
		"application_status": func(fl validator.FieldLevel) bool {
			return models.ValidApplicationStatus(models.ApplicationStatus(fl.Field().String()))
		},
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
