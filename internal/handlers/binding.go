package handlers

import (
	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations installs the "datekey" binding rule used by
// request DTOs that carry calendar day keys.
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("datekey", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDateKey(fl.Field().String())
		return err == nil
	})
}
