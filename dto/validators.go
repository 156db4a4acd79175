package dto

import (
	"gin-bomtracker/constants"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by the input DTOs
// and reports fields by their json names.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("userrole", oneOf(constants.RoleAdmin, constants.RoleUser))
		_ = v.RegisterValidation("projectstatus", oneOf(
			constants.ProjectStatusActive,
			constants.ProjectStatusCompleted,
			constants.ProjectStatusArchived,
		))
		_ = v.RegisterValidation("archivestatus", oneOf(
			constants.ArchiveStatusCompleted,
			constants.ArchiveStatusFailed,
			constants.ArchiveStatusCancelled,
		))
	})
}

func oneOf(allowed ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}
