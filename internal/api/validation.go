// File: internal/api/validation.go
package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator 包裝 go-playground/validator 以符合 echo.Validator 介面
type Validator struct {
	validate *validator.Validate
}

// NewValidator 建立 Validator，欄位名稱取自 json tag 方便組錯誤訊息
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate 實作 echo.Validator
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// ValidationMessage 將 validator 錯誤轉成穩定且可讀的訊息
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	var msgs []string
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("missing required field: %s", field))
		case "email":
			msgs = append(msgs, "invalid email format")
		case "min", "max":
			if strings.HasSuffix(field, "_rating") {
				msgs = append(msgs, fmt.Sprintf("%s must be an integer between 1 and 5", field))
			} else {
				msgs = append(msgs, fmt.Sprintf("invalid value for %s", field))
			}
		default:
			msgs = append(msgs, fmt.Sprintf("invalid value for %s", field))
		}
	}
	return strings.Join(msgs, "; ")
}
