package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// FieldError 单个字段的校验错误(作为400信封的responseObject返回)
type FieldError struct {
	Field   string `json:"field" example:"title"`
	Message string `json:"message" example:"is required"`
}

func init() {
	// 校验错误使用json/form/uri中的字段名,而不是Go结构体字段名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(tagName)
	}
}

func tagName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form", "uri"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// InvalidInput 将绑定/校验错误转换为AppError和字段错误列表
// 提示信息格式:"Invalid input: title is required; stock must be greater than or equal to 0"
func InvalidInput(err error) (*apperrors.AppError, []FieldError) {
	fields := FieldErrors(err)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Field == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Field+" "+f.Message)
	}

	message := apperrors.ErrInvalidParams.Message + ": " + strings.Join(parts, "; ")
	return apperrors.New(http.StatusBadRequest, message).WithCause(err), fields
}

// FieldErrors 提取字段级错误
func FieldErrors(err error) []FieldError {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		syntaxErr      *json.SyntaxError
	)

	switch {
	case errors.As(err, &validationErrs):
		fields := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: ruleMessage(fe)})
		}
		return fields
	case errors.As(err, &typeErr):
		return []FieldError{{Field: typeErr.Field, Message: "must be of type " + typeErr.Type.String()}}
	case errors.As(err, &syntaxErr):
		return []FieldError{{Message: "malformed JSON body"}}
	case errors.Is(err, io.EOF):
		return []FieldError{{Message: "request body is required"}}
	default:
		return []FieldError{{Message: err.Error()}}
	}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
