package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// CustomValidator はEcho用のカスタムバリデーターです
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator は新しいCustomValidatorを作成します
func NewCustomValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// エラーのフィールド名はJSONタグ名を使用
	v.RegisterTagNameFunc(jsonFieldName)

	// カスタムバリデーション登録
	_ = v.RegisterValidation("password", validatePassword)
	_ = v.RegisterValidation("listingstatus", validateListingStatus)
	_ = v.RegisterValidation("condition", validateCondition)
	_ = v.RegisterValidation("currency", validateCurrency)

	return &CustomValidator{validator: v}
}

// Validate はリクエストを検証します
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// formatValidationErrors はバリデーションエラーをフォーマットします
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperror.NewValidationError(err.Error(), nil)
	}

	details := make([]apperror.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, apperror.FieldError{
			Field:   fieldPath(e),
			Message: getValidationMessage(e),
		})
	}

	return apperror.NewValidationError("validation failed", details)
}

// fieldPath はトップレベル構造体名を除いたフィールドパスを返します
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return toSnakeCase(fld.Name)
	}
	return name
}

// validatePassword はパスワードのバリデーション
func validatePassword(fl validator.FieldLevel) bool {
	return valueobject.ValidatePasswordPolicy(fl.Field().String()) == nil
}

func validateListingStatus(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := valueobject.NewListingStatus(s)
	return err == nil
}

func validateCondition(fl validator.FieldLevel) bool {
	_, err := valueobject.NewCondition(fl.Field().String())
	return err == nil
}

func validateCurrency(fl validator.FieldLevel) bool {
	_, err := valueobject.NewCurrency(fl.Field().String())
	return err == nil
}

// getValidationMessage はバリデーションエラーメッセージを返します
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		if e.Kind() == reflect.String {
			return "Ensure this field has at least " + e.Param() + " characters."
		}
		return "Ensure this value is greater than or equal to " + e.Param() + "."
	case "max":
		if e.Kind() == reflect.String {
			return "Ensure this field has no more than " + e.Param() + " characters."
		}
		return "Ensure this value is less than or equal to " + e.Param() + "."
	case "gte":
		return "Ensure this value is greater than or equal to " + e.Param() + "."
	case "lte":
		return "Ensure this value is less than or equal to " + e.Param() + "."
	case "gt":
		return "Ensure this value is greater than " + e.Param() + "."
	case "password":
		return "Password must be 8-72 characters with at least 2 of: uppercase, lowercase, digit."
	case "listingstatus", "condition":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(e.Value()))
	case "currency":
		return "Enter a valid 3-letter currency code."
	case "oneof":
		return "Must be one of: " + e.Param() + "."
	case "url":
		return "Enter a valid URL."
	case "latitude", "longitude":
		return "Enter a valid coordinate."
	case "unique":
		return "Items must be unique."
	default:
		return "Invalid value."
	}
}

// toSnakeCase はPascalCase/camelCaseをsnake_caseに変換します
func toSnakeCase(str string) string {
	var result []rune
	for i, r := range str {
		if i > 0 && 'A' <= r && r <= 'Z' {
			result = append(result, '_')
		}
		result = append(result, r)
	}
	return strings.ToLower(string(result))
}
