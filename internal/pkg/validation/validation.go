package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperror "gescon/internal/errors"
)

// Validator encapsula o validador de schema usado pelos handlers. Os DTOs
// declaram as regras em tags `validate`; aqui só traduzimos as violações
// para o formato do contrato da API.
type Validator struct {
	validate *validator.Validate
}

// New cria o validador, registrando o nome do campo JSON para que os
// detalhes de erro falem a língua do payload, não a do struct Go.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct valida um DTO e devolve um erro de schema ("Validation failed")
// com a lista de violações por campo, ou nil.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.NewInternalError("falha inesperada do validador", err)
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}
	return apperror.NewSchemaError(details)
}

// describe converte uma violação em uma linha legível para o campo details.
func describe(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fmt.Sprintf("%s: failed on '%s=%s'", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s: failed on '%s'", fe.Field(), fe.Tag())
}
