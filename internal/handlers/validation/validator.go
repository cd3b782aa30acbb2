package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// Tags de erro que não vêm do validator
const (
	TagType        = "type"
	TagInvalidJSON = "json"
	TagInvalidID   = "id"
	TagMonth       = "month"
	TagYear        = "year"
)

// FieldError descreve uma regra violada por um campo da requisição
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// MessageKey retorna a chave i18n da mensagem do erro
func (e FieldError) MessageKey() string {
	switch e.Tag {
	case "required", "notblank", "email", "len", "min", "max", "gt", "gte", TagType, TagMonth, TagYear:
		return "validation." + e.Tag
	case TagInvalidJSON:
		return "validation.invalid_json"
	case TagInvalidID:
		return "validation.invalid_id"
	default:
		return "validation.default"
	}
}

// Validator implementa binding.StructValidator usando as tags `binding`
type Validator struct {
	once     sync.Once
	validate *validator.Validate
}

var _ binding.StructValidator = (*Validator)(nil)

// New cria o validador com as regras customizadas da API
func New() *Validator {
	v := &Validator{}
	v.lazyinit()
	return v
}

// Install substitui o validador padrão do gin
func Install() *Validator {
	v := New()
	binding.Validator = v
	return v
}

// ValidateStruct valida ponteiros para struct e structs; outros tipos passam direto
func (v *Validator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}

	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}

	v.lazyinit()
	return v.validate.Struct(obj)
}

// Engine expõe o *validator.Validate subjacente
func (v *Validator) Engine() any {
	v.lazyinit()
	return v.validate
}

func (v *Validator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New(validator.WithRequiredStructEnabled())
		v.validate.SetTagName("binding")

		// erros usam o nome do campo no JSON
		v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		v.validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})

		_ = v.validate.RegisterValidation("notblank", validators.NotBlank)
	})
}

// FieldErrors converte o erro de bind/validação em uma lista de FieldError.
// Todas as regras violadas são reportadas, na ordem dos campos.
func FieldErrors(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, FieldError{
				Field: fe.Field(),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}
		return fields
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []FieldError{{Field: field, Tag: TagType}}
	}

	return []FieldError{{Field: "body", Tag: TagInvalidJSON}}
}

// ParseID converte um parâmetro de rota em id positivo
func ParseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
