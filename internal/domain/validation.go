package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// FieldError describes one violated field, named as it appears on the wire.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewFieldError is a shortcut for a single-field ValidationError.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks v against its `validate` struct tags.
// It returns nil or a *ValidationError covering all failing fields.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", v, err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return out
}

// Bind decodes the JSON object data into the struct pointed to by dst and
// validates it. Every violated field is reported in one *ValidationError: a
// value of the wrong JSON type counts as a violation of that field, and the
// struct rules still run for the others. A body that is not an object is
// reported under the field "body".
func Bind(data []byte, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind: %T is not a pointer to struct", dst)
	}

	var values map[string]json.RawMessage
	if err := json.Unmarshal(data, &values); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return NewFieldError("body", "invalid type: expected JSON object, got JSON "+typeErr.Value)
		}
		return fmt.Errorf("bind: %w", err)
	}

	elem := rv.Elem()
	typ := elem.Type()
	typeErrs := make(map[string]string)
	names := make([]string, 0, typ.NumField())

	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := jsonName(sf)
		names = append(names, name)

		raw, ok := values[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, elem.Field(i).Addr().Interface()); err != nil {
			msg := "invalid value"
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				msg = "invalid type: got JSON " + typeErr.Value
			}
			typeErrs[name] = msg
		}
	}

	ruleErrs := make(map[string]string)
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate %T: %w", dst, err)
		}
		for _, fe := range verrs {
			ruleErrs[fe.Field()] = messageFor(fe)
		}
	}

	out := &ValidationError{}
	for _, name := range names {
		if msg, ok := typeErrs[name]; ok {
			out.Fields = append(out.Fields, FieldError{Field: name, Message: msg})
		} else if msg, ok := ruleErrs[name]; ok {
			out.Fields = append(out.Fields, FieldError{Field: name, Message: msg})
		}
	}
	if len(out.Fields) == 0 {
		return nil
	}
	return out
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "dotted_domain":
		return "email domain must contain a dot"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name.
	v.RegisterTagNameFunc(jsonName)

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "dotted_domain", func(fl validator.FieldLevel) bool {
		return HasDottedDomain(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// HasDottedDomain reports whether addr looks like local@domain with at
// least one dot inside the domain part.
func HasDottedDomain(addr string) bool {
	at := strings.LastIndexByte(addr, '@')
	if at <= 0 || at == len(addr)-1 {
		return false
	}
	domain := addr[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
