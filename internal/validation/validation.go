// Package validation wraps go-playground/validator with the payload rules
// of this API and translates rule failures into ordered, human-readable
// Portuguese messages.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// messages maps "Struct.Field.tag" to the client-facing message for that
// rule. Fields are reported in declaration order, so the resulting message
// list is stable.
var messages = map[string]string{
	"UserInput.Name.required":     "Nome é obrigatório",
	"UserInput.Name.fullname":     "Informe pelo menos nome e sobrenome",
	"UserInput.Email.required":    "E-mail é obrigatório",
	"UserInput.Email.email":       "E-mail inválido",
	"UserInput.Password.required": "Senha é obrigatória",
	"UserInput.Password.min":      "A senha deve ter pelo menos 8 caracteres",

	"CreateStoreInput.Name.required":   "Nome da loja é obrigatório",
	"CreateStoreInput.UserID.required": "userId é obrigatório",
	"UpdateStoreInput.Name.required":   "Nome da loja é obrigatório",

	"CreateProductInput.Name.required":    "Nome do produto é obrigatório",
	"CreateProductInput.Price.required":   "Preço é obrigatório",
	"CreateProductInput.Price.gt":         "Preço deve ser maior que zero",
	"CreateProductInput.StoreID.required": "storeId é obrigatório",
	"UpdateProductInput.Name.required":    "Nome do produto é obrigatório",
	"UpdateProductInput.Price.required":   "Preço é obrigatório",
	"UpdateProductInput.Price.gt":         "Preço deve ser maior que zero",
}

// Validator validates request payloads against their declared rules.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New()
	// fullname: at least first and last name, split on whitespace.
	_ = v.RegisterValidation("fullname", func(fl validator.FieldLevel) bool {
		return len(strings.Fields(fl.Field().String())) >= 2
	})
	return &Validator{validate: v}
}

// Validate checks in against its validate tags and returns one message per
// violated rule, ordered by field declaration. A nil return means the
// payload is valid.
func (v *Validator) Validate(in any) []string {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: not a struct. Treated as a payload
		// problem, never a crash.
		return []string{"Corpo da requisição inválido"}
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, messageFor(fe))
	}
	return msgs
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := messages[fe.StructNamespace()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("Campo %s inválido", fe.Field())
}
