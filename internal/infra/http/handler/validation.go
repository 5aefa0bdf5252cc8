package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Mensagens por "campo.tag" (nome do campo = nome no JSON)
var validationMessages = map[string]string{
	"name.notblank":        "Name cannot be null or empty",
	"taxId.notblank":       "CPF cannot be null or empty",
	"taxId.cpf":            "CPF is invalid",
	"email.notblank":       "Email cannot be null or empty",
	"email.email":          "Email is invalid",
	"password.notblank":    "Password cannot be null or empty",
	"role.notblank":        "User role cannot be null or empty",
	"login.notblank":       "Login cannot be null or empty",
	"senderId.required":    "The sender must be indicated",
	"recipientId.required": "The recipient must be indicated",
	"value.required":       "The transfer amount must be indicated",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return IsValidCPF(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// decodeAndValidate lê o corpo JSON e devolve todas as mensagens de campo inválido.
// ok=false significa que a resposta 400 já foi escrita.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondErrors(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	err := validate.Struct(dst)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		respondErrors(w, http.StatusBadRequest, err.Error())
		return false
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := validationMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		messages = append(messages, msg)
	}
	respondErrors(w, http.StatusBadRequest, messages...)
	return false
}

// IsValidCPF confere os dois dígitos verificadores. Aceita "137.116.950-00" ou só dígitos.
func IsValidCPF(raw string) bool {
	digits := make([]int, 0, 11)
	for _, c := range raw {
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, int(c-'0'))
		case c == '.' || c == '-':
		default:
			return false
		}
	}
	if len(digits) != 11 {
		return false
	}

	allSame := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return checkDigit(digits[:9]) == digits[9] && checkDigit(digits[:10]) == digits[10]
}

func checkDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, d := range digits {
		sum += d * weight
		weight--
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
