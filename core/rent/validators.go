package rent

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/pgkhata/pgkhata/core"
)

const statusTag = "rent_status"

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	core.RegisterOneOf(validate, translator, statusTag, Statuses...)
}
