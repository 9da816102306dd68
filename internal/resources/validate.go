package resources

import (
	"github.com/go-playground/validator/v10"

	"github.com/abhisek/coursemap/internal/catalog"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("resource_type", func(fl validator.FieldLevel) bool {
		return Type(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
	return v
}

func validateResource(r Resource) error {
	if err := validate.Struct(r); err != nil {
		return &catalog.ValidationError{Kind: "resource", ID: r.ID, Problems: catalog.FieldProblems(err)}
	}
	return nil
}
