package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var productFieldMessages = map[string]string{
	"Name":     "Product name is required",
	"Price":    "Product price is required",
	"Image":    "Product image is required",
	"Category": "Product category is required",
}

// productValidationMessage maps the first failed field to its client-facing
// message.
func productValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := productFieldMessages[verrs[0].Field()]; ok {
			return msg
		}
	}
	return "Invalid product payload"
}
