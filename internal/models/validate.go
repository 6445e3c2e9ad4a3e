package models

import "github.com/go-playground/validator/v10"

// validate backs the entity builders. Handlers keep their own instances for
// request-shaped structs.
var validate = validator.New()
