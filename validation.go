package sdk

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a package-level singleton; creating a validator per call
// is expensive.
var validate = validator.New()

// ValidateConfig validates a Config map against a struct with
// validation tags: the map is marshalled to JSON, unmarshalled into the
// target struct, and the struct is validated.
func ValidateConfig(config Config, targetStruct interface{}) error {
	jsonBytes, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config map: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, targetStruct); err != nil {
		return fmt.Errorf("failed to unmarshal config into struct: %w", err)
	}

	if err := validate.Struct(targetStruct); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
