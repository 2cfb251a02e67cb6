package generator

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// decodeSection decodes a raw platforms.<key> section into target. Unknown
// keys are rejected so typos surface as configuration errors.
func decodeSection(section map[string]any, target any) error {
	if section == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(section); err != nil {
		return fmt.Errorf("invalid section: %w", err)
	}
	return nil
}

func nonEmpty(items []string) bool {
	for _, s := range items {
		if s != "" {
			return true
		}
	}
	return false
}
