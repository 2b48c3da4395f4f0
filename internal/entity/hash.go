package entity

import (
	"strconv"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"
)

const hashTag = "structs"

// ToHash flattens v into the field/value map written to a Redis hash. Fields
// tagged "-" are skipped.
func ToHash(v any) map[string]any {
	s := structs.New(v)
	s.TagName = hashTag
	return s.Map()
}

// ToHashPatch is ToHash without zero-valued fields, for partial updates.
func ToHashPatch(v any) map[string]any {
	s := structs.New(v)
	s.TagName = hashTag

	result := map[string]any{}
	for _, f := range s.Fields() {
		name := f.Tag(hashTag)
		if name == "" || name == "-" || f.IsZero() {
			continue
		}
		result[name] = f.Value()
	}

	return result
}

// FromHash decodes a Redis hash into out. Numeric fields are parsed from their
// string form.
func FromHash(hash map[string]string, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           out,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(hash)
}

// normalizeInt rewrites field in hash to "0" when it is missing or is not an
// integer.
func normalizeInt(hash map[string]string, field string) map[string]string {
	result := make(map[string]string, len(hash)+1)
	for k, v := range hash {
		result[k] = v
	}

	if _, err := strconv.Atoi(result[field]); err != nil {
		result[field] = "0"
	}

	return result
}
