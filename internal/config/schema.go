package config

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"evalreport/domain/evaluation"
	"evalreport/internal/errors"
)

// LoadSchema starts from the named preset and overlays the YAML file at path,
// when one is given. Keys absent from the file keep the preset's values.
func LoadSchema(path, preset string) (evaluation.Schema, error) {
	base, ok := evaluation.SchemaPreset(preset)
	if !ok {
		return evaluation.Schema{}, errors.ConfigInvalid("unknown schema preset " + preset)
	}
	if path == "" {
		return base, validateSchema(base)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return evaluation.Schema{}, errors.WithCode(errors.CodeConfigInvalid, err)
	}
	return ParseSchema(data, base)
}

// ParseSchema decodes YAML on top of base
func ParseSchema(data []byte, base evaluation.Schema) (evaluation.Schema, error) {
	schema := base.Clone()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&schema); err != nil && err != io.EOF {
		return evaluation.Schema{}, errors.Wrap(errors.ConfigInvalid(err.Error()), "invalid schema file")
	}
	if err := validateSchema(schema); err != nil {
		return evaluation.Schema{}, err
	}
	return schema, nil
}

// MarshalSchema renders schema as YAML
func MarshalSchema(schema evaluation.Schema) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(schema); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func validateSchema(schema evaluation.Schema) error {
	if err := validate.Struct(schema); err != nil {
		return errors.ConfigInvalid("schema: " + describeValidation(err))
	}
	return nil
}
