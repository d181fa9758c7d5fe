package pool

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// BankEntry replaces the text of one pool question.
type BankEntry struct {
	ID   int    `yaml:"id"`
	Text string `yaml:"text"`
}

// Bank is a deployer-supplied set of real question texts.
type Bank struct {
	Questions []BankEntry `yaml:"questions"`
}

const bankSchemaURL = "schema://question-bank.json"

const bankSchema = `{
	"type": "object",
	"required": ["questions"],
	"additionalProperties": false,
	"properties": {
		"questions": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "text"],
				"additionalProperties": false,
				"properties": {
					"id": {"type": "integer", "minimum": 1},
					"text": {"type": "string", "minLength": 1}
				}
			}
		}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// LoadBank reads and validates a YAML question bank file.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return ParseBank(data)
}

// ParseBank decodes a YAML question bank and validates it against the
// bank schema. Duplicate ids are rejected.
func ParseBank(data []byte) (*Bank, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}
	if err := validateBank(raw); err != nil {
		return nil, err
	}

	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	seen := make(map[int]bool, len(b.Questions))
	for _, e := range b.Questions {
		if seen[e.ID] {
			return nil, fmt.Errorf("duplicate question id %d in bank", e.ID)
		}
		seen[e.ID] = true
	}
	return &b, nil
}

// validateBank checks the decoded YAML document against bankSchema.
func validateBank(raw any) error {
	schema, err := bankValidator()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	// The validator expects JSON-shaped values, so normalise the YAML
	// document through a JSON round trip.
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("normalise question bank: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("normalise question bank: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("question bank does not match schema: %w", err)
	}
	return nil
}

func bankValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(bankSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(bankSchemaURL)
	})
	return compiledSchema, compileErr
}
