package report

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Schema 返回 JSON 报告使用的 schema 原文。
func Schema() []byte {
	return append([]byte(nil), schemaJSON...)
}

// ValidateJSON 校验 JSON 报告是否符合内置 schema。
func ValidateJSON(content []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(content, &v); err != nil {
		return fmt.Errorf("decode json report: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json report does not match schema: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load report schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema.json")
	})
	return compiledSchema, schemaErr
}
