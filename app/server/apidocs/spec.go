package apidocs

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openapiYAML []byte

// Spec 加载并校验内嵌的 OpenAPI 文档
func Spec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// SpecJSON 提供给文档页面的 JSON 版本
func SpecJSON(ctx context.Context) ([]byte, error) {
	doc, err := Spec(ctx)
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}
