package docs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// Swagger returns the registered swagger 2.0 document.
func Swagger() ([]byte, error) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("reading swagger doc: %w", err)
	}
	return []byte(doc), nil
}

// OpenAPI3 converts the swagger 2.0 document to a validated OpenAPI 3 document
// with all references resolved.
func OpenAPI3(ctx context.Context) (*openapi3.T, error) {
	raw, err := Swagger()
	if err != nil {
		return nil, err
	}

	var doc2 openapi2.T
	if err := json.Unmarshal(raw, &doc2); err != nil {
		return nil, fmt.Errorf("parsing swagger doc: %w", err)
	}

	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("converting swagger doc: %w", err)
	}

	if err := openapi3.NewLoader().ResolveRefsIn(doc3, nil); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	if err := doc3.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	return doc3, nil
}
