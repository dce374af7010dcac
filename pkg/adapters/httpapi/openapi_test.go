package httpapi

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPIDocument(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	for _, path := range []string{
		"/api/state",
		"/api/dhatus",
		"/api/dhatus/{code}",
		"/api/tinantas",
		"/api/krdantas",
		"/api/prakriya",
		"/health",
		"/info",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "path %s missing from document", path)
	}
}
