package docs

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var routerAnnotation = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)

type swaggerDoc struct {
	Paths               map[string]map[string]json.RawMessage `json:"paths"`
	SecurityDefinitions map[string]json.RawMessage            `json:"securityDefinitions"`
}

func readRegisteredDoc(t *testing.T) swaggerDoc {
	t.Helper()
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestEveryAnnotatedRouteIsDocumented(t *testing.T) {
	doc := readRegisteredDoc(t)

	annotated := 0
	err := filepath.WalkDir("../internal", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return err
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range routerAnnotation.FindAllStringSubmatch(string(src), -1) {
			annotated++
			methods, ok := doc.Paths[m[1]]
			if assert.True(t, ok, "%s: path %s missing from docs", path, m[1]) {
				_, ok = methods[m[2]]
				assert.True(t, ok, "%s: %s %s missing from docs", path, m[2], m[1])
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Greater(t, annotated, 0)
}

func TestDocumentDeclaresBearerAuth(t *testing.T) {
	doc := readRegisteredDoc(t)
	assert.Contains(t, doc.SecurityDefinitions, "BearerAuth")
	assert.Contains(t, doc.Paths, "/api/cases/{id}/audit")
}
