package handler

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every exported handler constructor carries the swag block the API docs are generated from
func TestHandlers_HaveSwaggerAnnotations(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	required := []string{"@Summary", "@Tags", "@Produce", "@Success", "@Router"}
	seen := 0
	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ParseComments)
		require.NoError(t, err)

		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || !strings.HasPrefix(fn.Name.Name, "Handle") || !fn.Name.IsExported() {
				continue
			}
			seen++
			doc := ""
			if fn.Doc != nil {
				doc = fn.Doc.Text()
			}
			for _, tag := range required {
				assert.Contains(t, doc, tag, "%s in %s", fn.Name.Name, name)
			}
			if strings.Contains(doc, "{id}") {
				assert.Contains(t, doc, "@Param id path", "%s in %s", fn.Name.Name, name)
			}
			if strings.Contains(doc, "@Router /api/v1/") {
				assert.Contains(t, doc, "@Security ApiKeyAuth", "%s in %s", fn.Name.Name, name)
			}
		}
	}
	assert.GreaterOrEqual(t, seen, 20)
}
