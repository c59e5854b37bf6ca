package script

import (
	"go/doc/comment"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackageDocHasSingleLicenseHeading(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "doc.go", nil, parser.ParseComments|parser.PackageClauseOnly)
	require.NoError(t, err)
	require.NotNil(t, f.Doc)
	var p comment.Parser
	headings := 0
	for _, block := range p.Parse(f.Doc.Text()).Content {
		if _, ok := block.(*comment.Heading); ok {
			headings++
		}
	}
	require.Equal(t, 1, headings)
}
