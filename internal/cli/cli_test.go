package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"aivanta-site/internal/catalog"
	"aivanta-site/internal/config"
)

func run(t *testing.T, deps Deps, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(deps)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func depsWith(cat *catalog.Catalog) Deps {
	return Deps{
		Catalog: func() *catalog.Catalog { return cat },
		Config:  func() *config.Config { return &config.Config{RedisURL: "localhost:0"} },
	}
}

func TestRootCommandTree(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)

	for _, path := range [][]string{
		{"catalog", "validate"},
		{"catalog", "list"},
		{"catalog", "export"},
		{"sections"},
		{"cache", "flush"},
		{"serve"},
	} {
		found, _, err := cmd.Find(path)
		require.NoError(t, err, "%v", path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, serve.Flags().Lookup("port"))
}

func TestCatalogValidate(t *testing.T) {
	out, err := run(t, depsWith(catalog.Default()), "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog ok: 5 categories, 20 sub-services")
}

func TestCatalogValidateFails(t *testing.T) {
	broken := catalog.New(catalog.Content{
		Categories: []catalog.ServiceCategory{{Slug: "a"}, {Slug: "a"}},
	})

	_, err := run(t, depsWith(broken), "catalog", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate slug "a"`)
}

func TestCatalogList(t *testing.T) {
	out, err := run(t, depsWith(catalog.Default()), "catalog", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "leadgeneratie")
	assert.Contains(t, out, "onboarding-backoffice")

	out, err = run(t, depsWith(catalog.Default()), "catalog", "list", "--kind", "subservices")
	require.NoError(t, err)
	assert.Contains(t, out, "ai-leadkwalificatie-scoring")

	_, err = run(t, depsWith(catalog.Default()), "catalog", "list", "--kind", "posts")
	assert.Error(t, err)
}

func TestCatalogExportJSON(t *testing.T) {
	out, err := run(t, depsWith(catalog.Default()), "catalog", "export")
	require.NoError(t, err)

	var content catalog.Content
	require.NoError(t, json.Unmarshal([]byte(out), &content))
	assert.Len(t, content.Categories, 5)
	assert.Equal(t, catalog.Default().Stats().UseCases, len(content.UseCases))
}

func TestCatalogExportYAML(t *testing.T) {
	out, err := run(t, depsWith(catalog.Default()), "catalog", "export", "--format", "yaml")
	require.NoError(t, err)

	var content catalog.Content
	require.NoError(t, yaml.Unmarshal([]byte(out), &content))
	require.Len(t, content.Categories, 5)
	assert.Equal(t, "leadgeneratie", content.Categories[0].Slug)
}

func TestCatalogExportUnknownFormat(t *testing.T) {
	_, err := run(t, depsWith(catalog.Default()), "catalog", "export", "-f", "xml")
	assert.Error(t, err)
}

func TestSections(t *testing.T) {
	out, err := run(t, depsWith(catalog.Default()), "sections")
	require.NoError(t, err)
	assert.Contains(t, out, "usecases")
	assert.Contains(t, out, "/static/js/carousel.js")

	out, err = run(t, depsWith(catalog.Default()), "sections", "--json")
	require.NoError(t, err)
	var metas []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &metas))
	assert.NotEmpty(t, metas)
}
