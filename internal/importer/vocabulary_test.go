package importer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/hubloom-cli/internal/importer"
)

func TestLoadVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	data := "guide:\n  - term: Recipe\n    weight: 2\n  - term: bake\ntool_review:\n  - term: oven\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	v, err := importer.LoadVocabulary(path)
	require.NoError(t, err)
	assert.Equal(t, []importer.Keyword{{Term: "recipe", Weight: 2}, {Term: "bake", Weight: 1}}, v.Guide)
	assert.Equal(t, []importer.Keyword{{Term: "oven", Weight: 1}}, v.ToolReview)
}

func TestLoadVocabularyRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"missing table": "guide:\n  - term: a\n",
		"empty term":    "guide:\n  - term: \"\"\ntool_review:\n  - term: b\n",
		"bad yaml":      "guide: [",
	}
	for name, data := range cases {
		path := filepath.Join(dir, name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
		_, err := importer.LoadVocabulary(path)
		assert.Error(t, err, name)
	}
	_, err := importer.LoadVocabulary(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultVocabularyIsValid(t *testing.T) {
	assert.NoError(t, importer.DefaultVocabulary().Validate())
}
