package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmr-tortoise/rfcs/internal/model"
)

func doc(value, width int, path string) model.RfcDoc {
	return model.RfcDoc{
		ID: model.Identifier{
			Value:  value,
			Width:  width,
			Source: model.SourceFile,
		},
		Path: path,
	}
}

func TestSortDocs(t *testing.T) {
	docs := []model.RfcDoc{
		doc(11, 3, "011-caches.md"),
		doc(2, 3, "002-other.md"),
		doc(2, 3, "002-duplicate.md"),
		doc(1, 3, "001.md"),
	}

	sortDocs(docs)

	paths := make([]string, 0, len(docs))
	for _, d := range docs {
		paths = append(paths, d.Path)
	}
	assert.Equal(t, []string{
		"001.md",
		"002-duplicate.md",
		"002-other.md",
		"011-caches.md",
	}, paths)
}

func TestSortDocs_NumericNotLexicographic(t *testing.T) {
	docs := []model.RfcDoc{
		doc(100, 3, "100-big.md"),
		doc(20, 3, "020-small.md"),
	}

	sortDocs(docs)

	assert.Equal(t, "020-small.md", docs[0].Path)
	assert.Equal(t, "100-big.md", docs[1].Path)
}

func TestDuplicateValues(t *testing.T) {
	docs := []model.RfcDoc{
		doc(1, 3, "001.md"),
		doc(2, 3, "002-a.md"),
		doc(2, 3, "002-b.md"),
		doc(3, 3, "003.md"),
	}

	dups := duplicateValues(docs)

	assert.Equal(t, map[int]bool{2: true}, dups)
}

func TestDuplicateValues_PaddingDoesNotDistinguish(t *testing.T) {
	// 011 and 0011 are the same identifier; different widths still collide.
	docs := []model.RfcDoc{
		doc(11, 3, "011-caches.md"),
		doc(11, 4, "0011-caches-old.md"),
	}

	assert.Equal(t, map[int]bool{11: true}, duplicateValues(docs))
}

func TestDuplicateValues_Empty(t *testing.T) {
	assert.Empty(t, duplicateValues(nil))
}
