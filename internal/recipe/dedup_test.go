package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recettes/internal/domain"
)

func record(title, fileID string) domain.RecipeRecord {
	return domain.RecipeRecord{
		FileID:          fileID,
		Title:           title,
		NormalizedTitle: NormalizeTitle(title),
		TitleKey:        TitleKey(title),
	}
}

func TestFindDuplicatesExact(t *testing.T) {
	records := []domain.RecipeRecord{
		record("Tarte aux pommes", "a"),
		record("tarte aux Pommes !", "b"),
		record("Gratin dauphinois", "c"),
	}

	report := FindDuplicates(records)

	require.Len(t, report.Exact, 1)
	assert.Equal(t, "tarte aux pommes", report.Exact[0].Key)
	assert.Len(t, report.Exact[0].Entries, 2)
	assert.Empty(t, report.Near)
}

func TestFindDuplicatesNear(t *testing.T) {
	records := []domain.RecipeRecord{
		record("Poulet au Curry", "a"),
		record("Curry de Poulet", "b"),
	}

	report := FindDuplicates(records)

	assert.Empty(t, report.Exact)
	require.Len(t, report.Near, 1)
	assert.Equal(t, "curry poulet", report.Near[0].Key)
	assert.Len(t, report.Near[0].Entries, 2)
}

func TestFindDuplicatesSkipsEmptyTitles(t *testing.T) {
	records := []domain.RecipeRecord{
		record("", "a"),
		record("", "b"),
	}

	report := FindDuplicates(records)

	assert.Empty(t, report.Exact)
	assert.Empty(t, report.Near)
}

func TestFindDuplicatesNone(t *testing.T) {
	records := []domain.RecipeRecord{
		record("Tarte aux pommes", "a"),
		record("Gratin dauphinois", "b"),
	}

	report := FindDuplicates(records)

	assert.Empty(t, report.Exact)
	assert.Empty(t, report.Near)
}
