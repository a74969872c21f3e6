package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recettes/internal/domain"
	"recettes/internal/foodtable"
)

func testDoc(name string) domain.RawDocument {
	return domain.RawDocument{
		ID:       "doc-1",
		Name:     name,
		MimeType: "text/plain",
		FullPath: "Recettes/" + name,
	}
}

func TestBuildRecordConfident(t *testing.T) {
	text := "Ingrédients\n" +
		"- 150 g poulet\n" +
		"- 1 cs huile d'olive\n" +
		"Préparation\n" +
		"1. Saisir le poulet\n" +
		"2. Servir\n"

	rec := BuildRecord(testDoc("Poulet grillé"), text, foodtable.Builtin())

	assert.Equal(t, domain.ParseStatusConfident, rec.ParseStatus)
	assert.Equal(t, []string{"150 g poulet", "1 cs huile d'olive"}, []string(rec.Ingredients))
	assert.Equal(t, []string{"Saisir le poulet", "Servir"}, []string(rec.Steps))
	assert.Empty(t, rec.IngredientsInvalid)
	assert.Equal(t, "poulet grille", rec.NormalizedTitle)
	assert.Equal(t, "grille poulet", rec.TitleKey)
	assert.Equal(t, "Recettes/Poulet grillé", rec.FullPath)
	assert.Equal(t, 380, rec.TotalKcal)
	assert.Equal(t, 3, rec.Portions)
}

func TestBuildRecordPartialSkipsNutrition(t *testing.T) {
	text := "Ingrédients\n" +
		"- 150 g poulet\n" +
		"- Mélanger 2 oeufs\n" +
		"Préparation\n" +
		"1. Cuire\n"

	rec := BuildRecord(testDoc("Omelette"), text, foodtable.Builtin())

	assert.Equal(t, domain.ParseStatusPartial, rec.ParseStatus)
	assert.Contains(t, []string(rec.ParseNotes), domain.NotePartialInvalidIngredients)
	require.Len(t, rec.IngredientsInvalid, 1)
	assert.Zero(t, rec.TotalKcal)
	assert.Equal(t, 3, rec.Portions)
}

func TestBuildRecordEmptyText(t *testing.T) {
	rec := BuildRecord(testDoc("Page blanche"), "", foodtable.Builtin())

	assert.Equal(t, domain.ParseStatusIncomplete, rec.ParseStatus)
	assert.Contains(t, []string(rec.ParseNotes), domain.NoteEmptyText)
	assert.Contains(t, []string(rec.ParseNotes), domain.NoteNoValidIngredients)
	assert.Contains(t, []string(rec.ParseNotes), domain.NoteNoSteps)
	assert.Zero(t, rec.TotalKcal)
}

func TestBuildRecordPortionsFromText(t *testing.T) {
	text := "Ingrédients\n- 150 g poulet\nPréparation\n1. Cuire pour 6 personnes\n"

	rec := BuildRecord(testDoc("Poulet"), text, foodtable.Builtin())

	assert.Equal(t, 6, rec.Portions)
}

func TestBuildRecordRawFallbackNote(t *testing.T) {
	text := "Ingrédients\n- farine selon besoin\n- beurre bien mou\nPréparation\n1. Tout travailler ensemble\n"

	rec := BuildRecord(testDoc("Pâte maison"), text, foodtable.Builtin())

	assert.Contains(t, []string(rec.ParseNotes), domain.NoteIngredientGrammarFallback)
	assert.Equal(t, []string{"farine selon besoin", "beurre bien mou"}, []string(rec.Ingredients))
}

func TestBuildRecordFullPathDefaultsToName(t *testing.T) {
	doc := domain.RawDocument{ID: "doc-2", Name: "Soupe"}
	rec := BuildRecord(doc, "", foodtable.Builtin())

	assert.Equal(t, "Soupe", rec.FullPath)
}
