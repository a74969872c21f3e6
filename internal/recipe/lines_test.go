package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIngredientLinesAcceptsGrammar(t *testing.T) {
	block := "- 200 g farine\n" +
		"- 3 pommes\n" +
		"- 1/2 l de lait\n" +
		"- 2,5 cl de rhum\n"

	res := ParseIngredientLines(block)

	assert.Equal(t, []string{"200 g farine", "3 pommes", "1/2 l de lait", "2,5 cl de rhum"}, res.Valid)
	assert.Empty(t, res.Invalid)
	assert.False(t, res.RawFallback)
}

func TestParseIngredientLinesSkipsLabelsAndSeasoning(t *testing.T) {
	block := "Pour la sauce\n" +
		"Garniture:\n" +
		"sel\n" +
		"poivre\n" +
		"200 g farine\n"

	res := ParseIngredientLines(block)

	assert.Equal(t, []string{"200 g farine"}, res.Valid)
	assert.Empty(t, res.Invalid)
}

func TestParseIngredientLinesRejectsCookingVerbs(t *testing.T) {
	block := "200 g farine\nMélanger 2 oeufs avec le sucre\n"

	res := ParseIngredientLines(block)

	assert.Equal(t, []string{"200 g farine"}, res.Valid)
	assert.Equal(t, []string{"Mélanger 2 oeufs avec le sucre"}, res.Invalid)
}

func TestParseIngredientLinesMergesQuantityOnlyLine(t *testing.T) {
	block := "2\noignons rouges\n200 g\nfarine\n"

	res := ParseIngredientLines(block)

	assert.Equal(t, []string{"2 oignons rouges", "200 g farine"}, res.Valid)
	assert.Empty(t, res.Invalid)
}

func TestParseIngredientLinesNormalizesNotation(t *testing.T) {
	block := "- ½ citron\n" +
		"- 2x200 g steaks hachés\n" +
		"- 2 (200 g) blancs de poulet\n"

	res := ParseIngredientLines(block)

	require.Len(t, res.Valid, 3)
	assert.Equal(t, "1/2 citron", res.Valid[0])
	assert.Equal(t, "2 x 200 g steaks hachés", res.Valid[1])
	assert.Equal(t, "2 200 g blancs de poulet", res.Valid[2])
}

func TestParseIngredientLinesRawFallback(t *testing.T) {
	block := "farine et oeufs selon l'envie\nbeurre bien mou\n"

	res := ParseIngredientLines(block)

	assert.True(t, res.RawFallback)
	assert.Equal(t, []string{"farine et oeufs selon l'envie", "beurre bien mou"}, res.Valid)
	assert.Empty(t, res.Invalid)
}

func TestParseIngredientLinesEmptyBlock(t *testing.T) {
	res := ParseIngredientLines("")

	assert.Empty(t, res.Valid)
	assert.Empty(t, res.Invalid)
	assert.False(t, res.RawFallback)
}

func TestLinesToList(t *testing.T) {
	block := "1. Étaler la pâte\n- Disposer les pommes\n\n2) Enfourner 30 min\n"

	assert.Equal(t,
		[]string{"Étaler la pâte", "Disposer les pommes", "Enfourner 30 min"},
		LinesToList(block))
}
