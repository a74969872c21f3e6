package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"recettes/internal/domain"
	"recettes/internal/foodtable"
	"recettes/internal/service"
	"recettes/mocks"
)

const pouletText = `Poulet au riz

Pour 4 personnes

Ingrédients
- 200 g riz basmati
- 2 cs huile d'olive

Préparation
1. Cuire le riz.
2. Servir.
`

func TestScanner_Scan_BuildsRecords(t *testing.T) {
	mockSource := new(mocks.MockDocumentSource)
	docs := []domain.RawDocument{
		{ID: "doc-1", Name: "Poulet au riz", MimeType: "text/plain"},
		{ID: "doc-2", Name: "Notes", MimeType: "text/plain"},
	}
	mockSource.On("List", mock.Anything).Return(docs, nil)
	mockSource.On("Text", mock.Anything, docs[0]).Return(pouletText, nil)
	mockSource.On("Text", mock.Anything, docs[1]).Return("just some notes", nil)

	scanner := service.NewScanner(mockSource, foodtable.Builtin(), 2)
	result, err := scanner.Scan(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Indexed)
	assert.Equal(t, 0, result.Skipped)
	assert.Len(t, result.Records, 2)

	first := result.Records[0]
	assert.Equal(t, "doc-1", first.FileID)
	assert.Equal(t, "Poulet au riz", first.Title)
	assert.Equal(t, domain.ParseStatusConfident, first.ParseStatus)
	assert.Equal(t, 4, first.Portions)

	second := result.Records[1]
	assert.Equal(t, domain.ParseStatusIncomplete, second.ParseStatus)
	mockSource.AssertExpectations(t)
}

func TestScanner_Scan_ExtractionErrorSkipsDocument(t *testing.T) {
	mockSource := new(mocks.MockDocumentSource)
	docs := []domain.RawDocument{
		{ID: "doc-1", Name: "Broken"},
		{ID: "doc-2", Name: "Poulet au riz"},
	}
	mockSource.On("List", mock.Anything).Return(docs, nil)
	mockSource.On("Text", mock.Anything, docs[0]).Return("", errors.New("corrupt file"))
	mockSource.On("Text", mock.Anything, docs[1]).Return(pouletText, nil)

	scanner := service.NewScanner(mockSource, foodtable.Builtin(), 1)
	result, err := scanner.Scan(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Indexed)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, result.Records, 1)
	assert.Equal(t, "doc-2", result.Records[0].FileID)
}

func TestScanner_Scan_EmptyTextYieldsIncompleteRecord(t *testing.T) {
	mockSource := new(mocks.MockDocumentSource)
	docs := []domain.RawDocument{{ID: "doc-1", Name: "Empty"}}
	mockSource.On("List", mock.Anything).Return(docs, nil)
	mockSource.On("Text", mock.Anything, docs[0]).Return("", nil)

	scanner := service.NewScanner(mockSource, foodtable.Builtin(), 1)
	result, err := scanner.Scan(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Indexed)
	assert.Equal(t, 0, result.Skipped)

	rec := result.Records[0]
	assert.Equal(t, domain.ParseStatusIncomplete, rec.ParseStatus)
	assert.Contains(t, []string(rec.ParseNotes), domain.NoteEmptyText)
}

func TestScanner_Scan_ListErrorAborts(t *testing.T) {
	mockSource := new(mocks.MockDocumentSource)
	mockSource.On("List", mock.Anything).Return(nil, errors.New("bucket unreachable"))

	scanner := service.NewScanner(mockSource, foodtable.Builtin(), 1)
	result, err := scanner.Scan(context.Background())

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestScanner_Scan_PreservesListingOrder(t *testing.T) {
	mockSource := new(mocks.MockDocumentSource)
	docs := []domain.RawDocument{
		{ID: "doc-a", Name: "A"},
		{ID: "doc-b", Name: "B"},
		{ID: "doc-c", Name: "C"},
	}
	mockSource.On("List", mock.Anything).Return(docs, nil)
	for _, d := range docs {
		mockSource.On("Text", mock.Anything, d).Return(pouletText, nil)
	}

	scanner := service.NewScanner(mockSource, foodtable.Builtin(), 3)
	result, err := scanner.Scan(context.Background())

	assert.NoError(t, err)
	ids := make([]string, 0, len(result.Records))
	for _, r := range result.Records {
		ids = append(ids, r.FileID)
	}
	assert.Equal(t, []string{"doc-a", "doc-b", "doc-c"}, ids)
}
