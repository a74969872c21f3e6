package domain

// ParseStatus is the confidence tier attached to a recipe record, reflecting
// how much structure was recovered from the source document.
type ParseStatus string

const (
	// ParseStatusConfident: both blocks found, all ingredient lines valid.
	ParseStatusConfident ParseStatus = "CONFIDENT"
	// ParseStatusPartial: usable blocks but some ingredient lines rejected.
	// Nutrition is skipped to avoid reporting numbers from incomplete data.
	ParseStatusPartial ParseStatus = "PARTIAL"
	// ParseStatusIncomplete: a block is missing or empty.
	ParseStatusIncomplete ParseStatus = "INCOMPLETE"
)

// FoodUnit is the quantity basis of a food-table row.
type FoodUnit string

const (
	FoodUnitGrams      FoodUnit = "g"
	FoodUnitMilliliter FoodUnit = "ml"
	// FoodUnitPiece means the row is priced by count and GramsPerUnit applies.
	FoodUnitPiece FoodUnit = "unit"
)

// ScanStatus is the lifecycle of a scan run.
type ScanStatus string

const (
	ScanStatusRunning   ScanStatus = "running"
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusFailed    ScanStatus = "failed"
)

// Diagnostic parse notes recorded by the section splitter and the indexer.
const (
	NoteEmptyText                 = "empty_text"
	NoteMissingIngredientsHeader  = "missing_ingredients_header"
	NoteMissingStepsHeader        = "missing_steps_header"
	NoteIngredientsFallbackBefore = "ingredients_fallback_before_steps"
	NoteStepsFallbackDetected     = "steps_fallback_detected"
	NoteFallbackNoHeaders         = "fallback_no_headers"
	NoteEmptyIngredientsBlock     = "empty_ingredients_block"
	NoteEmptyStepsBlock           = "empty_steps_block"
	NotePartialInvalidIngredients = "partial_invalid_ingredients"
	NoteInvalidIngredientLines    = "invalid_ingredient_lines"
	NoteNoValidIngredients        = "no_valid_ingredients"
	NoteNoSteps                   = "no_steps"
	NoteIngredientGrammarFallback = "ingredient_grammar_fallback"
)
