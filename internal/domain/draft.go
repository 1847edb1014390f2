package domain

// Draft is the unvalidated structure returned by the extraction
// collaborator. Every field is optional and untrusted: the normalizer
// defensively defaults or rejects each one, and any IDs or flags the
// provider invents are discarded.
type Draft struct {
	Title      string
	Category   string
	Difficulty string
	PrepTime   int
	CookTime   int
	Servings   int
	Ingredients []DraftIngredient
	Steps      []DraftStep
	Notes      string
	Tips       []string
}

// DraftIngredient is an ingredient line as extracted, pre-validation.
type DraftIngredient struct {
	Name   string
	Amount string
	Unit   string
}

// DraftStep is an instruction as extracted, pre-validation.
type DraftStep struct {
	Instruction  string
	TimerMinutes int // 0 if untimed
}
