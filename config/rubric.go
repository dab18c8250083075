package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// RubricCriterion is one evaluation dimension with a fixed maximum mark.
// Criteria are reference data, not rows: every deployment scores against
// one fixed list, loaded once at startup.
type RubricCriterion struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	MaxMarks float64 `json:"max_marks"`
}

var defaultRubric = []RubricCriterion{
	{ID: "rc1", Name: "Proposed Methodology", MaxMarks: 4},
	{ID: "rc2", Name: "Implementation", MaxMarks: 15},
	{ID: "rc3", Name: "Presentation Quality", MaxMarks: 3},
	{ID: "rc4", Name: "Contribution as a Team Member and Punctuality", MaxMarks: 3},
}

var rubric = defaultRubric

// InitRubric loads the rubric from the JSON file named in RUBRIC_FILE,
// falling back to the built-in list when the variable is unset.
func InitRubric() error {
	path := os.Getenv("RUBRIC_FILE")
	if path == "" {
		rubric = defaultRubric
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read rubric file %s: %w", path, err)
	}

	var criteria []RubricCriterion
	if err := json.Unmarshal(data, &criteria); err != nil {
		return fmt.Errorf("failed to parse rubric file %s: %w", path, err)
	}
	if len(criteria) == 0 {
		return fmt.Errorf("rubric file %s contains no criteria", path)
	}
	for _, c := range criteria {
		if c.ID == "" || c.MaxMarks <= 0 {
			return fmt.Errorf("rubric file %s: criterion %q needs an id and a positive max_marks", path, c.Name)
		}
	}

	rubric = criteria
	log.Printf("Loaded %d rubric criteria from %s", len(rubric), path)
	return nil
}

// RubricCriteria returns the active criteria list.
func RubricCriteria() []RubricCriterion {
	return rubric
}

// CriterionByID looks up a criterion by its id.
func CriterionByID(id string) (RubricCriterion, bool) {
	for _, c := range rubric {
		if c.ID == id {
			return c, true
		}
	}
	return RubricCriterion{}, false
}
