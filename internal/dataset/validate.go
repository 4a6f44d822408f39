package dataset

import (
	"errors"
	"fmt"
	"math"

	"saaransh/internal/model"
)

// ErrInvalidCatalog is wrapped by every invariant violation Validate reports.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks the catalog invariants: unique ids, known enum values, quality scores
// within bounds and every comment pointing at an existing consultation.
func Validate(consultations []model.Consultation, comments []model.Comment) error {
	var errs []error

	known := make(map[uint]bool, len(consultations))
	slugs := make(map[string]uint, len(consultations))
	for _, c := range consultations {
		if known[c.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate consultation %d", ErrInvalidCatalog, c.ID))
		}
		known[c.ID] = true
		if !c.Status.Valid() {
			errs = append(errs, fmt.Errorf("%w: consultation %d has unknown status %q", ErrInvalidCatalog, c.ID, c.Status))
		}
		if c.Progress < 0 || c.Progress > 100 {
			errs = append(errs, fmt.Errorf("%w: consultation %d progress %d out of range", ErrInvalidCatalog, c.ID, c.Progress))
		}
		if c.Slug != "" {
			if other, dup := slugs[c.Slug]; dup {
				errs = append(errs, fmt.Errorf("%w: consultations %d and %d share slug %q", ErrInvalidCatalog, other, c.ID, c.Slug))
			}
			slugs[c.Slug] = c.ID
		}
	}

	seen := make(map[uint]bool, len(comments))
	for _, c := range comments {
		if seen[c.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate comment %d", ErrInvalidCatalog, c.ID))
		}
		seen[c.ID] = true
		if !known[c.ConsultationID] {
			errs = append(errs, fmt.Errorf("%w: comment %d references missing consultation %d", ErrInvalidCatalog, c.ID, c.ConsultationID))
		}
		if math.IsNaN(c.QualityScore) || c.QualityScore < model.MinQualityScore || c.QualityScore > model.MaxQualityScore {
			errs = append(errs, fmt.Errorf("%w: comment %d quality score %.2f outside [0,5]", ErrInvalidCatalog, c.ID, c.QualityScore))
		}
		if !c.Stance.Valid() {
			errs = append(errs, fmt.Errorf("%w: comment %d has unknown stance %q", ErrInvalidCatalog, c.ID, c.Stance))
		}
		if !c.StakeholderType.Valid() {
			errs = append(errs, fmt.Errorf("%w: comment %d has unknown stakeholder type %q", ErrInvalidCatalog, c.ID, c.StakeholderType))
		}
	}

	return errors.Join(errs...)
}
