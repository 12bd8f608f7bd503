package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/pagentum/pagentum/internal/model"
	pagerrors "github.com/pagentum/pagentum/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// importEnvelope mirrors the project wire shape with the required top-level
// fields marked. Anything else in the payload is carried through as-is.
type importEnvelope struct {
	ID        string              `json:"id" validate:"required"`
	Name      string              `json:"name"`
	Sections  []model.PageSection `json:"sections" validate:"required"`
	Theme     model.ThemeConfig   `json:"theme" validate:"required,structonly"`
	CreatedAt int64               `json:"createdAt"`
	UpdatedAt int64               `json:"updatedAt"`
}

// ExportJSON serializes a project for download.
func ExportJSON(project *model.Project) ([]byte, error) {
	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export project: %w", err)
	}
	return data, nil
}

// ImportJSON deserializes and validates a project payload. A payload missing
// any of the id, sections, or theme top-level fields fails with
// InvalidFormatError; nothing is ever partially applied.
func ImportJSON(data []byte) (*model.Project, error) {
	var envelope importEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, pagerrors.NewInvalidFormatError("", "not a project JSON payload", err)
	}

	if err := validatorInstance().Struct(&envelope); err != nil {
		field := ""
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			field = strings.ToLower(fieldErrs[0].Field())
		}
		return nil, pagerrors.NewInvalidFormatError(field, "missing required field", err)
	}

	return &model.Project{
		ID:        envelope.ID,
		Name:      envelope.Name,
		Sections:  envelope.Sections,
		Theme:     envelope.Theme,
		CreatedAt: envelope.CreatedAt,
		UpdatedAt: envelope.UpdatedAt,
	}, nil
}

// ExportFileName derives a download-style filename from the project name and a
// millisecond timestamp.
func ExportFileName(name string, now int64) string {
	safe := strings.ToLower(unsafeNameChars.ReplaceAllString(name, "_"))
	return fmt.Sprintf("%s_%d.json", safe, now)
}
