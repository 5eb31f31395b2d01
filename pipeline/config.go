package pipeline

import (
	"github.com/go-playground/validator/v10"

	"github.com/arnodel/jsonfilter/transform"
)

const (
	// LengthKey is the field compared with the length threshold.
	LengthKey = "petal.length"

	// VarietyField is the field removed from records unless IncludeVariety
	// is set.
	VarietyField = "variety"
)

// Config is built once from the command line and not modified afterwards.
type Config struct {
	InputPath      string `validate:"required"`
	OutputPath     string
	Display        bool
	IncludeVariety bool

	// Length is the raw threshold, only meaningful when HasLength is set.
	// It is parsed when the transformer is built.
	Length    string
	HasLength bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration can be run.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return newError(MissingInput, "config", err)
	}
	return nil
}

// Transformer returns the transformations to apply to the parsed records:
// the length filter if a threshold was given, followed by the removal of the
// variety field unless it should be kept.
func (c Config) Transformer() (transform.RecordTransformer, error) {
	chain := transform.Chain{}
	if c.HasLength {
		filter, err := transform.NewThresholdFilter(LengthKey, c.Length)
		if err != nil {
			return nil, newError(InvalidThreshold, "transform", err)
		}
		chain = append(chain, filter)
	}
	if !c.IncludeVariety {
		chain = append(chain, transform.DropField{Name: VarietyField})
	}
	return chain, nil
}

// HasOutput reports whether the result is written anywhere.
func (c Config) HasOutput() bool {
	return c.OutputPath != "" || c.Display
}
