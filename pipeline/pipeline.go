// Package pipeline runs the record filter: it loads the input file, parses
// its records, transforms them and writes the result.
//
//	load -> parse -> filter -> project -> emit
//
// Each stage fails with an *Error whose Kind identifies the failure and whose
// Message is the diagnostic to show to the user.
package pipeline

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/arnodel/jsonfilter/internal/format"
)

// A Pipeline runs the stages for one configuration.
type Pipeline struct {
	Config Config

	// Stdout receives the output when Config.Display is set
	Stdout io.Writer

	// Colorizer is applied to the Stdout output, it may be nil
	Colorizer *format.Colorizer

	// Logger traces the stages, it defaults to a disabled logger
	Logger *zerolog.Logger
}

// Run executes the whole pipeline, stopping at the first error.
func (p *Pipeline) Run() error {
	log := zerolog.Nop()
	if p.Logger != nil {
		log = *p.Logger
	}
	cfg := p.Config

	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := Load(cfg.InputPath)
	if err != nil {
		return err
	}
	log.Debug().Str("path", cfg.InputPath).Int("bytes", len(text)).Msg("loaded input")

	records, err := ParseRecords(text)
	if err != nil {
		return err
	}
	log.Debug().Str("format", string(DetectFormat(text))).Int("records", len(records)).Msg("parsed records")

	transformer, err := cfg.Transformer()
	if err != nil {
		return err
	}
	result := transformer.TransformRecords(records)
	log.Debug().
		Bool("filtered", cfg.HasLength).
		Bool("keep_variety", cfg.IncludeVariety).
		Int("kept", len(result)).
		Msg("transformed records")

	emitter := &Emitter{
		OutputPath: cfg.OutputPath,
		Display:    cfg.Display,
		Stdout:     p.Stdout,
		Colorizer:  p.Colorizer,
	}
	if err := emitter.Emit(result); err != nil {
		return err
	}
	if !cfg.HasOutput() {
		log.Debug().Msg("no output requested")
	} else {
		log.Debug().Str("output", cfg.OutputPath).Bool("display", cfg.Display).Msg("emitted records")
	}
	return nil
}
