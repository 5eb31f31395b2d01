package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnodel/jsonfilter/transform"
)

func TestConfigValidate(t *testing.T) {
	err := Config{}.Validate()
	requireKind(t, err, MissingInput)
	assert.Equal(t, "Please, specify input file", Message(err))

	assert.NoError(t, Config{InputPath: "in.json"}.Validate())
}

func TestConfigTransformer(t *testing.T) {
	tr, err := Config{InputPath: "x"}.Transformer()
	require.NoError(t, err)
	assert.Equal(t, transform.Chain{transform.DropField{Name: "variety"}}, tr)

	tr, err = Config{InputPath: "x", IncludeVariety: true}.Transformer()
	require.NoError(t, err)
	assert.Empty(t, tr)

	tr, err = Config{InputPath: "x", IncludeVariety: true, HasLength: true, Length: " 1.5 "}.Transformer()
	require.NoError(t, err)
	assert.Equal(t, transform.Chain{&transform.ThresholdFilter{Key: "petal.length", Threshold: 1.5}}, tr)

	// An empty threshold is zero.
	tr, err = Config{InputPath: "x", HasLength: true}.Transformer()
	require.NoError(t, err)
	assert.Equal(t, transform.Chain{
		&transform.ThresholdFilter{Key: "petal.length", Threshold: 0},
		transform.DropField{Name: "variety"},
	}, tr)
}

func TestConfigTransformerInvalidThreshold(t *testing.T) {
	for _, raw := range []string{"abc", "1.2.3", "0x", "--1"} {
		_, err := Config{InputPath: "x", HasLength: true, Length: raw}.Transformer()
		requireKind(t, err, InvalidThreshold)
		assert.Equal(t, "Length parameter is not a number", Message(err))
		assert.ErrorIs(t, err, transform.ErrNotANumber)
	}
}

func TestConfigHasOutput(t *testing.T) {
	assert.False(t, Config{}.HasOutput())
	assert.True(t, Config{OutputPath: "out.json"}.HasOutput())
	assert.True(t, Config{Display: true}.HasOutput())
}
