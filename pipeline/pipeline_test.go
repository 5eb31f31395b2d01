package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const irisInput = `[{"petal":{"length":1.4},"variety":"Setosa"}]`

func run(t *testing.T, cfg Config) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	p := &Pipeline{Config: cfg, Stdout: &stdout}
	err := p.Run()
	return stdout.String(), err
}

func TestRunKeepsLongerPetals(t *testing.T) {
	out, err := run(t, Config{
		InputPath: writeInput(t, irisInput),
		Display:   true,
		HasLength: true,
		Length:    "1.0",
	})
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"petal\": {\n      \"length\": 1.4\n    }\n  }\n]\n", out)
	assert.False(t, gjson.Get(out, "0.variety").Exists())
}

func TestRunThresholdIsStrict(t *testing.T) {
	out, err := run(t, Config{
		InputPath: writeInput(t, irisInput),
		Display:   true,
		HasLength: true,
		Length:    "1.4",
	})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestRunNDJSONKeepVariety(t *testing.T) {
	input := "{\"petal\":{\"length\":2},\"variety\":\"Virginica\"}\n{\"petal\":{\"length\":0.5}}"
	out, err := run(t, Config{
		InputPath:      writeInput(t, input),
		Display:        true,
		IncludeVariety: true,
		HasLength:      true,
		Length:         "1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), gjson.Get(out, "#").Int())
	assert.Equal(t, 2.0, gjson.Get(out, "0.petal.length").Float())
	assert.Equal(t, "Virginica", gjson.Get(out, "0.variety").String())
}

func TestRunNoOutputRequested(t *testing.T) {
	inputPath := writeInput(t, irisInput)
	out, err := run(t, Config{InputPath: inputPath})
	require.NoError(t, err)
	assert.Empty(t, out)

	entries, err := os.ReadDir(filepath.Dir(inputPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRunNoOutputStillParses(t *testing.T) {
	_, err := run(t, Config{InputPath: writeInput(t, "{oops}")})
	requireKind(t, err, ParseError)
}

func TestRunInvalidThreshold(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")
	out, err := run(t, Config{
		InputPath:  writeInput(t, irisInput),
		OutputPath: outPath,
		Display:    true,
		HasLength:  true,
		Length:     "abc",
	})
	requireKind(t, err, InvalidThreshold)
	assert.Equal(t, "Length parameter is not a number", Message(err))
	assert.Empty(t, out)
	assert.NoFileExists(t, outPath)
}

func TestRunWithoutVarietyField(t *testing.T) {
	out, err := run(t, Config{
		InputPath: writeInput(t, `[{"petal":{"length":3},"sepal":{"width":1}}]`),
		Display:   true,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"petal":{"length":3},"sepal":{"width":1}}]`, out)
}

func TestRunLiteralKeyTakesPrecedence(t *testing.T) {
	input := `[{"petal.length": 0.1, "petal": {"length": 9}}, {"petal": {"length": "5"}}, {"petal": null}, 7]`
	out, err := run(t, Config{
		InputPath: writeInput(t, input),
		Display:   true,
		HasLength: true,
		Length:    "1",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"petal": {"length": "5"}}]`, out)
}

func TestRunMissingInput(t *testing.T) {
	_, err := run(t, Config{Display: true})
	requireKind(t, err, MissingInput)
}

func TestRunInputNotFound(t *testing.T) {
	_, err := run(t, Config{InputPath: filepath.Join(t.TempDir(), "nope.json"), Display: true})
	requireKind(t, err, InputNotFound)
	assert.Equal(t, "Cannot find input file", Message(err))
}

func TestRunOutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")
	out, err := run(t, Config{InputPath: writeInput(t, irisInput), OutputPath: outPath})
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"petal\": {\n      \"length\": 1.4\n    }\n  }\n]", string(data))
}

func TestRunIsIdempotent(t *testing.T) {
	input := "{\"b\": 1, \"a\": [1e2, \"\\u00e9\"], \"variety\": \"x\"}\n\n{\"petal\": {\"length\": 4}}\n"
	cfg := Config{
		InputPath:  writeInput(t, input),
		OutputPath: filepath.Join(t.TempDir(), "out.json"),
		Display:    true,
	}
	first, err := run(t, cfg)
	require.NoError(t, err)
	firstFile, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	second, err := run(t, cfg)
	require.NoError(t, err)
	secondFile, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstFile, secondFile)
	assert.Contains(t, first, `"a": [`)
	assert.Contains(t, first, `100`)
}

func TestTransformDoesNotMutateRecords(t *testing.T) {
	records := mustParse(t, `[{"petal":{"length":2},"variety":"v"}]`)
	before, err := Serialize(records, nil)
	require.NoError(t, err)

	tr, err := Config{InputPath: "x", HasLength: true, Length: "1"}.Transformer()
	require.NoError(t, err)
	result := tr.TransformRecords(records)
	require.Len(t, result, 1)

	after, err := Serialize(records, nil)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRunLogs(t *testing.T) {
	var logs bytes.Buffer
	log := zerolog.New(&logs).Level(zerolog.DebugLevel)
	p := &Pipeline{
		Config: Config{InputPath: writeInput(t, irisInput)},
		Logger: &log,
	}
	require.NoError(t, p.Run())

	lines := bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Equal(t, "loaded input", gjson.GetBytes(lines[0], "message").String())
	assert.Equal(t, "array", gjson.GetBytes(lines[1], "format").String())
	assert.Equal(t, int64(1), gjson.GetBytes(lines[1], "records").Int())
	assert.Equal(t, int64(1), gjson.GetBytes(lines[2], "kept").Int())
	assert.Equal(t, "no output requested", gjson.GetBytes(lines[3], "message").String())
}

func TestRunCanonicalOutput(t *testing.T) {
	input := `[{"petal":{"length":2.0},"x":1E2,"s":"\u00e9\/","big":1e400,"7":true,"1":false}]`
	out, err := run(t, Config{InputPath: writeInput(t, input), Display: true})
	require.NoError(t, err)
	assert.Equal(t, `[
  {
    "1": false,
    "7": true,
    "petal": {
      "length": 2
    },
    "x": 100,
    "s": "é/",
    "big": null
  }
]
`, out)
}

func TestRunInvalidUTF8(t *testing.T) {
	out, err := run(t, Config{InputPath: writeInput(t, "[{\"a\":\"\xff\"}]"), Display: true})
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"a\": \"\uFFFD\"\n  }\n]\n", out)
}
