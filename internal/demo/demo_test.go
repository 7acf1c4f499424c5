package demo_test

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/recurrence/division"
	"github.com/katalvlaran/recurrence/internal/demo"
	"github.com/katalvlaran/recurrence/subtraction"
)

// seededInputs returns the classic inputs with a fixed descent seed.
func seededInputs() demo.Inputs {
	in := demo.DefaultInputs()
	in.DescentSeed = 7
	return in
}

func TestRun_DefaultInputs(t *testing.T) {
	report, err := demo.Run(seededInputs(), nil)
	require.NoError(t, err)
	require.Len(t, report.Results, 6)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err, "run id must be a UUID")

	r := report.Results
	assert.Equal(t, int64(15), r[0].Value)
	assert.Equal(t, int64(7), r[1].Value)
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, r[3].Value)
	assert.Equal(t, int64(11), r[4].Value)
	assert.Equal(t, int64(496), r[5].Value)

	descent, ok := r[2].Value.(int)
	require.True(t, ok)
	assert.GreaterOrEqual(t, descent, 1)
	assert.LessOrEqual(t, descent, 10)

	for i, res := range r {
		assert.Equal(t, i+1, res.Case)
		assert.NotEmpty(t, res.Bound)
		assert.NotEmpty(t, res.Formula)
	}
	assert.Equal(t, "subtraction", r[0].Family)
	assert.Equal(t, "a=b^k", r[3].Condition)
	assert.Equal(t, "Θ(n^2)", r[5].Bound)
}

func TestRun_IsReproducibleWithSeed(t *testing.T) {
	a, err := demo.Run(seededInputs(), nil)
	require.NoError(t, err)
	b, err := demo.Run(seededInputs(), nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, a.Results, b.Results)
}

func TestRun_DoesNotMutateInputs(t *testing.T) {
	in := seededInputs()
	_, err := demo.Run(in, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 8, 1, 9, 2}, in.MergeInput)
	assert.Equal(t, []int{10, 4, 5, 8, 6, 11, 26}, in.SelectInput)
}

func TestRun_PropagatesInvalidArgument(t *testing.T) {
	in := seededInputs()
	in.HanoiDisks = 0

	report, err := demo.Run(in, nil)
	assert.Nil(t, report)
	require.ErrorIs(t, err, subtraction.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "case 2 (HanoiMoves)")
}

func TestRun_PropagatesDepthExceeded(t *testing.T) {
	in := seededInputs()
	in.MaxDepth = 4 // LinearAccumulate(5) needs five frames

	_, err := demo.Run(in, nil)
	require.ErrorIs(t, err, subtraction.ErrDepthExceeded)
	assert.Contains(t, err.Error(), "case 1 (LinearAccumulate)")
}

func TestRun_PropagatesOverflow(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int cannot hold the overflowing width on this platform")
	}
	in := seededInputs()
	width := int64(2147516556)
	in.MultiplyBits = int(width)

	report, err := demo.Run(in, nil)
	assert.Nil(t, report)
	require.ErrorIs(t, err, division.ErrOverflow)
	assert.Contains(t, err.Error(), "case 6 (NaiveMultiplyCostModel)")
}

func TestRun_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	report, err := demo.Run(seededInputs(), zap.New(core))
	require.NoError(t, err)

	evaluated := logs.FilterMessage("case evaluated").All()
	require.Len(t, evaluated, 6)
	for _, entry := range evaluated {
		assert.Equal(t, report.RunID, entry.ContextMap()["run_id"])
	}
	assert.Equal(t, 1, logs.FilterMessage("starting demonstration run").Len())
	assert.Equal(t, 1, logs.FilterMessage("demonstration run finished").Len())
}

func TestRun_LogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	in := seededInputs()
	in.HanoiDisks = -1

	_, err := demo.Run(in, zap.New(core))
	require.Error(t, err)
	failed := logs.FilterMessage("case failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "HanoiMoves", failed[0].ContextMap()["name"])
}

func TestWrite_Text(t *testing.T) {
	report, err := demo.Run(seededInputs(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, demo.Write(&buf, report, "text"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "case 1 (subtraction, a=1): LinearAccumulate(5) = 15", lines[0])
	assert.Equal(t, "case 2 (subtraction, a>1): HanoiMoves(3) = 7", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "case 3 (subtraction, a<1): ProbabilisticDescent(10) = "), lines[2])
	assert.Equal(t, "case 4 (division, a=b^k): MergeSort([5 3 8 1 9 2]) = [1 2 3 5 8 9]", lines[3])
	assert.Equal(t, "case 5 (division, a<b^k): QuickSelectCostModel(len=7, k=3) = 11", lines[4])
	assert.Equal(t, "case 6 (division, a>b^k): NaiveMultiplyCostModel(16) = 496", lines[5])
}

func TestWrite_YAML(t *testing.T) {
	report, err := demo.Run(seededInputs(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, demo.Write(&buf, report, "yaml"))

	var decoded struct {
		RunID   string `yaml:"run_id"`
		Results []struct {
			Case  int    `yaml:"case"`
			Name  string `yaml:"name"`
			Bound string `yaml:"bound"`
			Value any    `yaml:"value"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.RunID, decoded.RunID)
	require.Len(t, decoded.Results, 6)
	assert.Equal(t, "MergeSort", decoded.Results[3].Name)
	assert.Equal(t, "Θ(n log n)", decoded.Results[3].Bound)
	assert.Equal(t, []any{1, 2, 3, 5, 8, 9}, decoded.Results[3].Value)
	assert.Equal(t, 496, decoded.Results[5].Value)
}

func TestWrite_JSON(t *testing.T) {
	report, err := demo.Run(seededInputs(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, demo.Write(&buf, report, "json"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.RunID, decoded["run_id"])
	results, ok := decoded["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 6)
	first := results[0].(map[string]any)
	assert.Equal(t, "LinearAccumulate", first["name"])
	assert.Equal(t, 15.0, first["value"])
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := demo.Write(&bytes.Buffer{}, &demo.Report{}, "csv")
	assert.ErrorIs(t, err, demo.ErrUnknownFormat)
}
