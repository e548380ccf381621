package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-goertzel/dsp/signal"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := Execute(append(args, "--log-level", "error"), &stdout, &stderr)
	return stdout.String(), err
}

func runFindJSON(t *testing.T, args ...string) []TargetResult {
	t.Helper()

	out, err := run(t, append([]string{"find", "-o", "json"}, args...)...)
	require.NoError(t, err)

	var results []TargetResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	return results
}

func TestFindDefaults(t *testing.T) {
	results := runFindJSON(t)
	require.Len(t, results, 2)

	assert.True(t, results[0].Representable)
	assert.Equal(t, 8, results[0].Bin)
	assert.InDelta(t, 32.0, results[0].BinFrequency, 1e-12)
	assert.InDelta(t, 7.0, results[0].Magnitude, 1e-9)
	assert.InDelta(t, -90.0, results[0].PhaseDeg, 1e-6)

	assert.Equal(t, 19, results[1].Bin)
	assert.InDelta(t, 2.0, results[1].Magnitude, 1e-9)
	assert.InDelta(t, 0.0, results[1].PhaseDeg, 1e-6)
	assert.Nil(t, results[1].Reference)
}

func TestFindAboveNyquist(t *testing.T) {
	results := runFindJSON(t, "--targets", "76,600")
	require.Len(t, results, 2)

	assert.True(t, results[0].Representable)
	assert.False(t, results[1].Representable)
	assert.Zero(t, results[1].Magnitude)

	out, err := run(t, "find", "--targets", "600")
	require.NoError(t, err)
	assert.Contains(t, out, "not representable")
}

func TestFindVerifyFloat32(t *testing.T) {
	results := runFindJSON(t, "--verify", "--precision", "32")
	require.Len(t, results, 2)

	for _, r := range results {
		require.NotNil(t, r.Reference)
		assert.InDelta(t, r.Reference.Magnitude, r.Magnitude, 1e-3)
		assert.Less(t, r.Reference.Deviation, 1e-3)
	}
	assert.InDelta(t, 7.0, results[0].Magnitude, 1e-3)
}

func TestFindNegativeTargetVerify(t *testing.T) {
	results := runFindJSON(t, "--targets=-100,-32", "--verify")
	require.Len(t, results, 2)

	assert.Equal(t, -24, results[0].Bin)
	assert.Equal(t, -7, results[1].Bin)
	for _, r := range results {
		assert.True(t, r.Representable)
		require.NotNil(t, r.Reference)
		assert.Less(t, r.Reference.Deviation, 1e-9)
	}
}

func TestSweepNonFinite(t *testing.T) {
	_, err := run(t, "sweep", "--from", "nan")
	assert.Error(t, err)

	_, err = run(t, "sweep", "--step", "1e-30")
	assert.Error(t, err)
}

func TestFindTable(t *testing.T) {
	out, err := run(t, "find", "--verify")
	require.NoError(t, err)

	assert.Contains(t, out, "Target [Hz]")
	assert.Contains(t, out, "FFT Magnitude")
	assert.Contains(t, out, "7.000000")
}

func TestFindEnvironment(t *testing.T) {
	t.Setenv("GOERTZEL_SAMPLE_RATE", "2048")

	results := runFindJSON(t, "--targets", "32")
	require.Len(t, results, 1)
	assert.Equal(t, 4, results[0].Bin)
}

func TestFindConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goertzel.yaml")
	cfg := "sample_rate: 8000\nlength: 205\ntones: [\"697:1\", \"1209:0.5:cos\"]\ntargets: [\"697\", \"770\", \"1209\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	results := runFindJSON(t, "--config", path)
	require.Len(t, results, 3)

	assert.Equal(t, 18, results[0].Bin)
	assert.Equal(t, 20, results[1].Bin)
	assert.Equal(t, 31, results[2].Bin)
	assert.Greater(t, results[0].Magnitude, 0.5)
	assert.Greater(t, results[0].Magnitude, 5*results[1].Magnitude)
}

func TestFindMissingConfigFile(t *testing.T) {
	_, err := run(t, "find", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSweepYAML(t *testing.T) {
	out, err := run(t, "sweep", "-o", "yaml")
	require.NoError(t, err)

	var points []SweepPoint
	require.NoError(t, yaml.Unmarshal([]byte(out), &points))
	require.Len(t, points, 17)

	peak := points[0]
	for _, p := range points {
		if p.Magnitude > peak.Magnitude {
			peak = p
		}
	}
	assert.InDelta(t, 32.0, peak.Frequency, 1e-9)
	assert.InDelta(t, 8.0, peak.Bin, 1e-9)
	assert.InDelta(t, 7.0, peak.Magnitude, 1e-6)
}

func TestSweepInvalidStep(t *testing.T) {
	_, err := run(t, "sweep", "--step", "0")
	assert.Error(t, err)

	_, err = run(t, "sweep", "--from", "40", "--to", "30")
	assert.Error(t, err)
}

func TestInvalidConfiguration(t *testing.T) {
	cases := [][]string{
		{"find", "--precision", "16"},
		{"find", "-o", "xml"},
		{"find", "--length", "0"},
		{"find", "--tones", "abc"},
		{"find", "--tones", "32:1:square"},
		{"find", "--targets", "x"},
	}

	for _, args := range cases {
		_, err := run(t, args...)
		assert.Error(t, err, "args %v", args)
	}
}

func TestParseTones(t *testing.T) {
	tones, err := parseTones([]string{"32:7", "76:2:cos", "10:1:sin:90"})
	require.NoError(t, err)
	require.Len(t, tones, 3)

	assert.Equal(t, signal.Tone{Frequency: 32, Amplitude: 7}, tones[0])
	assert.Equal(t, signal.Cosine, tones[1].Waveform)
	assert.InDelta(t, 1.5707963267948966, tones[2].Phase, 1e-12)

	_, err = parseTones([]string{"1:2:3:4:5"})
	assert.Error(t, err)
}

func TestLevelDB(t *testing.T) {
	assert.InDelta(t, 20.0, levelDB(10), 1e-12)
	assert.Equal(t, -300.0, levelDB(0))
}
