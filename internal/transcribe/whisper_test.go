package transcribe

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/reasonance-lab/artifactmaker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeWhisper = `#!/bin/sh
in="$1"; shift
echo "$@" > "$ARGS_LOG"
out=""
while [ $# -gt 0 ]; do
  case "$1" in
    --output_dir) out="$2"; shift ;;
  esac
  shift
done
base=$(basename "$in")
printf ' Today we \n\ntitrated.\n' > "$out/${base%.*}.txt"
`

const failingWhisper = `#!/bin/sh
echo "CUDA not available" >&2
exit 3
`

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	path := filepath.Join(t.TempDir(), "whisper")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o755))
	return path
}

func TestCLIEngine_Transcribe(t *testing.T) {
	argsLog := filepath.Join(t.TempDir(), "args")
	t.Setenv("ARGS_LOG", argsLog)
	bin := writeScript(t, fakeWhisper)

	e, err := newCLIEngine(bin, config.Transcription{
		ModelSize:   "small",
		Device:      "cpu",
		ComputeType: "int8_float16",
	}, nil)
	require.NoError(t, err)

	audio := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(audio, []byte("RIFF"), 0o644))

	segments, err := e.Transcribe(context.Background(), audio)
	require.NoError(t, err)
	assert.Equal(t, "Today we titrated.", JoinSegments(segments))

	args, err := os.ReadFile(argsLog)
	require.NoError(t, err)
	for _, want := range []string{"--model small", "--device cpu", "--compute_type int8_float16", "--output_format txt"} {
		assert.Contains(t, string(args), want)
	}
}

func TestCLIEngine_Failure(t *testing.T) {
	bin := writeScript(t, failingWhisper)
	e, err := newCLIEngine(bin, config.Transcription{ModelSize: "small"}, nil)
	require.NoError(t, err)

	_, err = e.Transcribe(context.Background(), filepath.Join(t.TempDir(), "clip.wav"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "CUDA not available"), err.Error())
}

func TestCLIEngine_Args(t *testing.T) {
	e := &cliEngine{bin: "whisper", modelSize: "tiny"}
	args := e.args("/tmp/a.wav", "/tmp/out")

	assert.Equal(t, "/tmp/a.wav", args[0])
	assert.Contains(t, args, "tiny")
	assert.NotContains(t, args, "--device")
	assert.NotContains(t, args, "--compute_type")
}

func TestNewCLIEngine_Missing(t *testing.T) {
	_, err := newCLIEngine(filepath.Join(t.TempDir(), "nope"), config.Transcription{}, nil)
	assert.ErrorIs(t, err, ErrEngineUnavailable)
}
