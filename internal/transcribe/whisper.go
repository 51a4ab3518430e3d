package transcribe

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/reasonance-lab/artifactmaker/internal/config"
	"github.com/reasonance-lab/artifactmaker/internal/logging"
)

// WhisperBinary is the faster-whisper command line front end.
const WhisperBinary = "whisper-ctranslate2"

// cliEngine runs faster-whisper through its CLI and reads the plain text
// output, one segment per line.
type cliEngine struct {
	bin         string
	modelSize   string
	device      string
	computeType string
	log         *logging.Logger
}

// newCLIEngine locates bin (WhisperBinary when empty) on PATH.
func newCLIEngine(bin string, cfg config.Transcription, log *logging.Logger) (*cliEngine, error) {
	if bin == "" {
		bin = WhisperBinary
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	return &cliEngine{
		bin:         path,
		modelSize:   cfg.ModelSize,
		device:      cfg.Device,
		computeType: cfg.ComputeType,
		log:         log,
	}, nil
}

func (e *cliEngine) args(audioPath, outDir string) []string {
	args := []string{audioPath, "--output_format", "txt", "--output_dir", outDir, "--verbose", "False"}
	if e.modelSize != "" {
		args = append(args, "--model", e.modelSize)
	}
	if e.device != "" {
		args = append(args, "--device", e.device)
	}
	if e.computeType != "" {
		args = append(args, "--compute_type", e.computeType)
	}
	return args
}

func (e *cliEngine) Transcribe(ctx context.Context, audioPath string) ([]Segment, error) {
	outDir, err := os.MkdirTemp("", "artifactmaker-whisper-")
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.RemoveAll(outDir) }()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.bin, e.args(audioPath, outDir)...)
	cmd.Stderr = &stderr
	e.log.Debugf("running %s on %s", filepath.Base(e.bin), audioPath)
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", filepath.Base(e.bin), err, msg)
		}
		return nil, fmt.Errorf("%s: %w", filepath.Base(e.bin), err)
	}

	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	f, err := os.Open(filepath.Join(outDir, stem+".txt"))
	if err != nil {
		return nil, fmt.Errorf("reading transcript output: %w", err)
	}
	defer func() { _ = f.Close() }()

	var segments []Segment
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		segments = append(segments, Segment{Text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading transcript output: %w", err)
	}
	return segments, nil
}
