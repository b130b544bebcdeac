package knownanswertest

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Summary is written by ReportResults
type Summary struct {
	NumRuns       int      `yaml:"numRuns"`
	NumChanged    int      `yaml:"numChanged"`
	NumUnverified int      `yaml:"numUnverified"`
	NumRecognised int      `yaml:"numRecognised"`
	LengthBefore  int      `yaml:"lengthBefore"`
	LengthAfter   int      `yaml:"lengthAfter"`
	Unverified    []string `yaml:"unverified,omitempty"`
}

// KATLog writes one YAML report per run into a directory and logs
// progress every logEvery runs
type KATLog struct {
	dir      string
	logEvery int
	logger   *zap.Logger
	summary  Summary
}

// NewKATLog creates dir if needed. A nil logger discards progress messages.
func NewKATLog(dir string, logEvery int, logger *zap.Logger) (*KATLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "NewKATLog: creating %s", dir)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if logEvery < 1 {
		logEvery = 1
	}
	return &KATLog{dir: dir, logEvery: logEvery, logger: logger}, nil
}

// ReportProgress writes the report for pc and updates the summary
func (kl *KATLog) ReportProgress(pc *PresentationContext) error {
	kl.summary.NumRuns++
	if pc.Changed {
		kl.summary.NumChanged++
	}
	if !pc.Verified {
		kl.summary.NumUnverified++
		kl.summary.Unverified = append(kl.summary.Unverified, pc.Name)
	}
	if pc.Recognised != "" {
		kl.summary.NumRecognised++
	}
	kl.summary.LengthBefore += pc.InputLength
	kl.summary.LengthAfter += pc.OutputLength

	fileName := filepath.Join(kl.dir, fmt.Sprintf("%04d-%s.yaml", kl.summary.NumRuns, pc.Name))
	if err := writeYAML(fileName, pc); err != nil {
		return errors.Wrap(err, "ReportProgress")
	}
	if kl.summary.NumRuns%kl.logEvery == 0 {
		kl.logger.Info("progress",
			zap.Int("runs", kl.summary.NumRuns),
			zap.Int("changed", kl.summary.NumChanged),
			zap.Int("unverified", kl.summary.NumUnverified),
		)
	}
	kl.logger.Debug("run",
		zap.String("name", pc.Name),
		zap.String("input", pc.Input),
		zap.String("output", pc.Output),
		zap.Int64("elapsedMicros", pc.ElapsedMicros),
	)
	return nil
}

// ReportResults writes summary.yaml and returns the summary
func (kl *KATLog) ReportResults() (Summary, error) {
	if err := writeYAML(filepath.Join(kl.dir, "summary.yaml"), &kl.summary); err != nil {
		return Summary{}, errors.Wrap(err, "ReportResults")
	}
	kl.logger.Info("results",
		zap.Int("runs", kl.summary.NumRuns),
		zap.Int("changed", kl.summary.NumChanged),
		zap.Int("recognised", kl.summary.NumRecognised),
		zap.Int("lengthBefore", kl.summary.LengthBefore),
		zap.Int("lengthAfter", kl.summary.LengthAfter),
	)
	return kl.summary, nil
}

func writeYAML(fileName string, v interface{}) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "marshalling %s", fileName)
	}
	if err = os.WriteFile(fileName, b, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", fileName)
	}
	return nil
}
