package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"braces.dev/errtrace"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/goseq/internal/check"
	"github.com/ghettovoice/goseq/internal/errorutil"
	"github.com/ghettovoice/goseq/intseq"
	"github.com/ghettovoice/goseq/sequence"
)

// Config lists extra checks loaded from a YAML file.
type Config struct {
	Concat []ConcatScenario `yaml:"concat"`
}

// Consecutive describes a sequence of size consecutive values beginning at start.
type Consecutive struct {
	Size  int         `yaml:"size"`
	Start intseq.Elem `yaml:"start"`
}

func (c Consecutive) String() string { return fmt.Sprintf("%d@%d", c.Size, c.Start) }

func (c Consecutive) build() (*intseq.IntegerSequence, error) {
	size, err := sequence.NewLength(c.Size)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(intseq.Consecutive(size, c.Start))
}

// ConcatScenario expects Concat(LHS, RHS) to equal Want.
type ConcatScenario struct {
	Name string      `yaml:"name"`
	LHS  Consecutive `yaml:"lhs"`
	RHS  Consecutive `yaml:"rhs"`
	Want Consecutive `yaml:"want"`
}

func (sc ConcatScenario) name() string {
	if sc.Name != "" {
		return sc.Name
	}
	return fmt.Sprintf("concat %v + %v", sc.LHS, sc.RHS)
}

func (sc ConcatScenario) run(context.Context) error {
	lhs, err := sc.LHS.build()
	if err != nil {
		return errtrace.Wrap(err)
	}
	rhs, err := sc.RHS.build()
	if err != nil {
		return errtrace.Wrap(err)
	}
	want, err := sc.Want.build()
	if err != nil {
		return errtrace.Wrap(err)
	}

	got, err := intseq.Concat(lhs, rhs)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(check.Diff(sc.name(), got.Slice(), want.Slice(), cmpopts.EquateEmpty()))
}

func (cfg *Config) addChecks(s *check.Suite) {
	for _, sc := range cfg.Concat {
		s.Add(sc.name(), sc.run)
	}
}

// LoadConfig reads the config file at path.
// An empty path yields an empty config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("read config: %w", err))
	}
	return errtrace.Wrap2(ParseConfig(data))
}

// ParseConfig decodes a YAML config. Unknown fields are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(fmt.Errorf("parse config: %w", err)))
	}
	return &cfg, nil
}
