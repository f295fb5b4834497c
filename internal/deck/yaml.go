package deck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/corequiz/internal/ctxlog"
	"github.com/specialistvlad/corequiz/internal/quiz"
	"gopkg.in/yaml.v3"
)

type yamlDeckFile struct {
	Quizzes []quiz.Entry `yaml:"quizzes"`
}

// YAMLDecoder decodes YAML deck files. Unknown keys are rejected so typos
// like `anwser` fail loudly instead of producing empty answers.
type YAMLDecoder struct{}

// NewYAMLDecoder creates a YAML decoder.
func NewYAMLDecoder() *YAMLDecoder {
	return &YAMLDecoder{}
}

// Decode implements Decoder.
func (d *YAMLDecoder) Decode(ctx context.Context, filename string, src []byte) ([]quiz.Entry, error) {
	ctxlog.FromContext(ctx).Debug("Decoding YAML deck.", "file", filename)

	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var file yamlDeckFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}
	return file.Quizzes, nil
}
