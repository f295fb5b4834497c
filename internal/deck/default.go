package deck

import (
	"context"
	_ "embed"

	"github.com/specialistvlad/corequiz/internal/quiz"
)

//go:embed default.yaml
var defaultDeck []byte

// Default returns the built-in deck used when no deck path is configured.
func Default(ctx context.Context) ([]quiz.Entry, error) {
	entries, err := NewYAMLDecoder().Decode(ctx, "default.yaml", defaultDeck)
	if err != nil {
		return nil, err
	}
	if err := validate("default.yaml", entries); err != nil {
		return nil, err
	}
	return entries, nil
}
