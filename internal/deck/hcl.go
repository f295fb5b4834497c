package deck

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/corequiz/internal/ctxlog"
	"github.com/specialistvlad/corequiz/internal/quiz"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclDeckFile is the top-level structure of an HCL deck file.
type hclDeckFile struct {
	Locals  []*hclLocalsBlock `hcl:"locals,block"`
	Quizzes []*hclQuizBlock   `hcl:"quiz,block"`
}

// hclLocalsBlock holds `locals { name = value }` attributes. Locals may use
// functions but not other locals.
type hclLocalsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// hclQuizBlock is one `quiz { question = ..., answer = ... }` block. Both
// attributes are expressions so they can interpolate `local.*`.
type hclQuizBlock struct {
	Question hcl.Expression `hcl:"question"`
	Answer   hcl.Expression `hcl:"answer"`
}

// HCLDecoder decodes HCL deck files.
type HCLDecoder struct {
	functions map[string]function.Function
}

// NewHCLDecoder creates an HCL decoder with the string helper functions
// available to deck expressions.
func NewHCLDecoder() *HCLDecoder {
	return &HCLDecoder{
		functions: map[string]function.Function{
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"trimspace": stdlib.TrimSpaceFunc,
			"format":    stdlib.FormatFunc,
			"join":      stdlib.JoinFunc,
		},
	}
}

// Decode implements Decoder.
func (d *HCLDecoder) Decode(ctx context.Context, filename string, src []byte) ([]quiz.Entry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding HCL deck.", "file", filename)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root hclDeckFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	locals, err := d.evalLocals(root.Locals)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate locals in %s: %w", filename, err)
	}
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": cty.ObjectVal(locals)},
		Functions: d.functions,
	}

	entries := make([]quiz.Entry, 0, len(root.Quizzes))
	for i, block := range root.Quizzes {
		question, err := evalString(block.Question, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("%s: quiz #%d: question: %w", filename, i+1, err)
		}
		answer, err := evalString(block.Answer, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("%s: quiz #%d: answer: %w", filename, i+1, err)
		}
		entries = append(entries, quiz.NewEntry(question, answer))
	}

	logger.Debug("HCL deck decoded.", "file", filename, "locals", len(locals), "entries", len(entries))
	return entries, nil
}

func (d *HCLDecoder) evalLocals(blocks []*hclLocalsBlock) (map[string]cty.Value, error) {
	locals := make(map[string]cty.Value)
	evalCtx := &hcl.EvalContext{Functions: d.functions}

	for _, block := range blocks {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}
		for name, attr := range attrs {
			if _, exists := locals[name]; exists {
				return nil, fmt.Errorf("duplicate local %q", name)
			}
			val, diags := attr.Expr.Value(evalCtx)
			if diags.HasErrors() {
				return nil, diags
			}
			locals[name] = val
		}
	}
	return locals, nil
}

// evalString evaluates expr and converts the result to a Go string.
func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		return "", fmt.Errorf("value must not be null")
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("value must be known")
	}

	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("value must be a string: %w", err)
	}

	var out string
	if err := gocty.FromCtyValue(strVal, &out); err != nil {
		return "", err
	}
	return out, nil
}
