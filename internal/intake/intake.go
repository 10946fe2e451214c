package intake

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/korjavin/nutricheck/internal/nutrient"
)

const (
	PromptName        = "Enter product name: "
	PromptType        = "Is the product solid or liquid? (Enter 'solid' or 'liquid'): "
	PromptServingSize = "Enter the serving size (in grams or ml): "
	PromptCalories    = "Enter calories per serving: "
	PromptSugar       = "Enter total added sugar per serving (g): "
	PromptFat         = "Enter total added fat per serving (g): "
	PromptSalt        = "Enter salt per serving (mg): "
)

// Collector asks for one product's values on w and reads the answers from r,
// one line per prompt.
type Collector struct {
	r *bufio.Reader
	w io.Writer
}

// NewCollector creates a Collector reading answers from r and writing prompts to w.
func NewCollector(r io.Reader, w io.Writer) *Collector {
	return &Collector{r: bufio.NewReader(r), w: w}
}

// Collect runs the prompts in order and returns the validated submission.
// It stops at the first invalid answer without issuing further prompts.
func (c *Collector) Collect() (nutrient.Submission, error) {
	var sub nutrient.Submission

	name, err := c.ask(PromptName)
	if err != nil {
		return nutrient.Submission{}, err
	}
	sub.ProductName = name

	rawType, err := c.ask(PromptType)
	if err != nil {
		return nutrient.Submission{}, err
	}
	sub.ProductType, err = ParseProductType(rawType)
	if err != nil {
		slog.Warn("product type rejected", "input", rawType)
		return nutrient.Submission{}, err
	}
	slog.Debug("product accepted", "name", name, "type", sub.ProductType)

	numeric := []struct {
		field  Field
		prompt string
		dst    *float64
	}{
		{FieldServingSize, PromptServingSize, &sub.ServingSize},
		{FieldCalories, PromptCalories, &sub.Calories},
		{FieldSugar, PromptSugar, &sub.Sugar},
		{FieldFat, PromptFat, &sub.Fat},
		{FieldSalt, PromptSalt, &sub.Salt},
	}
	for _, n := range numeric {
		raw, err := c.ask(n.prompt)
		if err != nil {
			return nutrient.Submission{}, err
		}
		v, ok := ParseNumeric(raw)
		if !ok {
			slog.Warn("field rejected", "field", n.field, "input", raw)
			return nutrient.Submission{}, &FieldError{Field: n.field, Input: raw}
		}
		slog.Debug("field accepted", "field", n.field, "value", v)
		*n.dst = v
	}

	return sub, nil
}

// ask writes prompt and blocks until a full line is read. A final line
// without a terminator is still returned; an empty read at end of input
// yields ErrInputClosed.
func (c *Collector) ask(prompt string) (string, error) {
	if _, err := io.WriteString(c.w, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := c.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
