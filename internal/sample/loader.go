package sample

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// ValidationError is a schema violation in a samples file.
type ValidationError struct {
	// Field is the dotted path of the offending field, when known.
	Field string

	// Message is a human-readable description.
	Message string

	// Pos is the CUE position of the violation, when available.
	Pos token.Pos
}

func (e *ValidationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Load reads, schema-checks, and decodes a samples file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read samples file: %w", err)
	}
	return Parse(raw)
}

// Parse schema-checks and decodes the raw contents of a samples file.
// Sample names are NFC-normalized so visually identical names compare
// byte-wise when used as report targets.
func Parse(raw []byte) (*File, error) {
	if errs := validateSchema(raw); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode samples file: %w", err)
	}

	for i := range f.Samples {
		f.Samples[i].Name = norm.NFC.String(f.Samples[i].Name)
	}
	return &f, nil
}

// validateSchema unifies the decoded YAML document with the embedded
// CUE schema and collects every violation, with positions where CUE
// can attribute them.
func validateSchema(raw []byte) []error {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return []error{fmt.Errorf("parse samples file: %w", err)}
	}
	if doc == nil {
		return []error{&ValidationError{Message: "empty samples file"}}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return []error{fmt.Errorf("compile samples schema: %w", err)}
	}

	val := schema.LookupPath(cue.ParsePath("#File")).Unify(ctx.Encode(doc))
	if err := val.Validate(cue.Concrete(true)); err != nil {
		var errs []error
		for _, e := range cueerrors.Errors(err) {
			msg, args := e.Msg()
			errs = append(errs, &ValidationError{
				Field:   strings.Join(e.Path(), "."),
				Message: fmt.Sprintf(msg, args...),
				Pos:     e.Position(),
			})
		}
		return errs
	}
	return nil
}
