package manifest

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

// Schemas. Generated is the exact shape suf-gen writes; Project also accepts
// what package managers and users add later.
var (
	Generated = &Schema{file: "package.schema.json"}
	Project   = &Schema{file: "project.schema.json"}
)

var printer = message.NewPrinter(language.English)

// Schema is an embedded JSON schema compiled on first use.
type Schema struct {
	file     string
	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/scripts/start")
	Message string
	Keyword string
}

// String renders the issue as "path: message".
func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func (s *Schema) get() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		data, err := schemaFS.ReadFile("schema/" + s.file)
		if err != nil {
			s.err = fmt.Errorf("reading schema %s: %w", s.file, err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			s.err = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(s.file, doc); err != nil {
			s.err = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		s.compiled, s.err = c.Compile(s.file)
		if s.err != nil {
			s.err = fmt.Errorf("compiling schema %s: %w", s.file, s.err)
		}
	})
	return s.compiled, s.err
}

// Validate checks package.json bytes against s.
// The error return is for malformed JSON or schema compilation failures;
// schema violations are reported in the ValidationResult.
func (s *Schema) Validate(data []byte) (*ValidationResult, error) {
	schema, err := s.get()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}
	return &ValidationResult{Issues: extractIssues(ve)}, nil
}

// ValidateFile reads a file from fs and validates it against s.
func (s *Schema) ValidateFile(fs afero.Fs, path string) (*ValidationResult, error) {
	data, err := readFile(fs, path)
	if err != nil {
		return nil, err
	}
	return s.Validate(data)
}

func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return deduplicate(issues)
}

// collectIssues walks the error tree down to the leaf errors.
func collectIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}
	if ve.ErrorKind == nil {
		return
	}

	keyword := ""
	if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
		keyword = kw[len(kw)-1]
	}
	if keyword == "" || keyword == "$ref" || keyword == "allOf" {
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	*issues = append(*issues, ValidationIssue{
		Path:    path,
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	})
}

func deduplicate(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
