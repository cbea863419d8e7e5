// Package results loads per-agent result files into the aggregator's input
// form. Documents are validated against an embedded JSON Schema before
// decoding, so data reaching the estimator always satisfies its invariants.
package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spboyer/passcurve/internal/curve"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

// AgentResult is one agent's result document: the agent identifier, the
// uniform attempt budget, and the per-task pass counts.
type AgentResult struct {
	Agent    string             `json:"agent" yaml:"agent"`
	Attempts int                `json:"attempts" yaml:"attempts"`
	Tasks    []curve.TaskResult `json:"tasks" yaml:"tasks"`
}

// Load reads and validates a single result file. JSON (.json) and YAML
// (.yaml/.yml) are accepted; a .gz suffix on any of them is transparently
// decompressed.
func Load(path string) (*AgentResult, error) {
	data, err := readMaybeGzipped(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := decodeDocument(path, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if errs := validateAgainstSchema(resultSchema, doc); len(errs) > 0 {
		return nil, fmt.Errorf("%s does not match the result schema:\n  %s",
			path, strings.Join(errs, "\n  "))
	}

	// Round-trip through JSON so one decode path serves both formats.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-encoding %s: %w", path, err)
	}
	var result AgentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if err := validateSemantics(&result); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("loaded agent results",
		"path", path, "agent", result.Agent,
		"attempts", result.Attempts, "tasks", len(result.Tasks))
	return &result, nil
}

// LoadFiles loads a set of result files concurrently and returns the agent
// map the curve aggregator consumes. Two files naming the same agent is an
// error, as the later one would silently shadow the earlier.
func LoadFiles(paths []string) (map[string]curve.AgentStats, error) {
	loaded := make([]*AgentResult, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			result, err := Load(path)
			if err != nil {
				return err
			}
			loaded[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	agents := make(map[string]curve.AgentStats, len(loaded))
	for i, result := range loaded {
		if _, dup := agents[result.Agent]; dup {
			return nil, fmt.Errorf("%s: duplicate agent %q", paths[i], result.Agent)
		}
		agents[result.Agent] = curve.AgentStats{
			Attempts: result.Attempts,
			Tasks:    result.Tasks,
		}
	}
	return agents, nil
}

func readMaybeGzipped(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return data, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// decodeDocument parses raw bytes into a generic document for schema
// validation. The format follows the file extension, with .gz stripped.
func decodeDocument(path string, data []byte) (any, error) {
	name := strings.TrimSuffix(path, ".gz")
	switch {
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return convertToJSONCompatible(doc), nil
	default:
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
}

// validateSemantics enforces the constraints the schema cannot express.
func validateSemantics(result *AgentResult) error {
	seen := make(map[string]bool, len(result.Tasks))
	for _, task := range result.Tasks {
		if task.Correct > result.Attempts {
			return fmt.Errorf("task %q: correct (%d) exceeds attempts (%d)",
				task.Task, task.Correct, result.Attempts)
		}
		if seen[task.Task] {
			return fmt.Errorf("duplicate task %q", task.Task)
		}
		seen[task.Task] = true
	}
	return nil
}

func validateAgainstSchema(schema *jsonschema.Schema, instance any) []string {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}

// convertToJSONCompatible converts YAML-decoded values to JSON-compatible
// types. yaml.v3 decodes mappings to map[string]any already; this walk keeps
// nested slices and maps aligned with what the schema validator expects.
func convertToJSONCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, v2 := range val {
			result[k] = convertToJSONCompatible(v2)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, v2 := range val {
			result[i] = convertToJSONCompatible(v2)
		}
		return result
	default:
		return val
	}
}
