// Package findings reads classification reports, the output of the
// upstream symptom-analysis service, and turns them into layout
// regions.
//
// A report is a small YAML or JSON document:
//
//	diagnosis: Respiratory Distress
//	severity: high
//	description: Chest pain and difficulty breathing
//	findings:
//	  - region: lungs
//	    detail: Reduced oxygen exchange
//	  - region: heart
//	    detail: Elevated heart rate
//	    severity: medium
//
// Region identifiers are matched against the anatomy vocabulary;
// identifiers that match nothing are discarded, not errored, since the
// classifier may name structures the diagram cannot annotate.
package findings

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/medvis/bodymap/pkg/anatomy"
	"github.com/medvis/bodymap/pkg/errors"
	"github.com/medvis/bodymap/pkg/layout"
	"github.com/medvis/bodymap/pkg/observability"
)

// maxDetailRunes caps the label text taken from one finding.
const maxDetailRunes = 100

// Finding is one affected region as reported by the classifier.
type Finding struct {
	Region   string `json:"region" yaml:"region"`
	Detail   string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Severity string `json:"severity,omitempty" yaml:"severity,omitempty"`
}

// Report is a full classification result for one submission.
type Report struct {
	Diagnosis   string    `json:"diagnosis,omitempty" yaml:"diagnosis,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Severity    string    `json:"severity,omitempty" yaml:"severity,omitempty"`
	Findings    []Finding `json:"findings" yaml:"findings"`
}

// Read parses a report from r. Set isYAML for YAML input; otherwise the
// data is treated as JSON. An empty findings list is valid.
func Read(r io.Reader, isYAML bool) (Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Report{}, errors.Wrap(errors.ErrCodeInvalidFindings, err, "read report")
	}

	var rep Report
	if isYAML {
		err = yaml.Unmarshal(data, &rep)
	} else {
		err = json.Unmarshal(data, &rep)
	}
	if err != nil {
		return Report{}, errors.Wrap(errors.ErrCodeInvalidFindings, err, "parse report")
	}
	return rep, nil
}

// ReadFile parses a report file, choosing the format by extension:
// .yaml and .yml are YAML, everything else JSON.
func ReadFile(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open report %s", path)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	return Read(f, ext == ".yaml" || ext == ".yml")
}

// Regions resolves the report's findings into layout regions.
//
// Each finding's identifier is matched against the vocabulary; matches
// are de-duplicated keeping the first occurrence, so the classifier's
// ordering survives. Unknown identifiers are returned in dropped. A
// finding without its own severity inherits the report severity, and a
// report without one falls back to keyword classification of the
// description.
func (r Report) Regions() (regions []layout.Region, dropped []string) {
	reportSeverity, ok := anatomy.ParseSeverity(r.Severity)
	if !ok {
		reportSeverity = anatomy.ClassifySeverity(r.Description)
	}

	seen := make(map[string]bool, len(r.Findings))
	for _, f := range r.Findings {
		id, ok := anatomy.Match(f.Region)
		if !ok {
			dropped = append(dropped, f.Region)
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		severity, ok := anatomy.ParseSeverity(f.Severity)
		if !ok {
			severity = reportSeverity
		}

		info, _ := anatomy.Info(id)
		regions = append(regions, layout.Region{
			ID:    id,
			Text:  truncate(strings.TrimSpace(f.Detail), maxDetailRunes),
			Tag:   string(severity),
			Color: info.Color,
		})
	}

	observability.Findings().OnFindingsParsed(len(regions), len(dropped))
	return regions, dropped
}

// truncate limits s to n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
