// Package jsconfig decodes a named set of parser configurations from a YAML
// document, so a host application doesn't have to re-derive the same four
// booleans (goal, annexB, retainComments, retainRanges) at every call site.
package jsconfig

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/nilsvast/ecmaparse/internal/js_parser"
)

type rawProfile struct {
	Goal           string `yaml:"goal"`
	AnnexB         bool   `yaml:"annexB"`
	RetainComments bool   `yaml:"retainComments"`
	RetainRanges   bool   `yaml:"retainRanges"`
}

type rawDocument struct {
	Profiles map[string]rawProfile `yaml:"profiles"`
}

// LoadProfiles decodes a document shaped like:
//
//	profiles:
//	  browser-module:
//	    goal: module
//	    annexB: false
//	    retainComments: true
//	    retainRanges: true
//
// into a map of js_parser.Options keyed by profile name. An unrecognized
// "goal" value is reported as a returned error rather than a panic.
func LoadProfiles(data []byte) (map[string]js_parser.Options, error) {
	var doc rawDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("jsconfig: %w", err)
	}

	profiles := make(map[string]js_parser.Options, len(doc.Profiles))
	for name, raw := range doc.Profiles {
		var goal js_parser.Goal
		switch raw.Goal {
		case "script", "":
			goal = js_parser.GoalScript
		case "module":
			goal = js_parser.GoalModule
		default:
			return nil, fmt.Errorf("jsconfig: profile %q: unrecognized goal %q (want \"script\" or \"module\")", name, raw.Goal)
		}
		profiles[name] = js_parser.Options{
			Goal:           goal,
			AnnexB:         raw.AnnexB,
			RetainComments: raw.RetainComments,
			RetainRanges:   raw.RetainRanges,
		}
	}
	return profiles, nil
}
