package renderer

import (
	"encoding/json"
	"io"

	"github.com/etnz/dcasim"
	"github.com/google/uuid"
)

type jsonOutcome struct {
	Label  string         `json:"label"`
	Report *dcasim.Report `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type jsonRun struct {
	Run      string        `json:"run"`
	Outcomes []jsonOutcome `json:"outcomes"`
}

// JSON writes the outcomes of a run as an indented JSON document.
//
// Each call is identified by a new run ID.
func JSON(w io.Writer, outcomes []Outcome) error {
	run := jsonRun{Run: uuid.NewString(), Outcomes: make([]jsonOutcome, 0, len(outcomes))}
	for _, o := range outcomes {
		jo := jsonOutcome{Label: o.Label, Report: o.Report}
		if o.Err != nil {
			jo.Report = nil
			jo.Error = o.Err.Error()
		}
		run.Outcomes = append(run.Outcomes, jo)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}
