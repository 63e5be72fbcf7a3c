package store

import (
	"encoding/json"
	"io"

	"github.com/san-kum/odelab/internal/ivp"
)

type ExportData struct {
	Problem string             `json:"problem"`
	Method  string             `json:"method"`
	T0      float64            `json:"t0"`
	T1      float64            `json:"t1"`
	Samples int                `json:"samples"`
	Times   []float64          `json:"times"`
	States  [][]float64        `json:"states"`
	Exact   [][]float64        `json:"exact,omitempty"`
	Metrics map[string]float64 `json:"metrics"`
}

// ExportJSON writes a complete run as a single indented JSON document.
func ExportJSON(w io.Writer, problem, method string, t0, t1 float64, result *ivp.Result, exact []ivp.State) error {
	data := ExportData{
		Problem: problem,
		Method:  method,
		T0:      t0,
		T1:      t1,
		Samples: len(result.Times),
		Times:   result.Times,
		States:  make([][]float64, len(result.States)),
		Metrics: result.Metrics,
	}

	for i, s := range result.States {
		data.States[i] = s
	}
	if exact != nil {
		data.Exact = make([][]float64, len(exact))
		for i, s := range exact {
			data.Exact[i] = s
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
