// Package store persists solver runs as per-run directories holding a
// metadata file and the trajectory samples.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/odelab/internal/ivp"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Problem   string             `json:"problem"`
	Method    string             `json:"method"`
	Timestamp time.Time          `json:"timestamp"`
	T0        float64            `json:"t0"`
	T1        float64            `json:"t1"`
	Samples   int                `json:"samples"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes metadata and the trajectory of a completed run. When exact
// is non-nil it is stored alongside the numeric states, one column set
// per state dimension.
func (s *Store) Save(problem, method string, t0, t1 float64, result *ivp.Result, exact []ivp.State) (string, error) {
	runID := fmt.Sprintf("%s_%s_%d", problem, method, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Problem:   problem,
		Method:    method,
		Timestamp: time.Now(),
		T0:        t0,
		T1:        t1,
		Samples:   len(result.States),
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.States) == 0 {
		return runID, nil
	}

	dim := len(result.States[0])
	header := []string{"time"}
	for i := 0; i < dim; i++ {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	hasExact := len(exact) == len(result.States)
	if hasExact {
		for i := 0; i < dim; i++ {
			header = append(header, fmt.Sprintf("exact%d", i))
		}
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range result.States {
		row := []string{strconv.FormatFloat(result.Times[i], 'g', 17, 64)}
		for _, val := range result.States[i] {
			row = append(row, strconv.FormatFloat(val, 'g', 17, 64))
		}
		if hasExact {
			for _, val := range exact[i] {
				row = append(row, strconv.FormatFloat(val, 'g', 17, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Trajectory is the loaded sample table of a stored run. Exact is empty
// when the run had no analytic reference.
type Trajectory struct {
	Times  []float64
	States []ivp.State
	Exact  []ivp.State
}

func (s *Store) LoadTrajectory(runID string) (*Trajectory, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return &Trajectory{}, nil
	}

	header := records[0]
	dim := 0
	exactCols := 0
	for _, col := range header[1:] {
		if len(col) > 5 && col[:5] == "exact" {
			exactCols++
		} else {
			dim++
		}
	}

	traj := &Trajectory{
		Times:  make([]float64, 0, len(records)-1),
		States: make([]ivp.State, 0, len(records)-1),
	}

	for _, record := range records[1:] {
		if len(record) != len(header) {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		traj.Times = append(traj.Times, t)

		state := make(ivp.State, 0, dim)
		for j := 1; j <= dim; j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				val = 0
			}
			state = append(state, val)
		}
		traj.States = append(traj.States, state)

		if exactCols > 0 {
			exact := make(ivp.State, 0, exactCols)
			for j := 1 + dim; j < len(record); j++ {
				val, err := strconv.ParseFloat(record[j], 64)
				if err != nil {
					val = 0
				}
				exact = append(exact, val)
			}
			traj.Exact = append(traj.Exact, exact)
		}
	}

	return traj, nil
}
