package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string        `json:"id"`
	Preset      string        `json:"preset,omitempty"`
	Timestamp   time.Time     `json:"timestamp"`
	TypeSpeedMs int           `json:"type_speed_ms"`
	BackSpeedMs int           `json:"back_speed_ms"`
	Curvature   string        `json:"curvature"`
	Strings     []string      `json:"strings"`
	Frames      int           `json:"frames"`
	Duration    time.Duration `json:"duration_ns"`
}

// Save writes a run directory containing metadata.json and frames.csv and
// returns the generated run id.
func (s *Store) Save(meta RunMetadata, frames []Frame) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Frames = len(frames)
	if len(frames) > 0 {
		meta.Duration = frames[len(frames)-1].Offset
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

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"offset_ms", "string_index", "phase", "delay_ms", "text"}); err != nil {
		return "", err
	}
	for _, f := range frames {
		phase := "typing"
		if f.Backspacing {
			phase = "backspacing"
		}
		row := []string{
			strconv.FormatFloat(float64(f.Offset)/float64(time.Millisecond), 'f', 3, 64),
			strconv.Itoa(f.StringIndex),
			phase,
			strconv.FormatFloat(float64(f.Delay)/float64(time.Millisecond), 'f', 3, 64),
			f.Text,
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
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

// LoadFrames reads a recorded timeline back from frames.csv.
func (s *Store) LoadFrames(runID string) ([]Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Frame{}, nil
	}

	frames := make([]Frame, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 5 {
			continue
		}
		offsetMs, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		idx, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		delayMs, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}
		frames = append(frames, Frame{
			Offset:      time.Duration(offsetMs * float64(time.Millisecond)),
			Text:        record[4],
			StringIndex: idx,
			Backspacing: record[2] == "backspacing",
			Delay:       time.Duration(delayMs * float64(time.Millisecond)),
		})
	}

	return frames, nil
}

// ExportJSON writes a run's metadata and frames as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	frames, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}

	type export struct {
		RunMetadata
		Timeline []Frame `json:"timeline"`
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(export{RunMetadata: *meta, Timeline: frames})
}
