package storage

import (
	"cmp"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/sortviz/internal/sortalg"
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
	ID        string        `json:"id"`
	Dataset   string        `json:"dataset"`
	Algorithm string        `json:"algorithm"`
	Order     string        `json:"order"`
	Elements  string        `json:"elements"`
	Size      int           `json:"size"`
	Seed      int64         `json:"seed"`
	Timestamp time.Time     `json:"timestamp"`
	Seconds   float64       `json:"seconds"`
	Stats     sortalg.Stats `json:"stats"`
}

// SaveResult stores one engine run: metadata.json plus values.csv holding
// the original and sorted sequences side by side.
func SaveResult[T cmp.Ordered](s *Store, datasetName, elements string, seed int64, res *sortalg.Result[T]) (string, error) {
	meta := RunMetadata{
		Dataset:   datasetName,
		Algorithm: res.Kind.String(),
		Order:     res.Order.String(),
		Elements:  elements,
		Size:      len(res.Sorted),
		Seed:      seed,
		Seconds:   res.Seconds(),
		Stats:     res.Stats,
	}
	original := make([]string, len(res.Input))
	for i, v := range res.Input {
		original[i] = fmt.Sprint(v)
	}
	sorted := make([]string, len(res.Sorted))
	for i, v := range res.Sorted {
		sorted[i] = fmt.Sprint(v)
	}
	return s.Save(meta, original, sorted)
}

func (s *Store) Save(meta RunMetadata, original, sorted []string) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Algorithm, now.UnixNano())
	meta.Timestamp = now
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
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

	csvFile, err := os.Create(filepath.Join(runDir, "values.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"index", "original", "sorted"}); err != nil {
		return "", err
	}
	for i := range sorted {
		orig := ""
		if i < len(original) {
			orig = original[i]
		}
		if err := w.Write([]string{strconv.Itoa(i), orig, sorted[i]}); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// List returns stored runs, newest first. Unreadable entries are skipped.
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
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

// LoadValues returns the original and sorted columns of a stored run.
func (s *Store) LoadValues(runID string) ([]string, []string, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "values.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []string{}, []string{}, nil
	}

	original := make([]string, 0, len(records)-1)
	sorted := make([]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		original = append(original, record[1])
		sorted = append(sorted, record[2])
	}

	return original, sorted, nil
}
