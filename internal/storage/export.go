package storage

import (
	"cmp"
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/sortviz/internal/stepper"
)

type TraceExport[T cmp.Ordered] struct {
	Dataset   string                `json:"dataset"`
	Algorithm string                `json:"algorithm"`
	Order     string                `json:"order"`
	Size      int                   `json:"size"`
	Steps     int                   `json:"steps"`
	Initial   []T                   `json:"initial"`
	Frames    []stepper.Snapshot[T] `json:"frames"`
}

func NewTraceExport[T cmp.Ordered](datasetName, order string, initial []T, frames []stepper.Snapshot[T]) TraceExport[T] {
	return TraceExport[T]{
		Dataset:   datasetName,
		Algorithm: "bubble",
		Order:     order,
		Size:      len(initial),
		Steps:     len(frames),
		Initial:   initial,
		Frames:    frames,
	}
}

func WriteTrace[T cmp.Ordered](w io.Writer, data TraceExport[T]) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportTrace[T cmp.Ordered](path string, data TraceExport[T]) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteTrace(file, data)
}
