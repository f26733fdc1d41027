package repository

import (
	"context"
	"os"

	"github.com/koyomi-lab/koyomi/pkg/domain/interfaces"
	"github.com/koyomi-lab/koyomi/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// holidayEntry is one record of a YAML holiday file
type holidayEntry struct {
	Date  string `yaml:"date"`
	Label string `yaml:"label"`
}

// holidayFile is the YAML holiday file layout
type holidayFile struct {
	Holidays []holidayEntry `yaml:"holidays"`
}

// File implements HolidaySource backed by a YAML file of dated labels
type File struct {
	annotations []model.Annotation
}

// NewFile loads and validates a YAML holiday file
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, goerr.New("holiday file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "holiday file not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read holiday file", goerr.V("path", path))
	}

	var parsed holidayFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse holiday file", goerr.V("path", path))
	}

	annotations := make([]model.Annotation, 0, len(parsed.Holidays))
	for i, entry := range parsed.Holidays {
		date, err := model.ParseDate(entry.Date)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid holiday entry",
				goerr.V("path", path),
				goerr.V("index", i))
		}
		a, err := model.NewAnnotation(date, entry.Label)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid holiday entry",
				goerr.V("path", path),
				goerr.V("index", i))
		}
		annotations = append(annotations, a)
	}

	return &File{annotations: annotations}, nil
}

var _ interfaces.HolidaySource = (*File)(nil)

// Annotations returns the file's annotations for a year in file order
func (f *File) Annotations(ctx context.Context, year int) ([]model.Annotation, error) {
	var result []model.Annotation
	for _, a := range f.annotations {
		if a.Date.Year == year {
			result = append(result, a)
		}
	}
	return result, nil
}
