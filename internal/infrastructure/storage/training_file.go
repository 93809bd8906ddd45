package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"cookie-inspector/internal/domain/entity"
)

// trainingFile is the on-disk JSON layout of an accumulated training set.
type trainingFile struct {
	Samples []trainingSample `json:"samples"`
}

type trainingSample struct {
	Features []float64 `json:"features"`
	Label    int       `json:"label"`
}

// SaveTrainingSet writes the samples to a JSON file so a trained run can
// be reproduced without re-ingesting images.
func SaveTrainingSet(path string, samples []entity.LabeledSample) error {
	file := trainingFile{Samples: make([]trainingSample, len(samples))}
	for i, s := range samples {
		file.Samples[i] = trainingSample{Features: s.Features, Label: int(s.Label)}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal training set: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadTrainingSet reads samples back from a JSON file.
func LoadTrainingSet(path string) ([]entity.LabeledSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file trainingFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal training set: %w", err)
	}

	samples := make([]entity.LabeledSample, len(file.Samples))
	for i, s := range file.Samples {
		samples[i] = entity.LabeledSample{
			Features: entity.FeatureVector(s.Features),
			Label:    entity.Label(s.Label),
		}
	}
	return samples, nil
}
