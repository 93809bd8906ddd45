package app

import (
	"context"
	"fmt"
	"log"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/domain/port"
)

// TrainingService accumulates labeled samples from dataset images and
// fits the classifier over the full set.
type TrainingService struct {
	source     port.ImageSource
	detector   port.BlobDetector
	extractor  port.FeatureExtractor
	samples    port.SampleRepository
	classifier port.Classifier
}

// NewTrainingService wires the training pipeline.
func NewTrainingService(source port.ImageSource, detector port.BlobDetector, extractor port.FeatureExtractor, samples port.SampleRepository, classifier port.Classifier) *TrainingService {
	return &TrainingService{
		source:     source,
		detector:   detector,
		extractor:  extractor,
		samples:    samples,
		classifier: classifier,
	}
}

// IngestSubset runs detection and feature extraction over every image in
// the subset and appends the rows to the sample store under the given
// label. Images with zero blobs are logged and skipped. Returns the
// number of samples added.
func (s *TrainingService) IngestSubset(ctx context.Context, subset string, label entity.Label) (int, error) {
	names, err := s.source.List(ctx, subset)
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", subset, err)
	}

	added := 0
	for _, name := range names {
		img, err := s.source.Load(ctx, subset, name)
		if err != nil {
			return added, fmt.Errorf("load %s/%s: %w", subset, name, err)
		}

		blobs, err := s.detector.Detect(ctx, img)
		if err != nil {
			return added, fmt.Errorf("detect %s/%s: %w", subset, name, err)
		}
		if len(blobs) == 0 {
			log.Printf("no cookies found in %s/%s, skipping", subset, name)
			continue
		}

		features, err := s.extractor.Extract(ctx, img, blobs)
		if err != nil {
			return added, fmt.Errorf("extract %s/%s: %w", subset, name, err)
		}

		batch := make([]entity.LabeledSample, len(features))
		for i, f := range features {
			batch[i] = entity.LabeledSample{Features: f, Label: label}
		}
		if err := s.samples.Append(ctx, batch); err != nil {
			return added, fmt.Errorf("append samples: %w", err)
		}
		added += len(batch)
	}

	return added, nil
}

// Train fits the classifier on every accumulated sample and reports
// training accuracy with a confusion matrix. A failed fit leaves the
// classifier untrained and is not retried.
func (s *TrainingService) Train(ctx context.Context) (*entity.Evaluation, error) {
	samples, err := s.samples.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}

	if err := s.classifier.Train(samples); err != nil {
		return nil, fmt.Errorf("train classifier: %w", err)
	}

	features := make([]entity.FeatureVector, len(samples))
	for i, smp := range samples {
		features[i] = smp.Features
	}
	predicted, err := s.classifier.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("evaluate classifier: %w", err)
	}

	eval := &entity.Evaluation{SampleCount: len(samples)}
	for i, smp := range samples {
		eval.Confusion.Add(smp.Label, predicted[i])
	}
	eval.Accuracy = eval.Confusion.Accuracy()
	return eval, nil
}

// SampleCount returns the current training set size.
func (s *TrainingService) SampleCount(ctx context.Context) (int, error) {
	return s.samples.Len(ctx)
}

// Samples returns the accumulated samples in append order.
func (s *TrainingService) Samples(ctx context.Context) ([]entity.LabeledSample, error) {
	return s.samples.All(ctx)
}
