package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"cookie-inspector/config"
	telegram "cookie-inspector/internal/api"
	app "cookie-inspector/internal/application"
	"cookie-inspector/internal/container"
	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/infrastructure/annotate"
	"cookie-inspector/internal/infrastructure/dataset"
	"cookie-inspector/internal/infrastructure/ml"
	"cookie-inspector/internal/infrastructure/storage"
	"cookie-inspector/internal/infrastructure/vision"
)

const (
	subsetGood    = "Train/good"
	subsetFlipped = "Train/flipped"
	subsetTest    = "Test"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	mlOpts := ml.DefaultOptions()
	mlOpts.Neighbors = cfg.KNNNeighbors
	classifier, err := ml.New(ml.Kind(cfg.Classifier), mlOpts)
	if err != nil {
		log.Fatalf("Failed to create classifier: %v", err)
	}

	detector := vision.NewDetector(vision.Options{
		ThresholdLow:  cfg.ThresholdLow,
		ThresholdHigh: cfg.ThresholdHigh,
		MinArea:       cfg.MinBlobArea,
		MaxArea:       cfg.MaxBlobArea,
	})
	extractor := vision.NewExtractor(cfg.ErosionMargin)
	source := dataset.NewFileSource(cfg.DataDir)
	sampleRepo := storage.NewMemorySampleRepository()
	userRepo := storage.NewMemoryUserRepository()
	annotator := annotate.NewAnnotator(3)

	c := container.New(userRepo, sampleRepo, source, detector, extractor, classifier, annotator)

	ctx := context.Background()

	if err := runTraining(ctx, cfg, c); err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	if err := runTestSet(ctx, cfg, c, source); err != nil {
		log.Fatalf("Test run failed: %v", err)
	}

	if cfg.TelegramToken == "" {
		return
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, c.UserService, c.InspectionService)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Println("Bot is running...")
	if err := bot.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}

// runTraining ingests both labeled subsets, fits the classifier and
// reports accuracy with a confusion matrix.
func runTraining(ctx context.Context, cfg *config.Config, c *container.Container) error {
	added, err := c.TrainingService.IngestSubset(ctx, subsetGood, entity.LabelNotFlipped)
	if err != nil {
		return fmt.Errorf("ingest %s: %w", subsetGood, err)
	}
	log.Printf("Collected %d face-up samples from %s", added, subsetGood)

	added, err = c.TrainingService.IngestSubset(ctx, subsetFlipped, entity.LabelFlipped)
	if err != nil {
		return fmt.Errorf("ingest %s: %w", subsetFlipped, err)
	}
	log.Printf("Collected %d flipped samples from %s", added, subsetFlipped)

	eval, err := c.TrainingService.Train(ctx)
	if err != nil {
		return err
	}

	log.Printf("Trained %s on %d samples, accuracy %.1f%%", cfg.Classifier, eval.SampleCount, eval.Accuracy*100)
	log.Printf("Confusion matrix:\n%s", eval.Confusion.String())

	return saveTrainingSet(ctx, cfg, c)
}

// saveTrainingSet writes the accumulated samples next to the overlays so
// a run can be reproduced without re-ingesting images.
func saveTrainingSet(ctx context.Context, cfg *config.Config, c *container.Container) error {
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	samples, err := c.TrainingService.Samples(ctx)
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.OutDir, "training_set.json")
	if err := storage.SaveTrainingSet(path, samples); err != nil {
		return fmt.Errorf("save training set: %w", err)
	}
	log.Printf("Training set written to %s", path)
	return nil
}

// runTestSet classifies every test image and writes a pass/fail overlay
// per input. Images with no cookies are logged and skipped.
func runTestSet(ctx context.Context, cfg *config.Config, c *container.Container, source *dataset.FileSource) error {
	names, err := source.List(ctx, subsetTest)
	if err != nil {
		return fmt.Errorf("list %s: %w", subsetTest, err)
	}

	for _, name := range names {
		img, err := source.Load(ctx, subsetTest, name)
		if err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}

		out, err := c.InspectionService.Inspect(ctx, img)
		if errors.Is(err, app.ErrNoBlobs) {
			log.Printf("%s: no cookies found, skipping", name)
			continue
		}
		if err != nil {
			return fmt.Errorf("inspect %s: %w", name, err)
		}

		verdict := out.Verdict
		if verdict.Pass() {
			log.Printf("%s: PASS (%d cookies)", name, len(verdict.Blobs))
		} else {
			log.Printf("%s: FAIL (%d of %d flipped)", name, verdict.FlippedCount(), len(verdict.Blobs))
		}

		overlayPath := filepath.Join(cfg.OutDir, name+".verdict.jpg")
		if err := os.WriteFile(overlayPath, out.Overlay, 0644); err != nil {
			return fmt.Errorf("write overlay %s: %w", overlayPath, err)
		}

		// Demo pacing only.
		if cfg.ViewDelay > 0 {
			time.Sleep(cfg.ViewDelay)
		}
	}

	return nil
}
