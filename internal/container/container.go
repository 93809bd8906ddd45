package container

import (
	app "cookie-inspector/internal/application"
	"cookie-inspector/internal/domain/port"
)

// Container wires the application services from their ports.
type Container struct {
	UserService       *app.UserService
	TrainingService   *app.TrainingService
	InspectionService *app.InspectionService
}

// New builds the service graph.
func New(
	userRepo port.UserRepository,
	sampleRepo port.SampleRepository,
	source port.ImageSource,
	detector port.BlobDetector,
	extractor port.FeatureExtractor,
	classifier port.Classifier,
	annotator port.Annotator,
) *Container {
	return &Container{
		UserService:       app.NewUserService(userRepo),
		TrainingService:   app.NewTrainingService(source, detector, extractor, sampleRepo, classifier),
		InspectionService: app.NewInspectionService(detector, extractor, classifier, annotator),
	}
}
