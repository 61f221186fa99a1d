package service

import (
	"context"

	"github.com/campusmind/campusmind/internal/domain"
	"github.com/campusmind/campusmind/internal/repository"
)

// ResourceService handles the self-help resource library
type ResourceService struct {
	resourceRepo *repository.ResourceRepository
}

// NewResourceService creates a new resource service
func NewResourceService(resourceRepo *repository.ResourceRepository) *ResourceService {
	return &ResourceService{resourceRepo: resourceRepo}
}

// List returns resources, optionally filtered by category and language
func (s *ResourceService) List(ctx context.Context, category, language string) ([]*domain.Resource, error) {
	return s.resourceRepo.List(category, language)
}

// Get returns one resource
func (s *ResourceService) Get(ctx context.Context, id string) (*domain.Resource, error) {
	return s.resourceRepo.Get(id)
}

// Create adds a resource (admin)
func (s *ResourceService) Create(ctx context.Context, req *domain.CreateResourceRequest) (*domain.Resource, error) {
	res := &domain.Resource{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.Category(req.Category),
		Kind:        domain.ResourceKind(req.Kind),
		URL:         req.URL,
		Language:    req.Language,
		Tags:        req.Tags,
	}
	if res.Language == "" {
		res.Language = "en"
	}
	if err := s.resourceRepo.Create(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Update modifies a resource (admin)
func (s *ResourceService) Update(ctx context.Context, id string, req *domain.UpdateResourceRequest) (*domain.Resource, error) {
	res, err := s.resourceRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}

	if req.Title != "" {
		res.Title = req.Title
	}
	if req.Description != "" {
		res.Description = req.Description
	}
	if req.Category != "" {
		res.Category = domain.Category(req.Category)
	}
	if req.Kind != "" {
		res.Kind = domain.ResourceKind(req.Kind)
	}
	if req.URL != "" {
		res.URL = req.URL
	}
	if req.Language != "" {
		res.Language = req.Language
	}
	if req.Tags != nil {
		res.Tags = req.Tags
	}

	if err := s.resourceRepo.Update(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Delete removes a resource (admin)
func (s *ResourceService) Delete(ctx context.Context, id string) error {
	return s.resourceRepo.Delete(id)
}

// Seed inserts the starter resource set if the library is empty
func (s *ResourceService) Seed(ctx context.Context) error {
	count, err := s.resourceRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, res := range starterResources() {
		if err := s.resourceRepo.Create(res); err != nil {
			return err
		}
	}
	return nil
}

func starterResources() []*domain.Resource {
	return []*domain.Resource{
		{
			Title:       "Tele-MANAS national mental health helpline",
			Description: "24x7 free and confidential helpline with trained counsellors. Call 14416.",
			Category:    domain.CategoryCrisis,
			Kind:        domain.ResourceHelpline,
			URL:         "tel:14416",
			Language:    "en",
			Tags:        []string{"helpline", "crisis"},
		},
		{
			Title:       "Grounding techniques for anxious moments",
			Description: "Five short exercises to interrupt spiralling worry.",
			Category:    domain.CategoryAnxiety,
			Kind:        domain.ResourceArticle,
			Language:    "en",
			Tags:        []string{"anxiety", "self-help"},
		},
		{
			Title:       "Understanding low mood and depression",
			Description: "What depression is, what it is not, and when to seek help.",
			Category:    domain.CategoryDepression,
			Kind:        domain.ResourceArticle,
			Language:    "en",
			Tags:        []string{"depression", "psychoeducation"},
		},
		{
			Title:       "A simple sleep-hygiene routine",
			Description: "A 30-minute wind-down routine you can start tonight.",
			Category:    domain.CategorySleep,
			Kind:        domain.ResourceArticle,
			Language:    "en",
			Tags:        []string{"sleep"},
		},
		{
			Title:       "Studying under pressure without burning out",
			Description: "Paced study blocks, breaks, and exam-week planning.",
			Category:    domain.CategoryAcademicStress,
			Kind:        domain.ResourceArticle,
			Language:    "en",
			Tags:        []string{"exams", "study"},
		},
		{
			Title:       "परीक्षा के तनाव से निपटना",
			Description: "पढ़ाई के दबाव को संभालने के व्यावहारिक तरीके।",
			Category:    domain.CategoryAcademicStress,
			Kind:        domain.ResourceArticle,
			Language:    "hi",
			Tags:        []string{"exams"},
		},
	}
}
