package service

import (
	"context"
	"fmt"

	"renova/internal/config"
	"renova/internal/domain"
	"renova/internal/port"
)

// CreatePortfolioInput is the DTO for portfolio creation.
type CreatePortfolioInput struct {
	Title       string
	Description string
	AltText     string
	MainImage   *UploadFile
	Gallery     []UploadFile
}

// UpdatePortfolioInput is the DTO for full or partial portfolio updates.
// Nil pointer fields are left unchanged.
type UpdatePortfolioInput struct {
	Title         *string
	Description   *string
	AltText       *string
	MainImage     *UploadFile
	Gallery       []UploadFile
	DeletedImages []string
}

// PortfolioService manages portfolio items and their hosted images.
type PortfolioService interface {
	List(ctx context.Context) ([]domain.PortfolioItem, error)
	GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error)
	Create(ctx context.Context, input CreatePortfolioInput) (*domain.PortfolioItem, error)
	Update(ctx context.Context, id int64, input UpdatePortfolioInput) (*domain.PortfolioItem, error)
	Delete(ctx context.Context, id int64) error
	RemoveGalleryImage(ctx context.Context, id int64, imageURL string) (*domain.PortfolioItem, error)
}

type portfolioService struct {
	repo     port.PortfolioRepository
	uploader port.ImageUploader
	proxy    ImageProxyService
	cfg      *config.UploadConfig
}

// NewPortfolioService creates a new PortfolioService implementation.
func NewPortfolioService(
	repo port.PortfolioRepository,
	uploader port.ImageUploader,
	proxy ImageProxyService,
	cfg *config.UploadConfig,
) PortfolioService {
	return &portfolioService{repo: repo, uploader: uploader, proxy: proxy, cfg: cfg}
}

func (s *portfolioService) List(ctx context.Context) ([]domain.PortfolioItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.rewrite(&items[i])
	}
	return items, nil
}

func (s *portfolioService) GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.rewrite(item)
	return item, nil
}

func (s *portfolioService) Create(ctx context.Context, input CreatePortfolioInput) (*domain.PortfolioItem, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.MainImage == nil {
		return nil, fmt.Errorf("%w: main image is required", domain.ErrValidation)
	}

	mainURL, err := s.uploader.Upload(ctx, input.MainImage.Filename, input.MainImage.Data)
	if err != nil {
		return nil, err
	}

	gallery, err := uploadGallery(ctx, s.uploader, s.cfg, input.Gallery)
	if err != nil {
		return nil, err
	}

	item := &domain.PortfolioItem{
		Title:       input.Title,
		Description: input.Description,
		MainImage:   mainURL,
		OtherImage:  gallery,
		AltText:     input.AltText,
	}
	if err := item.OtherImage.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.rewrite(item)
	return item, nil
}

func (s *portfolioService) Update(ctx context.Context, id int64, input UpdatePortfolioInput) (*domain.PortfolioItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrValidation)
		}
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.AltText != nil {
		item.AltText = *input.AltText
	}

	// Banner replaced only when a new file arrives.
	if input.MainImage != nil {
		mainURL, err := s.uploader.Upload(ctx, input.MainImage.Filename, input.MainImage.Data)
		if err != nil {
			return nil, err
		}
		item.MainImage = mainURL
	}

	// Gallery recompute: survivors first, then new uploads in order.
	kept := item.OtherImage.Without(s.unwrapAll(input.DeletedImages))
	added, err := uploadGallery(ctx, s.uploader, s.cfg, input.Gallery)
	if err != nil {
		return nil, err
	}
	item.OtherImage = append(kept, added...)
	if err := item.OtherImage.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.rewrite(item)
	return item, nil
}

func (s *portfolioService) Delete(ctx context.Context, id int64) error {
	// Remote objects are left behind on purpose; see the storage orphan policy.
	return s.repo.Delete(ctx, id)
}

func (s *portfolioService) RemoveGalleryImage(ctx context.Context, id int64, imageURL string) (*domain.PortfolioItem, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("%w: imageUrl is required", domain.ErrValidation)
	}
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.OtherImage = item.OtherImage.Without([]string{s.proxy.UnwrapURL(imageURL)})
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.rewrite(item)
	return item, nil
}

// rewrite routes the item's image URLs through the access proxy before the
// entity leaves the store.
func (s *portfolioService) rewrite(item *domain.PortfolioItem) {
	item.MainImage = s.proxy.RewriteURL(item.MainImage)
	for i, u := range item.OtherImage {
		item.OtherImage[i] = s.proxy.RewriteURL(u)
	}
}

// unwrapAll normalizes client-echoed URLs back to their stored hosted form.
func (s *portfolioService) unwrapAll(urls []string) []string {
	out := make([]string, len(urls))
	for i, u := range urls {
		out[i] = s.proxy.UnwrapURL(u)
	}
	return out
}
