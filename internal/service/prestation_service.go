package service

import (
	"context"
	"fmt"

	"renova/internal/config"
	"renova/internal/domain"
	"renova/internal/port"
)

// CreatePrestationInput is the DTO for prestation creation.
type CreatePrestationInput struct {
	Name        string
	Description string
	BannerImage *UploadFile
	Gallery     []UploadFile
}

// UpdatePrestationInput is the DTO for full or partial prestation updates.
// Nil pointer fields are left unchanged.
type UpdatePrestationInput struct {
	Name          *string
	Description   *string
	BannerImage   *UploadFile
	Gallery       []UploadFile
	DeletedImages []string
}

// PrestationService manages service-offering records and their hosted images.
type PrestationService interface {
	List(ctx context.Context) ([]domain.Prestation, error)
	GetByID(ctx context.Context, id int64) (*domain.Prestation, error)
	Create(ctx context.Context, input CreatePrestationInput) (*domain.Prestation, error)
	Update(ctx context.Context, id int64, input UpdatePrestationInput) (*domain.Prestation, error)
	Delete(ctx context.Context, id int64) error
	RemoveGalleryImage(ctx context.Context, id int64, imageURL string) (*domain.Prestation, error)
}

type prestationService struct {
	repo     port.PrestationRepository
	uploader port.ImageUploader
	proxy    ImageProxyService
	cfg      *config.UploadConfig
}

// NewPrestationService creates a new PrestationService implementation.
func NewPrestationService(
	repo port.PrestationRepository,
	uploader port.ImageUploader,
	proxy ImageProxyService,
	cfg *config.UploadConfig,
) PrestationService {
	return &prestationService{repo: repo, uploader: uploader, proxy: proxy, cfg: cfg}
}

func (s *prestationService) List(ctx context.Context) ([]domain.Prestation, error) {
	prestations, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range prestations {
		s.rewrite(&prestations[i])
	}
	return prestations, nil
}

func (s *prestationService) GetByID(ctx context.Context, id int64) (*domain.Prestation, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.rewrite(p)
	return p, nil
}

func (s *prestationService) Create(ctx context.Context, input CreatePrestationInput) (*domain.Prestation, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.BannerImage == nil {
		return nil, fmt.Errorf("%w: banner image is required", domain.ErrValidation)
	}

	bannerURL, err := s.uploader.Upload(ctx, input.BannerImage.Filename, input.BannerImage.Data)
	if err != nil {
		return nil, err
	}

	gallery, err := uploadGallery(ctx, s.uploader, s.cfg, input.Gallery)
	if err != nil {
		return nil, err
	}

	p := &domain.Prestation{
		Name:        input.Name,
		Description: input.Description,
		BannerImage: bannerURL,
		OtherImage:  gallery,
	}
	if err := p.OtherImage.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.rewrite(p)
	return p, nil
}

func (s *prestationService) Update(ctx context.Context, id int64, input UpdatePrestationInput) (*domain.Prestation, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}

	if input.BannerImage != nil {
		bannerURL, err := s.uploader.Upload(ctx, input.BannerImage.Filename, input.BannerImage.Data)
		if err != nil {
			return nil, err
		}
		p.BannerImage = bannerURL
	}

	kept := p.OtherImage.Without(s.unwrapAll(input.DeletedImages))
	added, err := uploadGallery(ctx, s.uploader, s.cfg, input.Gallery)
	if err != nil {
		return nil, err
	}
	p.OtherImage = append(kept, added...)
	if err := p.OtherImage.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.rewrite(p)
	return p, nil
}

func (s *prestationService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *prestationService) RemoveGalleryImage(ctx context.Context, id int64, imageURL string) (*domain.Prestation, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("%w: imageUrl is required", domain.ErrValidation)
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.OtherImage = p.OtherImage.Without([]string{s.proxy.UnwrapURL(imageURL)})
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.rewrite(p)
	return p, nil
}

func (s *prestationService) rewrite(p *domain.Prestation) {
	p.BannerImage = s.proxy.RewriteURL(p.BannerImage)
	for i, u := range p.OtherImage {
		p.OtherImage[i] = s.proxy.RewriteURL(u)
	}
}

func (s *prestationService) unwrapAll(urls []string) []string {
	out := make([]string, len(urls))
	for i, u := range urls {
		out[i] = s.proxy.UnwrapURL(u)
	}
	return out
}
