package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"renova/internal/domain"
	"renova/internal/service"
	"renova/mocks"
)

func TestPrestationService_Create_Success(t *testing.T) {
	repo := new(mocks.MockPrestationRepo)
	uploader := new(mocks.MockImageUploader)
	svc := service.NewPrestationService(repo, uploader, passthroughProxy(), testUploadConfig())

	uploader.On("Upload", mock.Anything, "banner.jpg", mock.Anything).Return("https://img.example/banner.jpg", nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Prestation")).Return(nil)

	p, err := svc.Create(context.Background(), service.CreatePrestationInput{
		Name:        "Peinture",
		Description: "Travaux de peinture intérieure",
		BannerImage: &service.UploadFile{Filename: "banner.jpg", Data: []byte("banner")},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Peinture", p.Name)
	assert.Equal(t, "https://img.example/banner.jpg", p.BannerImage)
	repo.AssertExpectations(t)
}

func TestPrestationService_Create_RequiresName(t *testing.T) {
	svc := service.NewPrestationService(new(mocks.MockPrestationRepo), new(mocks.MockImageUploader), passthroughProxy(), testUploadConfig())

	p, err := svc.Create(context.Background(), service.CreatePrestationInput{
		BannerImage: &service.UploadFile{Filename: "banner.jpg", Data: []byte("banner")},
	})

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPrestationService_Create_RequiresBanner(t *testing.T) {
	svc := service.NewPrestationService(new(mocks.MockPrestationRepo), new(mocks.MockImageUploader), passthroughProxy(), testUploadConfig())

	p, err := svc.Create(context.Background(), service.CreatePrestationInput{Name: "Peinture"})

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPrestationService_Update_GalleryRecompute(t *testing.T) {
	repo := new(mocks.MockPrestationRepo)
	uploader := new(mocks.MockImageUploader)
	svc := service.NewPrestationService(repo, uploader, passthroughProxy(), testUploadConfig())

	existing := &domain.Prestation{
		ID:          1,
		Name:        "Peinture",
		BannerImage: "https://img.example/banner.jpg",
		OtherImage:  domain.ImageList{"https://img.example/u.jpg", "https://img.example/v.jpg"},
	}
	repo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	uploader.On("Upload", mock.Anything, "w.jpg", mock.Anything).Return("https://img.example/w.jpg", nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Prestation")).Return(nil)

	p, err := svc.Update(context.Background(), 1, service.UpdatePrestationInput{
		Gallery:       []service.UploadFile{{Filename: "w.jpg", Data: []byte("w")}},
		DeletedImages: []string{"https://img.example/u.jpg"},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ImageList{"https://img.example/v.jpg", "https://img.example/w.jpg"}, p.OtherImage)
}

func TestPrestationService_GetByID_NotFound(t *testing.T) {
	repo := new(mocks.MockPrestationRepo)
	svc := service.NewPrestationService(repo, new(mocks.MockImageUploader), passthroughProxy(), testUploadConfig())

	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	p, err := svc.GetByID(context.Background(), 404)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPrestationService_RemoveGalleryImage(t *testing.T) {
	repo := new(mocks.MockPrestationRepo)
	svc := service.NewPrestationService(repo, new(mocks.MockImageUploader), passthroughProxy(), testUploadConfig())

	existing := &domain.Prestation{
		ID:          5,
		Name:        "Isolation",
		BannerImage: "https://img.example/banner.jpg",
		OtherImage:  domain.ImageList{"https://img.example/a.jpg", "https://img.example/b.jpg"},
	}
	repo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Prestation")).Return(nil)

	p, err := svc.RemoveGalleryImage(context.Background(), 5, "https://img.example/b.jpg")

	assert.NoError(t, err)
	assert.Equal(t, domain.ImageList{"https://img.example/a.jpg"}, p.OtherImage)
}
