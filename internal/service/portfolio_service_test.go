package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"renova/internal/config"
	"renova/internal/domain"
	"renova/internal/service"
	"renova/mocks"
)

func testUploadConfig() *config.UploadConfig {
	return &config.UploadConfig{
		MaxBytes:       2 * 1024 * 1024,
		PartialFailure: service.PartialFailureAbort,
	}
}

// passthroughProxy keeps URLs unchanged so assertions stay readable.
type passthroughProxyService struct{}

func (passthroughProxyService) Fetch(context.Context, string) (*service.ProxiedImage, error) {
	return nil, nil
}

func (passthroughProxyService) RewriteURL(hosted string) string { return hosted }

func (passthroughProxyService) UnwrapURL(proxied string) string { return proxied }

func passthroughProxy() service.ImageProxyService { return passthroughProxyService{} }

func TestPortfolioService_Create_Success(t *testing.T) {
	repo := new(mocks.MockPortfolioRepo)
	uploader := new(mocks.MockImageUploader)
	svc := service.NewPortfolioService(repo, uploader, passthroughProxy(), testUploadConfig())

	uploader.On("Upload", mock.Anything, "main.jpg", mock.Anything).Return("https://img.example/main.jpg", nil)
	uploader.On("Upload", mock.Anything, "g1.jpg", mock.Anything).Return("https://img.example/g1.jpg", nil)
	uploader.On("Upload", mock.Anything, "g2.jpg", mock.Anything).Return("https://img.example/g2.jpg", nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PortfolioItem")).Return(nil)

	item, err := svc.Create(context.Background(), service.CreatePortfolioInput{
		Title:     "Kitchen refit",
		AltText:   "renovated kitchen",
		MainImage: &service.UploadFile{Filename: "main.jpg", Data: []byte("main")},
		Gallery: []service.UploadFile{
			{Filename: "g1.jpg", Data: []byte("g1")},
			{Filename: "g2.jpg", Data: []byte("g2")},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://img.example/main.jpg", item.MainImage)
	assert.Equal(t, domain.ImageList{"https://img.example/g1.jpg", "https://img.example/g2.jpg"}, item.OtherImage)
	repo.AssertExpectations(t)
	uploader.AssertExpectations(t)
}

func TestPortfolioService_Create_RequiresTitle(t *testing.T) {
	svc := service.NewPortfolioService(new(mocks.MockPortfolioRepo), new(mocks.MockImageUploader), passthroughProxy(), testUploadConfig())

	item, err := svc.Create(context.Background(), service.CreatePortfolioInput{
		MainImage: &service.UploadFile{Filename: "main.jpg", Data: []byte("main")},
	})

	assert.Nil(t, item)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPortfolioService_Create_RequiresMainImage(t *testing.T) {
	svc := service.NewPortfolioService(new(mocks.MockPortfolioRepo), new(mocks.MockImageUploader), passthroughProxy(), testUploadConfig())

	item, err := svc.Create(context.Background(), service.CreatePortfolioInput{Title: "Kitchen refit"})

	assert.Nil(t, item)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPortfolioService_Create_AbortsOnGalleryFailure(t *testing.T) {
	repo := new(mocks.MockPortfolioRepo)
	uploader := new(mocks.MockImageUploader)
	svc := service.NewPortfolioService(repo, uploader, passthroughProxy(), testUploadConfig())

	uploader.On("Upload", mock.Anything, "main.jpg", mock.Anything).Return("https://img.example/main.jpg", nil)
	uploader.On("Upload", mock.Anything, "g1.jpg", mock.Anything).Return("", domain.ErrUploadFailed)

	item, err := svc.Create(context.Background(), service.CreatePortfolioInput{
		Title:     "Kitchen refit",
		MainImage: &service.UploadFile{Filename: "main.jpg", Data: []byte("main")},
		Gallery:   []service.UploadFile{{Filename: "g1.jpg", Data: []byte("g1")}},
	})

	assert.Nil(t, item)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPortfolioService_Create_KeepPolicySkipsFailures(t *testing.T) {
	repo := new(mocks.MockPortfolioRepo)
	uploader := new(mocks.MockImageUploader)
	cfg := testUploadConfig()
	cfg.PartialFailure = service.PartialFailureKeep
	svc := service.NewPortfolioService(repo, uploader, passthroughProxy(), cfg)

	uploader.On("Upload", mock.Anything, "main.jpg", mock.Anything).Return("https://img.example/main.jpg", nil)
	uploader.On("Upload", mock.Anything, "bad.jpg", mock.Anything).Return("", domain.ErrUploadFailed)
	uploader.On("Upload", mock.Anything, "good.jpg", mock.Anything).Return("https://img.example/good.jpg", nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PortfolioItem")).Return(nil)

	item, err := svc.Create(context.Background(), service.CreatePortfolioInput{
		Title:     "Kitchen refit",
		MainImage: &service.UploadFile{Filename: "main.jpg", Data: []byte("main")},
		Gallery: []service.UploadFile{
			{Filename: "bad.jpg", Data: []byte("bad")},
			{Filename: "good.jpg", Data: []byte("good")},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ImageList{"https://img.example/good.jpg"}, item.OtherImage)
}

func TestPortfolioService_Update_GalleryRecompute(t *testing.T) {
	repo := new(mocks.MockPortfolioRepo)
	uploader := new(mocks.MockImageUploader)
	svc := service.NewPortfolioService(repo, uploader, passthroughProxy(), testUploadConfig())

	existing := &domain.PortfolioItem{
		ID:         1,
		Title:      "Kitchen refit",
		MainImage:  "https://img.example/main.jpg",
		OtherImage: domain.ImageList{"https://img.example/u.jpg", "https://img.example/v.jpg"},
	}
	repo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	uploader.On("Upload", mock.Anything, "w.jpg", mock.Anything).Return("https://img.example/w.jpg", nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.PortfolioItem")).Return(nil)

	item, err := svc.Update(context.Background(), 1, service.UpdatePortfolioInput{
		Gallery:       []service.UploadFile{{Filename: "w.jpg", Data: []byte("w")}},
		DeletedImages: []string{"https://img.example/u.jpg"},
	})

	assert.NoError(t, err)
	// Survivors keep their order, then new uploads in submission order.
	assert.Equal(t, domain.ImageList{"https://img.example/v.jpg", "https://img.example/w.jpg"}, item.OtherImage)
	// Untouched fields are left alone.
	assert.Equal(t, "Kitchen refit", item.Title)
	assert.Equal(t, "https://img.example/main.jpg", item.MainImage)
}

func TestPortfolioService_Update_ReplacesMainImageOnlyWithNewFile(t *testing.T) {
	repo := new(mocks.MockPortfolioRepo)
	uploader := new(mocks.MockImageUploader)
	svc := service.NewPortfolioService(repo, uploader, passthroughProxy(), testUploadConfig())

	existing := &domain.PortfolioItem{ID: 2, Title: "Bathroom", MainImage: "https://img.example/old.jpg"}
	repo.On("GetByID", mock.Anything, int64(2)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.PortfolioItem")).Return(nil)

	newTitle := "Bathroom remodel"
	item, err := svc.Update(context.Background(), 2, service.UpdatePortfolioInput{Title: &newTitle})

	assert.NoError(t, err)
	assert.Equal(t, "Bathroom remodel", item.Title)
	assert.Equal(t, "https://img.example/old.jpg", item.MainImage)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestPortfolioService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockPortfolioRepo)
	svc := service.NewPortfolioService(repo, new(mocks.MockImageUploader), passthroughProxy(), testUploadConfig())

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	item, err := svc.Update(context.Background(), 99, service.UpdatePortfolioInput{})

	assert.Nil(t, item)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPortfolioService_Delete_NotFound(t *testing.T) {
	repo := new(mocks.MockPortfolioRepo)
	svc := service.NewPortfolioService(repo, new(mocks.MockImageUploader), passthroughProxy(), testUploadConfig())

	repo.On("Delete", mock.Anything, int64(42)).Return(domain.ErrNotFound)

	err := svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPortfolioService_RemoveGalleryImage(t *testing.T) {
	repo := new(mocks.MockPortfolioRepo)
	svc := service.NewPortfolioService(repo, new(mocks.MockImageUploader), passthroughProxy(), testUploadConfig())

	existing := &domain.PortfolioItem{
		ID:         3,
		Title:      "Facade",
		MainImage:  "https://img.example/main.jpg",
		OtherImage: domain.ImageList{"https://img.example/a.jpg", "https://img.example/b.jpg"},
	}
	repo.On("GetByID", mock.Anything, int64(3)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.PortfolioItem")).Return(nil)

	item, err := svc.RemoveGalleryImage(context.Background(), 3, "https://img.example/a.jpg")

	assert.NoError(t, err)
	assert.Equal(t, domain.ImageList{"https://img.example/b.jpg"}, item.OtherImage)
}

func TestPortfolioService_RemoveGalleryImage_RequiresURL(t *testing.T) {
	svc := service.NewPortfolioService(new(mocks.MockPortfolioRepo), new(mocks.MockImageUploader), passthroughProxy(), testUploadConfig())

	item, err := svc.RemoveGalleryImage(context.Background(), 3, "")

	assert.Nil(t, item)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPortfolioService_List_RewritesImageURLs(t *testing.T) {
	repo := new(mocks.MockPortfolioRepo)
	proxy := new(mocks.MockImageProxyService)
	svc := service.NewPortfolioService(repo, new(mocks.MockImageUploader), proxy, testUploadConfig())

	repo.On("List", mock.Anything).Return([]domain.PortfolioItem{{
		ID:         1,
		MainImage:  "https://img.example/main.jpg",
		OtherImage: domain.ImageList{"https://img.example/g.jpg"},
	}}, nil)
	proxy.On("RewriteURL", "https://img.example/main.jpg").Return("/api/proxy-image?url=main")
	proxy.On("RewriteURL", "https://img.example/g.jpg").Return("/api/proxy-image?url=g")

	items, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "/api/proxy-image?url=main", items[0].MainImage)
	assert.Equal(t, domain.ImageList{"/api/proxy-image?url=g"}, items[0].OtherImage)
	proxy.AssertExpectations(t)
}
