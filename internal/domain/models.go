package domain

import (
	"time"
)

// User represents a back-office account. Accounts are created out of band
// by the seed command; there is no self-registration.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// PortfolioItem is a published project showcase record.
type PortfolioItem struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	MainImage   string    `db:"main_image" json:"mainImage"`
	OtherImage  ImageList `db:"other_image" json:"otherImage"`
	AltText     string    `db:"alt_text" json:"altText"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Prestation is a published service-offering record.
type Prestation struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	BannerImage string    `db:"banner_image" json:"bannerImage"`
	OtherImage  ImageList `db:"other_image" json:"otherImage"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ContactMessage is a visitor enquiry submitted through the public site.
// It is relayed by email and never persisted.
type ContactMessage struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message" binding:"required"`
}
