package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Name      *string   `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Author is the trimmed user shape attached to blog post responses.
type Author struct {
	ID    string  `json:"id" db:"id"`
	Name  *string `json:"name" db:"name"`
	Email string  `json:"email" db:"email"`
}

type Category struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// File is the metadata row for one object in the storage bucket.
// Size stays a string: the browser submits it as text and it is passed
// through untouched.
type File struct {
	ID         string     `json:"id" db:"id"`
	CategoryID *string    `json:"categoryId" db:"category_id"`
	Name       string     `json:"name" db:"name"`
	URL        string     `json:"url" db:"url"`
	Key        string     `json:"key" db:"key"`
	Size       *string    `json:"size" db:"size"`
	MimeType   *string    `json:"mimeType" db:"mime_type"`
	Location   *string    `json:"location" db:"location"`
	CapturedAt *time.Time `json:"capturedAt" db:"captured_at"`
	Metadata   *string    `json:"metadata" db:"metadata"`
	UploadedBy *string    `json:"uploadedBy" db:"uploaded_by"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`

	Category *Category `json:"category,omitempty" db:"-"`
}

type Page struct {
	ID              string    `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Slug            string    `json:"slug" db:"slug"`
	Content         *string   `json:"content" db:"content"`
	PageType        string    `json:"pageType" db:"page_type"`
	FeaturedImageID *string   `json:"featuredImageId" db:"featured_image_id"`
	ShowInMenu      bool      `json:"showInMenu" db:"show_in_menu"`
	MenuOrder       string    `json:"menuOrder" db:"menu_order"`
	Published       bool      `json:"published" db:"published"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`

	FeaturedImage *File `json:"featuredImage,omitempty" db:"-"`
}

const (
	PageTypeStandard = "standard"
	PageTypeHome     = "home"
)

// MenuPage is the reduced page shape returned in the home menu.
type MenuPage struct {
	ID        string `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	Slug      string `json:"slug" db:"slug"`
	MenuOrder string `json:"menuOrder" db:"menu_order"`
}

type BlogPost struct {
	ID              string     `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Slug            string     `json:"slug" db:"slug"`
	Excerpt         *string    `json:"excerpt" db:"excerpt"`
	Content         *string    `json:"content" db:"content"`
	FeaturedImageID *string    `json:"featuredImageId" db:"featured_image_id"`
	Published       bool       `json:"published" db:"published"`
	PublishedAt     *time.Time `json:"publishedAt" db:"published_at"`
	AuthorID        *string    `json:"authorId" db:"author_id"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`

	FeaturedImage *File   `json:"featuredImage,omitempty" db:"-"`
	Author        *Author `json:"author,omitempty" db:"-"`
}

// CategoryWithImage pairs a category with its most recent file for the
// home page grid.
type CategoryWithImage struct {
	Category
	Image *File `json:"image"`
}
