package category

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errors.New("category title is required")
	ErrInvalidImageRatio = errors.New("invalid image ratio")
)

// ImageRatio drives how the marketing site crops category tiles.
type ImageRatio string

const (
	RatioSquare    ImageRatio = "square"
	RatioPortrait  ImageRatio = "portrait"
	RatioLandscape ImageRatio = "landscape"
)

func NewImageRatio(value string) (ImageRatio, error) {
	r := ImageRatio(value)
	switch r {
	case RatioSquare, RatioPortrait, RatioLandscape:
		return r, nil
	default:
		return "", ErrInvalidImageRatio
	}
}

func (r ImageRatio) String() string {
	return string(r)
}

type Category struct {
	id         uuid.UUID
	title      string
	imageRatio ImageRatio
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCategory(title string, imageRatio ImageRatio) (*Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	return &Category{
		id:         uuid.New(),
		title:      title,
		imageRatio: imageRatio,
	}, nil
}

func ReconstructCategory(id uuid.UUID, title string, imageRatio ImageRatio, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:         id,
		title:      title,
		imageRatio: imageRatio,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (c *Category) ID() uuid.UUID          { return c.id }
func (c *Category) Title() string          { return c.title }
func (c *Category) ImageRatio() ImageRatio { return c.imageRatio }
func (c *Category) CreatedAt() time.Time   { return c.createdAt }
func (c *Category) UpdatedAt() time.Time   { return c.updatedAt }
