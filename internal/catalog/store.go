package catalog

import (
	"errors"
	"strings"

	"cafe-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateName   = errors.New("product name already exists")
	ErrNameRequired    = errors.New("product name is required")
)

// Store owns all reads and writes on the product table. Every mutation runs
// inside a single transaction so a failed write never leaves a partial row.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

type CreateInput struct {
	Name        string
	Price       float64
	ImageURL    string
	Description string
}

type UpdateInput struct {
	Name        *string
	Price       *float64
	ImageURL    *string
	Description *string
}

// List returns the catalog in insertion order.
func (s *Store) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListByFavorite returns favorites first, then the rest in insertion order.
func (s *Store) ListByFavorite() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("is_favorite desc, id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) Get(id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) Create(in CreateInput) (*models.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrNameRequired
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var count int64
	if err := tx.Model(&models.Product{}).Where("name = ?", in.Name).Count(&count).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if count > 0 {
		tx.Rollback()
		return nil, ErrDuplicateName
	}

	p := models.Product{
		Name:        in.Name,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Description: in.Description,
	}
	if err := tx.Create(&p).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies only the fields present in the input, everything else is
// left untouched.
func (s *Store) Update(id uint, in UpdateInput) (*models.Product, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var p models.Product
	if err := tx.First(&p, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			tx.Rollback()
			return nil, ErrNameRequired
		}
		if name != p.Name {
			var count int64
			if err := tx.Model(&models.Product{}).Where("name = ? AND id <> ?", name, p.ID).Count(&count).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
			if count > 0 {
				tx.Rollback()
				return nil, ErrDuplicateName
			}
		}
		p.Name = name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Description != nil {
		p.Description = *in.Description
	}

	if err := tx.Save(&p).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) Delete(id uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var p models.Product
	if err := tx.First(&p, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := tx.Delete(&p).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// ToggleFavorite flips the flag and reports the new value.
func (s *Store) ToggleFavorite(id uint) (bool, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	var p models.Product
	if err := tx.First(&p, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrProductNotFound
		}
		return false, err
	}

	p.IsFavorite = !p.IsFavorite
	if err := tx.Model(&p).Update("is_favorite", p.IsFavorite).Error; err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		return false, err
	}
	return p.IsFavorite, nil
}
