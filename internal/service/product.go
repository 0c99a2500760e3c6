package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"bakeryapi/internal/model"
	"bakeryapi/internal/repository"
	"bakeryapi/internal/storage"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("product not found")
)

// ProductInput carries the product form fields. For updates, empty fields are
// treated as "unchanged" since every persisted field is non-empty.
type ProductInput struct {
	Name     string
	Price    string
	Category string
	Desc     string
}

// ImageUpload wraps an uploaded image file for streaming into the media store.
type ImageUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// ProductService defines the use cases for managing catalog products. Every
// mutation keeps the products table and the media store in step: an image is
// uploaded before the row referencing it is written, and failed second phases
// trigger a compensating delete of the uploaded object.
type ProductService interface {
	// Create validates the input, uploads the image, then persists the record.
	// No store is touched when validation fails.
	Create(ctx context.Context, in ProductInput, img *ImageUpload) (*model.Product, error)

	// List returns all products, newest first.
	List(ctx context.Context) ([]model.Product, error)

	// Get returns a single product by its ID.
	Get(ctx context.Context, id string) (*model.Product, error)

	// Update merges the non-empty input fields into the existing record and,
	// when img is non-nil, replaces its media store object.
	Update(ctx context.Context, id string, in ProductInput, img *ImageUpload) (*model.Product, error)

	// Delete removes a product's media store object and then its record.
	Delete(ctx context.Context, id string) error
}

// productService is a concrete implementation of ProductService.
type productService struct {
	store storage.Storage
	repo  repository.ProductRepository
}

// NewProductService constructs a new ProductService.
func NewProductService(store storage.Storage, repo repository.ProductRepository) ProductService {
	return &productService{store: store, repo: repo}
}

func (in ProductInput) validate() error {
	switch {
	case in.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case in.Price == "":
		return fmt.Errorf("%w: price is required", ErrValidation)
	case in.Category == "":
		return fmt.Errorf("%w: category is required", ErrValidation)
	case in.Desc == "":
		return fmt.Errorf("%w: desc is required", ErrValidation)
	}
	return nil
}

func (s *productService) Create(ctx context.Context, in ProductInput, img *ImageUpload) (*model.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if img == nil || img.Reader == nil {
		return nil, fmt.Errorf("%w: image file is required", ErrValidation)
	}

	obj, err := s.uploadImage(ctx, img)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     in.Price,
		Category:  in.Category,
		Desc:      in.Desc,
		ImageURL:  s.store.PublicURL(obj.Key),
		ImageRef:  obj.Key,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, p)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, obj.Key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

// List returns all products ordered newest-first.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

// Get returns a product by ID.
func (s *productService) Get(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update looks up the existing record before touching the media store, so an
// unknown id never triggers an upload or a deletion. When a new image is
// supplied, the new object is uploaded first, the row is rewritten to point at
// it, and only then is the old object removed.
func (s *productService) Update(ctx context.Context, id string, in ProductInput, img *ImageUpload) (*model.Product, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	next := *existing
	if in.Name != "" {
		next.Name = in.Name
	}
	if in.Price != "" {
		next.Price = in.Price
	}
	if in.Category != "" {
		next.Category = in.Category
	}
	if in.Desc != "" {
		next.Desc = in.Desc
	}

	oldRef := ""
	if img != nil && img.Reader != nil {
		obj, err := s.uploadImage(ctx, img)
		if err != nil {
			return nil, err
		}
		oldRef = existing.ImageRef
		next.ImageURL = s.store.PublicURL(obj.Key)
		next.ImageRef = obj.Key
	}

	updated, err := s.repo.Update(ctx, &next)
	if err != nil {
		if oldRef != "" {
			// Rollback the fresh upload so the failed update leaves no orphan.
			if delErr := s.store.Delete(ctx, next.ImageRef); delErr != nil {
				return nil, fmt.Errorf("db update failed: %v; rollback delete failed: %v", err, delErr)
			}
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db update failed: %w", err)
	}

	if oldRef != "" {
		// The record already points at the new object; a failure here only
		// strands the old one, which a storage sweep can reclaim.
		if err := s.store.Delete(ctx, oldRef); err != nil {
			logOrphanedObject(oldRef, err)
		}
	}
	return updated, nil
}

// Delete removes a product's image from storage, then deletes its record.
func (s *productService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Delete from storage first; a failure keeps both stores intact.
	if err := s.store.Delete(ctx, p.ImageRef); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	// The image is gone at this point, so a row failure leaves a dangling
	// image_ref; the wrapped message makes that state distinguishable.
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("record delete failed after image removal: %w", err)
	}
	return nil
}

// uploadImage stores the file under a fresh products/ key, keeping the
// original extension.
func (s *productService) uploadImage(ctx context.Context, img *ImageUpload) (storage.ObjectInfo, error) {
	ext := filepath.Ext(img.Filename)
	key := filepath.ToSlash(filepath.Join("products", uuid.New().String()+ext))

	obj, err := s.store.Put(ctx, key, img.Reader, storage.PutObjectOptions{
		Size:        img.Size,
		ContentType: img.ContentType,
		Metadata: map[string]string{
			"original-filename": img.Filename,
		},
	})
	if err != nil {
		return storage.ObjectInfo{}, fmt.Errorf("upload image: %w", err)
	}
	return obj, nil
}

func logOrphanedObject(key string, err error) {
	entry := map[string]any{
		"ts":        time.Now().UTC().Format(time.RFC3339Nano),
		"level":     "warn",
		"component": "product_service",
		"event":     "orphaned_media_object",
		"key":       key,
		"error":     err.Error(),
	}
	if b, mErr := json.Marshal(entry); mErr == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
