package handler

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bakeryapi/internal/service"
)

// ListProducts returns every product, newest first.
func ListProducts(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "error fetching products")
		}
		return c.JSON(items)
	}
}

// CreateProduct handles the multipart admin form: product fields plus exactly
// one image file under the "image" field.
func CreateProduct(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		img, err := imageFromForm(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "image file is required")
		}
		defer img.close()

		in := productInputFromForm(c)
		p, err := svc.Create(c.UserContext(), in, img.upload)
		if err != nil {
			if errors.Is(err, service.ErrValidation) {
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "error creating product")
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdateProduct applies a partial or full field update, with an optional
// replacement image file.
func UpdateProduct(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var upload *service.ImageUpload
		img, err := imageFromForm(c)
		if err == nil {
			defer img.close()
			upload = img.upload
		}

		in := productInputFromForm(c)
		p, err := svc.Update(c.UserContext(), id, in, upload)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "product not found")
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "error updating product")
			}
		}
		return c.JSON(p)
	}
}

// DeleteProduct removes a product and its stored image.
func DeleteProduct(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "product not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "error deleting product")
		}
		return c.JSON(fiber.Map{"message": "Product deleted successfully"})
	}
}

func productInputFromForm(c *fiber.Ctx) service.ProductInput {
	return service.ProductInput{
		Name:     c.FormValue("name"),
		Price:    c.FormValue("price"),
		Category: c.FormValue("category"),
		Desc:     c.FormValue("desc"),
	}
}

// formImage pairs the streaming upload with its underlying file handle so the
// handler can close it after the service is done reading.
type formImage struct {
	upload *service.ImageUpload
	file   multipart.File
}

func (f *formImage) close() {
	if f.file != nil {
		_ = f.file.Close()
	}
}

func imageFromForm(c *fiber.Ctx) (*formImage, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}

	return &formImage{
		upload: &service.ImageUpload{
			Reader:      f,
			Filename:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
		},
		file: f,
	}, nil
}
