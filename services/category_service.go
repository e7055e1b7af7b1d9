package services

import (
	"context"
	"strings"
	"time"

	apperrors "freshmart-backend/errors"
	"freshmart-backend/models"
	"freshmart-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryService struct {
	repo repository.CategoryRepo
}

func NewCategoryService(repo repository.CategoryRepo) *CategoryService {
	return &CategoryService{repo: repo}
}

// List returns all categories sorted by name ascending.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("Invalid category ID")
	}
	return s.repo.FindByID(ctx, oid)
}

// Create requires name and slug and enforces that both are unique across all
// categories before inserting.
func (s *CategoryService) Create(ctx context.Context, req CategoryCreateRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if name == "" || slug == "" {
		return nil, apperrors.Validation("Name and slug are required")
	}

	exists, err := s.repo.ConflictExists(ctx, name, slug, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("Category with this name or slug already exists")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now().UTC()
	category := &models.Category{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Slug:        slug,
		Image:       req.Image,
		Description: strings.TrimSpace(req.Description),
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update writes only the supplied fields. When name or slug change, their
// uniqueness is re-checked against every other category.
func (s *CategoryService) Update(ctx context.Context, id string, req CategoryUpdateRequest) (*models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("Invalid category ID")
	}

	patch := map[string]interface{}{}
	var name, slug string
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.Validation("Category name is required")
		}
		patch["name"] = name
	}
	if req.Slug != nil {
		slug = strings.ToLower(strings.TrimSpace(*req.Slug))
		if slug == "" {
			return nil, apperrors.Validation("Category slug is required")
		}
		patch["slug"] = slug
	}
	if req.Image != nil {
		patch["image"] = *req.Image
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.IsActive != nil {
		patch["isActive"] = *req.IsActive
	}
	if len(patch) == 0 {
		return nil, apperrors.Validation("No update fields provided")
	}

	if name != "" || slug != "" {
		exists, err := s.repo.ConflictExists(ctx, name, slug, oid)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.Conflict("Another category with this name or slug already exists")
		}
	}

	patch["updatedAt"] = time.Now().UTC()
	return s.repo.Update(ctx, oid, patch)
}

// Delete removes a category. Products referencing it are left alone; the
// category field on products is free text, not a foreign key.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.Validation("Invalid category ID")
	}
	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound("Category not found")
	}
	return nil
}

func (s *CategoryService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
