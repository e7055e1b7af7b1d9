package repository

import (
	"context"

	apperrors "freshmart-backend/errors"
	"freshmart-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{
		collection: db.Collection("categories"),
	}
}

func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NotFound("Category not found")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch category", err)
	}
	return &category, nil
}

// FindAll returns every category sorted by name ascending.
func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch categories", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, apperrors.Internal("Failed to decode categories", err)
	}
	return categories, nil
}

func (r *CategoryRepository) ConflictExists(ctx context.Context, name, slug string, exclude primitive.ObjectID) (bool, error) {
	var or []bson.M
	if name != "" {
		or = append(or, bson.M{"name": name})
	}
	if slug != "" {
		or = append(or, bson.M{"slug": slug})
	}
	if len(or) == 0 {
		return false, nil
	}

	filter := bson.M{"$or": or}
	if exclude != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": exclude}
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, apperrors.Internal("Failed to check category uniqueness", err)
	}
	return count > 0, nil
}

func (r *CategoryRepository) Insert(ctx context.Context, category *models.Category) error {
	result, err := r.collection.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("Category with this name or slug already exists")
		}
		return apperrors.Internal("Failed to create category", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		category.ID = oid
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Category, error) {
	set := bson.M{}
	for k, v := range updates {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var category models.Category
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NotFound("Category not found")
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict("Another category with this name or slug already exists")
		}
		return nil, apperrors.Internal("Failed to update category", err)
	}
	return &category, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, apperrors.Internal("Failed to delete category", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperrors.Internal("Failed to count categories", err)
	}
	return count, nil
}

func (r *CategoryRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}
