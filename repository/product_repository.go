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

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch product", err)
	}
	return &product, nil
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch product", err)
	}
	return &product, nil
}

func (r *ProductRepository) SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if exclude != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, apperrors.Internal("Failed to check slug uniqueness", err)
	}
	return count > 0, nil
}

func (r *ProductRepository) Find(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	findOptions := options.Find().SetSort(sortFor(q.Sort))
	if q.Limit > 0 {
		findOptions.SetLimit(q.Limit)
	}

	cursor, err := r.collection.Find(ctx, filterFor(q), findOptions)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch products", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, apperrors.Internal("Failed to decode products", err)
	}
	return products, nil
}

func (r *ProductRepository) Count(ctx context.Context, q ProductQuery) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filterFor(q))
	if err != nil {
		return 0, apperrors.Internal("Failed to count products", err)
	}
	return count, nil
}

func (r *ProductRepository) Insert(ctx context.Context, product *models.Product) error {
	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("A product with this slug already exists")
		}
		return apperrors.Internal("Failed to save product", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Product, error) {
	set := bson.M{}
	for k, v := range updates {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product models.Product
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NotFound("Product not found")
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict("A product with this slug already exists")
		}
		return nil, apperrors.Internal("Failed to update product", err)
	}
	return &product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, apperrors.Internal("Failed to delete product", err)
	}
	return result.DeletedCount > 0, nil
}

// EnsureIndexes creates the unique slug index plus the indexes backing
// category filtering and free-text search.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}},
		},
	})
	return err
}

func filterFor(q ProductQuery) bson.M {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if len(q.Categories) > 0 {
		filter["category"] = bson.M{"$in": q.Categories}
	}
	if q.Search != "" {
		filter["$text"] = bson.M{"$search": q.Search}
	}
	if q.DiscountedOnly {
		filter["discount"] = bson.M{"$gt": 0}
	}
	if q.InStockOnly {
		filter["inStock"] = true
	}
	return filter
}

func sortFor(sort string) bson.D {
	switch sort {
	case SortDiscountDesc:
		return bson.D{{Key: "discount", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}
