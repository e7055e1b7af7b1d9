package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"freshmart-backend/models"
)

const (
	listCachePrefix    = "products:v:"
	detailCachePrefix  = "product:detail:v:"
	sectionCachePrefix = "catalog:v:"
	cacheVersionKey    = "catalog:version"

	defaultCacheTTL = 5 * time.Minute
)

// CacheManager caches read-side product responses in Redis. All keys embed
// a shared version number; any write bumps the version, which orphans every
// cached entry at once instead of tracking keys individually.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(redis *redis.Client) *CacheManager {
	return &CacheManager{
		redis: redis,
		ttl:   defaultCacheTTL,
	}
}

// GetProducts retrieves a cached product list for the given key suffix.
func (cm *CacheManager) GetProducts(ctx context.Context, suffix string) ([]models.Product, bool) {
	if cm == nil || cm.redis == nil {
		return nil, false
	}
	version, err := cm.getCacheVersion(ctx)
	if err != nil {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, listCachePrefix+versioned(version, suffix)).Result()
	if err != nil {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(cached), &products); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return products, true
}

// SetProductsAsync caches a product list without blocking the response.
func (cm *CacheManager) SetProductsAsync(suffix string, products []models.Product) {
	cm.setAsync(listCachePrefix, suffix, products)
}

// GetProduct retrieves a cached single product by its id or slug.
func (cm *CacheManager) GetProduct(ctx context.Context, idOrSlug string) (*models.Product, bool) {
	if cm == nil || cm.redis == nil {
		return nil, false
	}
	version, err := cm.getCacheVersion(ctx)
	if err != nil {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, detailCachePrefix+versioned(version, idOrSlug)).Result()
	if err != nil {
		return nil, false
	}

	var product models.Product
	if err := json.Unmarshal([]byte(cached), &product); err != nil {
		zap.L().Warn("Failed to unmarshal cached product", zap.Error(err))
		return nil, false
	}
	return &product, true
}

// SetProductAsync caches a single product without blocking the response.
func (cm *CacheManager) SetProductAsync(idOrSlug string, product *models.Product) {
	if cm == nil || cm.redis == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil {
			return
		}

		jsonBytes, err := json.Marshal(product)
		if err != nil {
			zap.L().Warn("Failed to marshal product for cache", zap.Error(err))
			return
		}

		if err := cm.redis.Set(bgCtx, detailCachePrefix+versioned(version, idOrSlug), jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product", zap.Error(err))
		}
	}()
}

// GetSection retrieves a cached storefront section.
func (cm *CacheManager) GetSection(ctx context.Context, name string) ([]models.Product, bool) {
	if cm == nil || cm.redis == nil {
		return nil, false
	}
	version, err := cm.getCacheVersion(ctx)
	if err != nil {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, sectionCachePrefix+versioned(version, name)).Result()
	if err != nil {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(cached), &products); err != nil {
		zap.L().Warn("Failed to unmarshal cached section", zap.Error(err), zap.String("section", name))
		return nil, false
	}
	return products, true
}

// SetSectionAsync caches a storefront section without blocking the response.
func (cm *CacheManager) SetSectionAsync(name string, products []models.Product) {
	cm.setAsync(sectionCachePrefix, name, products)
}

// Invalidate orphans all cached reads by bumping the shared version.
func (cm *CacheManager) Invalidate(ctx context.Context) {
	if cm == nil || cm.redis == nil {
		return
	}
	newVersion, err := cm.redis.Incr(ctx, cacheVersionKey).Result()
	if err != nil {
		zap.L().Error("Failed to invalidate cache", zap.Error(err))
		return
	}
	zap.L().Info("Cache invalidated", zap.Int64("new_version", newVersion))
}

func (cm *CacheManager) setAsync(prefix, suffix string, products []models.Product) {
	if cm == nil || cm.redis == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil {
			return
		}

		jsonBytes, err := json.Marshal(products)
		if err != nil {
			zap.L().Warn("Failed to marshal products for cache", zap.Error(err))
			return
		}

		if err := cm.redis.Set(bgCtx, prefix+versioned(version, suffix), jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache products", zap.Error(err))
		}
	}()
}

func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	ver, err := cm.redis.Get(ctx, cacheVersionKey).Int64()
	if err == nil && ver > 0 {
		return ver, nil
	}
	if err == redis.Nil {
		if err := cm.redis.Set(ctx, cacheVersionKey, 1, 0).Err(); err == nil {
			return 1, nil
		}
	}
	return 0, fmt.Errorf("failed to get cache version: %w", err)
}

func versioned(version int64, suffix string) string {
	return fmt.Sprintf("%d:%s", version, suffix)
}
