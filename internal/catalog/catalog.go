package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"ecowaste_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"
)

const productCacheTTL = 10 * time.Minute

var ErrProductNotFound = errors.New("catalog: product not found")

// Store reads deals from the catalog keyspace, with a Redis read-through
// cache in front of single-product lookups. Writes reindex the deal so
// search stays in step with the catalog.
type Store struct {
	session *gocql.Session
	redis   *redis.Client
	search  *SearchService
}

func NewStore(session *gocql.Session, redisClient *redis.Client, search *SearchService) *Store {
	return &Store{session: session, redis: redisClient, search: search}
}

// GetProduct looks a deal up by id, serving from cache when possible.
func (s *Store) GetProduct(ctx context.Context, id gocql.UUID) (*models.Product, error) {
	key := "product:" + id.String()

	if s.redis != nil {
		if data, err := s.redis.Get(ctx, key).Result(); err == nil {
			var p models.Product
			if json.Unmarshal([]byte(data), &p) == nil {
				return &p, nil
			}
		}
	}

	p, err := s.fetchProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(p); err == nil {
			s.redis.Set(ctx, key, data, productCacheTTL)
		}
	}
	return p, nil
}

func (s *Store) fetchProduct(ctx context.Context, id gocql.UUID) (*models.Product, error) {
	var (
		p                    models.Product
		expiresAt, createdAt *time.Time
	)
	err := s.session.Query(`SELECT product_id, name, description, price, original_price, stock,
	                               category, image_urls, tags, expires_at, created_at
	                        FROM products WHERE product_id = ?`, id).
		WithContext(ctx).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice, &p.Stock,
		&p.Category, &p.ImageURLs, &p.Tags, &expiresAt, &createdAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	p.ExpiresAt = expiresAt
	p.CreatedAt = createdAt
	return &p, nil
}

// ListProducts returns up to limit deals, unordered (Scylla token order).
func (s *Store) ListProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	iter := s.session.Query(`SELECT product_id, name, description, price, original_price, stock,
	                                category, image_urls, tags, expires_at, created_at
	                         FROM products LIMIT ?`, limit).
		WithContext(ctx).Iter()

	var out []models.Product
	for {
		var (
			p                    models.Product
			expiresAt, createdAt *time.Time
		)
		if !iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice, &p.Stock,
			&p.Category, &p.ImageURLs, &p.Tags, &expiresAt, &createdAt) {
			break
		}
		p.ExpiresAt = expiresAt
		p.CreatedAt = createdAt
		out = append(out, p)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// AddProductImage appends an uploaded image URL to the deal, drops the
// cached copy so the next read sees it, and pushes the fresh deal into the
// search index.
func (s *Store) AddProductImage(ctx context.Context, id gocql.UUID, url string) error {
	err := s.session.Query(`UPDATE products SET image_urls = image_urls + ? WHERE product_id = ?`,
		[]string{url}, id).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("attach image: %w", err)
	}
	s.InvalidateProduct(ctx, id)

	if s.search.Enabled() {
		if p, err := s.fetchProduct(ctx, id); err == nil {
			s.search.IndexProduct(ctx, *p)
		} else {
			log.Printf("⚠️ Reindex after image upload skipped for %s: %v", id, err)
		}
	}
	return nil
}

// InvalidateProduct drops the cached copy after a catalog update.
func (s *Store) InvalidateProduct(ctx context.Context, id gocql.UUID) {
	if s.redis != nil {
		s.redis.Del(ctx, "product:"+id.String())
	}
}
