package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/holamundo/registry-api/internal/core/domain"
	"github.com/holamundo/registry-api/internal/core/ports"
)

const collectionForms = "forms"

type FormRepository struct {
	col *mongo.Collection
}

func NewFormRepository(db *mongo.Database) *FormRepository {
	return &FormRepository{col: db.Collection(collectionForms)}
}

func formFilter(category string) bson.M {
	if category == "" {
		return bson.M{}
	}
	return bson.M{"category": bson.M{"$regex": equalFold(category)}}
}

func (r *FormRepository) Create(ctx context.Context, f *domain.Form) (*domain.Form, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, f); err != nil {
		return nil, fmt.Errorf("insert form: %w", err)
	}
	return f.Clone(), nil
}

func (r *FormRepository) GetByID(ctx context.Context, id string) (*domain.Form, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.Form
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFormNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *FormRepository) List(ctx context.Context, filter ports.FormFilter) ([]*domain.Form, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, formFilter(filter.Category), pageOptions("created_at", filter.Page, filter.PageSize))
	if err != nil {
		return nil, fmt.Errorf("find forms: %w", err)
	}
	forms := []*domain.Form{}
	if err := cur.All(ctx, &forms); err != nil {
		return nil, fmt.Errorf("decode forms: %w", err)
	}
	return forms, nil
}

func (r *FormRepository) Count(ctx context.Context, filter ports.FormFilter) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, formFilter(filter.Category))
	if err != nil {
		return 0, fmt.Errorf("count forms: %w", err)
	}
	return int(n), nil
}

func (r *FormRepository) Update(ctx context.Context, f *domain.Form) (*domain.Form, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": f.ID}, f)
	if err != nil {
		return nil, fmt.Errorf("replace form: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrFormNotFound
	}
	return f.Clone(), nil
}

func (r *FormRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete form: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *FormRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	})
	return err
}
