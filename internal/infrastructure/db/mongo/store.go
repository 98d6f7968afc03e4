package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/placementiq/placement-api/internal/core/domain"
)

// store implements the CRUD plumbing shared by the entity repositories. D is
// the BSON document shape and E the domain type it maps to.
type store[D any, E any] struct {
	col      *mongo.Collection
	name     string
	notFound error
	toDoc    func(*E) D
	toEntity func(*D) (*E, error)
}

func (s *store[D, E]) insert(ctx context.Context, e *E) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.col.InsertOne(ctx, s.toDoc(e)); err != nil {
		return fmt.Errorf("insert %s: %w", s.name, err)
	}
	return nil
}

func (s *store[D, E]) insertMany(ctx context.Context, items []*E) error {
	if len(items) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(items))
	for _, e := range items {
		docs = append(docs, s.toDoc(e))
	}
	if _, err := s.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert %s batch: %w", s.name, err)
	}
	return nil
}

func (s *store[D, E]) findByID(ctx context.Context, id string) (*E, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc D
	if err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, s.notFound
		}
		return nil, fmt.Errorf("find %s: %w", s.name, err)
	}
	return s.toEntity(&doc)
}

// list returns a window of the collection in insertion order. ObjectIDs grow
// monotonically per process, which is close enough to insertion order here.
func (s *store[D, E]) list(ctx context.Context, opts domain.ListOptions) ([]*E, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts = opts.Normalize()
	findOpts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(opts.Offset)).
		SetLimit(int64(opts.Limit))

	cur, err := s.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	defer cur.Close(ctx)

	out := make([]*E, 0)
	for cur.Next(ctx) {
		var doc D
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.name, err)
		}
		e, err := s.toEntity(&doc)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	return out, nil
}

// update applies set to the document with the given id and returns the
// document as stored afterwards.
func (s *store[D, E]) update(ctx context.Context, id string, set bson.M) (*E, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc D
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, s.notFound
		}
		return nil, fmt.Errorf("update %s: %w", s.name, err)
	}
	return s.toEntity(&doc)
}

func (s *store[D, E]) delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.name, err)
	}
	if res.DeletedCount == 0 {
		return s.notFound
	}
	return nil
}

func (s *store[D, E]) count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", s.name, err)
	}
	return n, nil
}

// Timestamps are stored as RFC 3339 strings so documents written by other
// clients of the same database stay readable.

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime accepts RFC 3339 with or without an offset. An empty value maps
// to the zero time.
func parseTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02T15:04:05.999999999", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created_at %q: %w", v, err)
	}
	return t.UTC(), nil
}
