package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/finance-visualizer/backend/internal/models"
	"github.com/finance-visualizer/backend/internal/validate"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoConfig configures the connection of the Mongo store.
type MongoConfig struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

// Mongo stores transactions as documents in a single MongoDB collection.
//
// The connection is established on first use and reused afterwards.
// When it cannot be established, the next operation tries again.
type Mongo struct {
	config MongoConfig

	mu         sync.Mutex
	client     *mongo.Client
	collection *mongo.Collection
}

var _ Store = &Mongo{}

// NewMongo returns a Mongo store. It does not connect yet.
func NewMongo(config MongoConfig) *Mongo {
	if config.ConnectTimeout <= 0 {
		config.ConnectTimeout = 5 * time.Second
	}

	return &Mongo{config: config}
}

// document is the representation of a transaction in MongoDB.
type document struct {
	ID          string          `bson:"_id"`
	Amount      bson.Decimal128 `bson:"amount"`
	Description string          `bson:"description"`
	Category    string          `bson:"category"`
	Date        time.Time       `bson:"date"`
	CreatedAt   time.Time       `bson:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt"`
}

func toDocument(t models.Transaction) (document, error) {
	amount, err := bson.ParseDecimal128(t.Amount.String())
	if err != nil {
		return document{}, fmt.Errorf("amount %s cannot be stored: %w", t.Amount, err)
	}

	return document{
		ID:          t.ID.String(),
		Amount:      amount,
		Description: t.Description,
		Category:    string(t.Category),
		Date:        t.Date.In(time.UTC).Truncate(time.Millisecond),
		CreatedAt:   t.CreatedAt.In(time.UTC).Truncate(time.Millisecond),
		UpdatedAt:   t.UpdatedAt.In(time.UTC).Truncate(time.Millisecond),
	}, nil
}

func (d document) model() (models.Transaction, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("document has invalid ID %q: %w", d.ID, err)
	}

	amount, err := decimal.NewFromString(d.Amount.String())
	if err != nil {
		return models.Transaction{}, fmt.Errorf("document %s has invalid amount %s: %w", d.ID, d.Amount, err)
	}

	return models.Transaction{
		DefaultModel: models.DefaultModel{
			ID: id,
			Timestamps: models.Timestamps{
				CreatedAt: d.CreatedAt.In(time.UTC),
				UpdatedAt: d.UpdatedAt.In(time.UTC),
			},
		},
		Amount:      amount,
		Description: d.Description,
		Category:    models.Category(d.Category),
		Date:        d.Date.In(time.UTC),
	}, nil
}

func byID(id uuid.UUID) bson.D {
	return bson.D{{Key: "_id", Value: id.String()}}
}

// coll returns the collection, connecting to the server if necessary.
func (s *Mongo) coll(ctx context.Context) (*mongo.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collection != nil {
		return s.collection, nil
	}

	client, err := mongo.Connect(options.Client().
		ApplyURI(s.config.URI).
		SetConnectTimeout(s.config.ConnectTimeout).
		SetServerSelectionTimeout(s.config.ConnectTimeout))
	if err != nil {
		return nil, unavailable(fmt.Errorf("failed to connect to mongodb: %w", err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.config.ConnectTimeout)
	defer cancel()

	err = client.Ping(pingCtx, readpref.Primary())
	if err != nil {
		_ = client.Disconnect(context.Background())
		log.Error().Err(err).Str("database", s.config.Database).Msg("mongodb is not reachable")
		return nil, unavailable(fmt.Errorf("failed to reach mongodb: %w", err))
	}

	log.Debug().Str("database", s.config.Database).Str("collection", s.config.Collection).Msg("connected to mongodb")

	s.client = client
	s.collection = client.Database(s.config.Database).Collection(s.config.Collection)
	return s.collection, nil
}

func (s *Mongo) List(ctx context.Context) ([]models.Transaction, error) {
	c, err := s.coll(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})
	cursor, err := c.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, unavailable(err)
	}

	var docs []document
	err = cursor.All(ctx, &docs)
	if err != nil {
		return nil, unavailable(err)
	}

	transactions := make([]models.Transaction, 0, len(docs))
	for _, d := range docs {
		t, err := d.model()
		if err != nil {
			return nil, unavailable(err)
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}

func (s *Mongo) Get(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	c, err := s.coll(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	var d document
	err = c.FindOne(ctx, byID(id)).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Transaction{}, errNotFound()
	} else if err != nil {
		return models.Transaction{}, unavailable(err)
	}

	t, err := d.model()
	return t, unavailable(err)
}

func (s *Mongo) Create(ctx context.Context, t validate.Transaction) (models.Transaction, error) {
	c, err := s.coll(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	now := time.Now().In(time.UTC)
	transaction := t.Model()
	transaction.ID = uuid.New()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	d, err := toDocument(transaction)
	if err != nil {
		return models.Transaction{}, unavailable(err)
	}

	_, err = c.InsertOne(ctx, d)
	if err != nil {
		return models.Transaction{}, unavailable(err)
	}

	// BSON datetimes only have millisecond precision
	return d.model()
}

func (s *Mongo) Update(ctx context.Context, id uuid.UUID, t validate.Transaction) (models.Transaction, error) {
	c, err := s.coll(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	amount, err := bson.ParseDecimal128(t.Amount.String())
	if err != nil {
		return models.Transaction{}, unavailable(err)
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "amount", Value: amount},
		{Key: "description", Value: t.Description},
		{Key: "category", Value: string(t.Category)},
		{Key: "date", Value: t.Date.In(time.UTC).Truncate(time.Millisecond)},
		{Key: "updatedAt", Value: time.Now().In(time.UTC)},
	}}}

	var d document
	err = c.FindOneAndUpdate(ctx, byID(id), update, options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Transaction{}, errNotFound()
	} else if err != nil {
		return models.Transaction{}, unavailable(err)
	}

	updated, err := d.model()
	return updated, unavailable(err)
}

func (s *Mongo) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := s.coll(ctx)
	if err != nil {
		return err
	}

	result, err := c.DeleteOne(ctx, byID(id))
	if err != nil {
		return unavailable(err)
	}

	if result.DeletedCount == 0 {
		return errNotFound()
	}

	return nil
}

func (s *Mongo) Ping(ctx context.Context) error {
	c, err := s.coll(ctx)
	if err != nil {
		return err
	}

	return unavailable(c.Database().Client().Ping(ctx, readpref.Primary()))
}

// Close disconnects from the server if a connection has been established.
func (s *Mongo) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ConnectTimeout)
	defer cancel()

	err := s.client.Disconnect(ctx)
	s.client = nil
	s.collection = nil

	return err
}
