package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"direct-transport-es/internal/apperr"
	"direct-transport-es/internal/domain"
)

// Collection names.
const (
	UsersCollection    = "transportuser"
	RequestsCollection = "transportrequest"
	LeadsCollection    = "lead"
)

// Store is the MongoDB implementation of the lifecycle store.
type Store struct {
	db       *mongo.Database
	users    *mongo.Collection
	requests *mongo.Collection
	leads    *mongo.Collection
	info     domain.StoreInfo
}

// New creates a Store over db. info is reported by diagnostics as is.
func New(db *mongo.Database, info domain.StoreInfo) *Store {
	info.Driver = "mongo"
	info.Configured = true
	return &Store{
		db:       db,
		users:    db.Collection(UsersCollection),
		requests: db.Collection(RequestsCollection),
		leads:    db.Collection(LeadsCollection),
		info:     info,
	}
}

// InsertUser stores u and returns its hex ObjectID.
func (s *Store) InsertUser(ctx context.Context, u *domain.User) (string, error) {
	doc := newUserDoc(u)
	doc.ID = primitive.NewObjectID()
	if _, err := s.users.InsertOne(ctx, doc); err != nil {
		return "", wrap("insert user", err)
	}
	return doc.ID.Hex(), nil
}

// FindCarriers returns carriers matching f in insertion order.
func (s *Store) FindCarriers(ctx context.Context, f domain.CarrierFilter, limit int) ([]domain.User, error) {
	filter := bson.M{"role": string(domain.RoleCarrier)}
	if f.Province != "" {
		filter["province"] = f.Province
	}
	if f.VehicleType != "" {
		filter["vehicle_types"] = f.VehicleType
	}

	cur, err := s.users.Find(ctx, filter, findOpts(limit))
	if err != nil {
		return nil, wrap("find carriers", err)
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, wrap("decode carriers", err)
	}
	out := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// InsertRequest stores r and returns its hex ObjectID.
func (s *Store) InsertRequest(ctx context.Context, r *domain.TransportRequest) (string, error) {
	doc := newRequestDoc(r)
	doc.ID = primitive.NewObjectID()
	if _, err := s.requests.InsertOne(ctx, doc); err != nil {
		return "", wrap("insert request", err)
	}
	return doc.ID.Hex(), nil
}

// FindRequests returns requests matching f in insertion order.
func (s *Store) FindRequests(ctx context.Context, f domain.RequestFilter, limit int) ([]domain.TransportRequest, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	if f.City != "" {
		filter["$or"] = bson.A{
			bson.M{"pickup_city": f.City},
			bson.M{"dropoff_city": f.City},
		}
	}

	cur, err := s.requests.Find(ctx, filter, findOpts(limit))
	if err != nil {
		return nil, wrap("find requests", err)
	}
	defer cur.Close(ctx)

	var docs []requestDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, wrap("decode requests", err)
	}
	out := make([]domain.TransportRequest, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// PatchRequestStatus sets the supplied fields and stamps updated_at with the server clock.
func (s *Store) PatchRequestStatus(ctx context.Context, id string, upd domain.StatusUpdate) (*domain.TransportRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("request id %q: %w", id, apperr.ErrInvalidArgument)
	}

	set := bson.M{"status": string(upd.Status)}
	if upd.LastLocation != nil {
		set["last_location"] = *upd.LastLocation
	}
	if upd.UpdatedBy != nil {
		set["updated_by"] = *upd.UpdatedBy
	}
	if upd.Timestamp != nil {
		set["timestamp"] = *upd.Timestamp
	}
	update := bson.M{
		"$set":         set,
		"$currentDate": bson.M{"updated_at": true},
	}

	var doc requestDoc
	err = s.requests.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrap("update request "+id, err)
	}
	r := doc.toDomain()
	return &r, nil
}

// InsertLead stores b in the lead collection and returns its hex ObjectID.
func (s *Store) InsertLead(ctx context.Context, b *domain.BookingIntent) (string, error) {
	doc := newLeadDoc(b)
	doc.ID = primitive.NewObjectID()
	if _, err := s.leads.InsertOne(ctx, doc); err != nil {
		return "", wrap("insert lead", err)
	}
	return doc.ID.Hex(), nil
}

// Info describes the store for diagnostics.
func (s *Store) Info() domain.StoreInfo { return s.info }

// CollectionNames lists the collections of the database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, wrap("list collections", err)
	}
	return names, nil
}

func findOpts(limit int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit))
}

func wrap(op string, err error) error {
	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, apperr.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUnavailable(err error) bool {
	return mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded)
}
