package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodbridge/foodbridge/internal/models"
)

// newestFirst sorts listings by creation time, most recent at the top.
var newestFirst = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

// MongoUsers implements Users on the users collection.
type MongoUsers struct {
	coll *mongo.Collection
}

func NewMongoUsers(db *mongo.Database) *MongoUsers {
	return &MongoUsers{coll: db.Collection("users")}
}

func (s *MongoUsers) Insert(ctx context.Context, u *models.User) error {
	_, err := s.coll.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *MongoUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoUsers) FindByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	out := make(map[string]models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	return out, cur.Err()
}

func (s *MongoUsers) UpdateByID(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.ProfileImage != nil {
		set["profile_image"] = *patch.ProfileImage
	}
	if len(set) == 0 {
		return s.FindByID(ctx, id)
	}

	var u models.User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// MongoDonations implements Donations on the donations collection.
type MongoDonations struct {
	coll *mongo.Collection
}

func NewMongoDonations(db *mongo.Database) *MongoDonations {
	return &MongoDonations{coll: db.Collection("donations")}
}

func (s *MongoDonations) Insert(ctx context.Context, d *models.Donation) error {
	_, err := s.coll.InsertOne(ctx, d)
	return err
}

func (s *MongoDonations) FindByID(ctx context.Context, id string) (*models.Donation, error) {
	var d models.Donation
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *MongoDonations) ListByStatus(ctx context.Context, status string) ([]models.Donation, error) {
	return s.list(ctx, bson.M{"status": status})
}

func (s *MongoDonations) ListByDonor(ctx context.Context, donorID string) ([]models.Donation, error) {
	return s.list(ctx, bson.M{"donor_id": donorID})
}

func (s *MongoDonations) list(ctx context.Context, filter bson.M) ([]models.Donation, error) {
	cur, err := s.coll.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Donation{}
	for cur.Next(ctx) {
		var d models.Donation
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, cur.Err()
}

func (s *MongoDonations) UpdateByID(ctx context.Context, id string, patch models.DonationPatch) (*models.Donation, error) {
	set := bson.M{}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if len(set) == 0 {
		return s.FindByID(ctx, id)
	}

	var d models.Donation
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *MongoDonations) DeleteByID(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MongoContacts implements Contacts on the contact_messages collection.
type MongoContacts struct {
	coll *mongo.Collection
}

func NewMongoContacts(db *mongo.Database) *MongoContacts {
	return &MongoContacts{coll: db.Collection("contact_messages")}
}

func (s *MongoContacts) Insert(ctx context.Context, m *models.ContactMessage) error {
	_, err := s.coll.InsertOne(ctx, m)
	return err
}
