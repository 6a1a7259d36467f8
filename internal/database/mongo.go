package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectMongo opens the document store holding salesman and tracking data.
func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}

func EnsureTrackingIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("tracking_logs").Indexes()

	salesmanTypeIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "salesmanId", Value: 1},
			{Key: "type", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("salesman_type_createdAt"),
	}

	log.Println("EnsureTrackingIndexes: creating salesman_type_createdAt index")
	_, err := indexes.CreateOne(ctx, salesmanTypeIndex)
	if err != nil {
		log.Println("EnsureTrackingIndexes: tracking index error:", err)
		return err
	}
	log.Println("EnsureTrackingIndexes: salesman_type_createdAt index created")
	return nil
}

func EnsureSalesmanIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("salesmen").Indexes()

	userIDIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("userId_unique").SetUnique(true),
	}

	log.Println("EnsureSalesmanIndexes: creating userId_unique index")
	_, err := indexes.CreateOne(ctx, userIDIndex)
	if err != nil {
		log.Println("EnsureSalesmanIndexes: userId index error:", err)
		return err
	}
	log.Println("EnsureSalesmanIndexes: userId_unique index created")
	return nil
}
