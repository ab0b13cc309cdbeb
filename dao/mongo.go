package dao

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/returnslabs/returns-analytics-api/config"
	"github.com/returnslabs/returns-analytics-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// assume the caller of this func cannot handle the case where there is no
	// database connection so the prog must crash here as the service cannot continue
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// check we can connect to the mongodb instance. failure here should result in a crash
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as the backend driver.
type MongoService struct {
	db             MongoDatabaseInterface
	CollectionName string
}

// NewDAO returns an implementation of the DAO interface backed by MongoDB
func NewDAO(cfg *config.Config) *MongoService {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:             database,
		CollectionName: cfg.Collection,
	}
}

// CreatePaymentReturn writes a new payment return event to the DB
func (m *MongoService) CreatePaymentReturn(paymentReturn *models.PaymentReturnDB) error {
	collection := m.db.Collection(m.CollectionName)
	_, err := collection.InsertOne(context.Background(), paymentReturn)

	return err
}

// GetPaymentReturns fetches every payment return event from the DB. All
// aggregation is computed in application memory over this full result set.
func (m *MongoService) GetPaymentReturns() ([]models.PaymentReturnDB, error) {
	var paymentReturns []models.PaymentReturnDB

	collection := m.db.Collection(m.CollectionName)
	cursor, err := collection.Find(context.Background(), bson.D{})
	if err != nil {
		return nil, err
	}

	if err = cursor.All(context.Background(), &paymentReturns); err != nil {
		return nil, err
	}

	return paymentReturns, nil
}

// Ping checks the connection to the mongodb instance
func (m *MongoService) Ping() error {
	if client == nil {
		return errors.New("mongodb client not initialised")
	}

	pingContext, cancel := context.WithDeadline(context.Background(), time.Now().Add(5*time.Second))
	defer cancel()

	return client.Ping(pingContext, nil)
}

// Shutdown closes the connection to the mongodb instance
func (m *MongoService) Shutdown() {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		log.Error(err)
		return
	}

	log.Info("disconnected from mongodb")
}
