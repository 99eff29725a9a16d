//go:build integration
// +build integration

package tests

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"taskboard/pkg/translator"
)

const (
	translationFolder = "../../../../pkg/translator/translation"
	setupTimeout      = 5 * time.Second
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

type IntegrationSuiteBase struct {
	suite.Suite

	client     *mongo.Client
	Collection *mongo.Collection
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	uri := envOrDefault("MONGO_TEST_URI", envOrDefault("MONGO_URI", "mongodb://127.0.0.1:27017"))
	database := envOrDefault("MONGO_TEST_DATABASE", envOrDefault("MONGO_DATABASE", "taskboard")+"_test")
	collection := envOrDefault("MONGO_COLLECTION", "task_management")

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mongodb: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		s.T().Skipf("skipping integration suite: mongodb not reachable: %v", err)
	}

	s.client = client
	s.testDBName = database
	s.Collection = client.Database(database).Collection(collection)
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.client == nil {
		return
	}

	// Drop the test database to keep local environments clean after runs.
	if s.testDBName != "" && strings.HasSuffix(s.testDBName, "_test") {
		s.Require().NoError(s.client.Database(s.testDBName).Drop(context.Background()))
	}

	s.Require().NoError(s.client.Disconnect(context.Background()))
}

func (s *IntegrationSuiteBase) ResetCollection() {
	_, err := s.Collection.DeleteMany(context.Background(), bson.D{})
	s.Require().NoError(err)
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
