// The updatemetadata Lambda subscribes to the image topic and patches
// photographer-supplied metadata fields onto catalog records.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/GjorgiG/ds-assignment2/internal/catalog"
	"github.com/GjorgiG/ds-assignment2/internal/config"
	"github.com/GjorgiG/ds-assignment2/internal/consumer"
	"github.com/GjorgiG/ds-assignment2/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Init(cfg.Environment)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("load AWS config: %v", err)
	}

	store := catalog.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.ImagesTableName)

	lambda.Start(consumer.NewMetadata(store).Handle)
}
