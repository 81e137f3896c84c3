// The processimage Lambda consumes object-lifecycle events from the upload
// queue, admitting or rejecting uploads and maintaining the image catalog.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"

	"github.com/GjorgiG/ds-assignment2/internal/catalog"
	"github.com/GjorgiG/ds-assignment2/internal/config"
	"github.com/GjorgiG/ds-assignment2/internal/consumer"
	"github.com/GjorgiG/ds-assignment2/internal/logger"
	"github.com/GjorgiG/ds-assignment2/internal/notify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Init(cfg.Environment)

	if !cfg.MailConfigured() {
		slog.Warn("notification addresses not configured; rejection notices will be dropped")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("load AWS config: %v", err)
	}

	store := catalog.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.ImagesTableName)
	notifier := notify.NewSESNotifier(ses.NewFromConfig(awsCfg, func(o *ses.Options) {
		o.Region = cfg.SESRegion
	}), cfg.SESEmailFrom, cfg.SESEmailTo)

	var header consumer.ObjectHeader
	if cfg.ValidateContentType {
		header = s3.NewFromConfig(awsCfg)
	}

	lambda.Start(consumer.NewAdmission(store, notifier, header).Handle)
}
