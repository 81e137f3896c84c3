// The rejectionmailer Lambda drains the dead-letter queue and emails a
// rejection notice for every message that exhausted its delivery attempts.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"

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
		slog.Warn("notification addresses not configured; rejection emails will be dropped")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("load AWS config: %v", err)
	}

	notifier := notify.NewSESNotifier(ses.NewFromConfig(awsCfg, func(o *ses.Options) {
		o.Region = cfg.SESRegion
	}), cfg.SESEmailFrom, cfg.SESEmailTo)

	lambda.Start(consumer.NewEscalation(notifier).Handle)
}
