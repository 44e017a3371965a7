package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog"
)

// Publisher is the part of *sns.Client the alerter needs.
type Publisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSAlerter publishes operator alerts to an SNS topic. Every alert is
// also logged at error level.
type SNSAlerter struct {
	publisher Publisher
	topicARN  string
	log       zerolog.Logger
}

// NewSNSClient loads the default AWS credential chain for region.
func NewSNSClient(ctx context.Context, region string) (*sns.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return sns.NewFromConfig(cfg), nil
}

func NewSNSAlerter(publisher Publisher, topicARN string, log zerolog.Logger) *SNSAlerter {
	return &SNSAlerter{
		publisher: publisher,
		topicARN:  topicARN,
		log:       log.With().Str("component", "sns_alerter").Logger(),
	}
}

func (a *SNSAlerter) Alert(ctx context.Context, subject, message string) error {
	a.log.Error().Str("subject", subject).Msg(message)

	out, err := a.publisher.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(a.topicARN),
		Subject:  aws.String(truncateSubject(subject)),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("publishing alert: %w", err)
	}
	a.log.Info().Str("message_id", aws.ToString(out.MessageId)).Msg("alert published")
	return nil
}

// SNS rejects subjects longer than 100 characters.
func truncateSubject(s string) string {
	if len(s) <= 100 {
		return s
	}
	return s[:97] + "..."
}

// LogAlerter only logs. It is used when no SNS topic is configured.
type LogAlerter struct {
	log zerolog.Logger
}

func NewLogAlerter(log zerolog.Logger) *LogAlerter {
	return &LogAlerter{log: log.With().Str("component", "alerter").Logger()}
}

func (a *LogAlerter) Alert(_ context.Context, subject, message string) error {
	a.log.Error().Str("subject", subject).Bool("operator_alert", true).Msg(message)
	return nil
}
