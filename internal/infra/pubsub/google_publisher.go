package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"mirathi/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishFamilyFact publishes a committed family fact to Google Pub/Sub
func (p *googlePubSubPublisher) PublishFamilyFact(ctx context.Context, fact *service.FamilyFact) error {
	data, err := json.Marshal(fact)
	if err != nil {
		return errors.WithStack(err)
	}

	// Attributes let audit consumers filter by family without decoding
	attributes := map[string]string{
		"family_id": fact.FamilyID.String(),
		"fact":      fact.Name,
	}
	if fact.RequestID != "" {
		attributes["request_id"] = fact.RequestID
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}

	p.logger.Debug("[GooglePubSub] Publishing fact",
		slog.String("family_id", fact.FamilyID.String()),
		slog.String("fact", fact.Name),
	)

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Fact published successfully",
		slog.String("family_id", fact.FamilyID.String()),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases the Pub/Sub client
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return p.client.Close()
}
