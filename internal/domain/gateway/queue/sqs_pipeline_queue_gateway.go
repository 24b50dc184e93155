package queue

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"weather-dashboard/internal/domain/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

const queueAttributeTimeout = 5 * time.Second

// SqsPipelineQueueGateway reads the depth of the ETL ingest queue. The
// dashboard never consumes or sends messages; the queue is observed only to
// surface pipeline backlog on the status panel.
type SqsPipelineQueueGateway struct {
	client    *sqs.Client
	queueName string

	mutex    sync.Mutex
	queueURL string
}

var _ PipelineQueueGateway = (*SqsPipelineQueueGateway)(nil)

func NewSqsPipelineQueueGateway(client *sqs.Client, queueName string) *SqsPipelineQueueGateway {
	return &SqsPipelineQueueGateway{
		client:    client,
		queueName: queueName,
	}
}

func (gateway *SqsPipelineQueueGateway) QueueDepth(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queueAttributeTimeout)
	defer cancel()

	queueURL, err := gateway.resolveQueueURL(ctx)
	if err != nil {
		return 0, err
	}

	output, err := gateway.client.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl: aws.String(queueURL),
		AttributeNames: []types.QueueAttributeName{
			types.QueueAttributeNameApproximateNumberOfMessages,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to read attributes of queue %s: %w", gateway.queueName, err)
	}

	raw, ok := output.Attributes[string(types.QueueAttributeNameApproximateNumberOfMessages)]
	if !ok {
		return 0, fmt.Errorf("queue %s did not report its message count", gateway.queueName)
	}

	depth, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("queue %s reported an invalid message count %q: %w", gateway.queueName, raw, err)
	}

	return depth, nil
}

func (gateway *SqsPipelineQueueGateway) Health() model.ComponentHealthStatus {
	depth, err := gateway.QueueDepth(context.Background())
	if err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"queue":   gateway.queueName,
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"queue":           gateway.queueName,
			"message":         string(model.StatusUp),
			"queued_messages": strconv.FormatInt(depth, 10),
		},
	}
}

// resolveQueueURL looks the queue URL up once and reuses it afterwards.
func (gateway *SqsPipelineQueueGateway) resolveQueueURL(ctx context.Context) (string, error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	if gateway.queueURL != "" {
		return gateway.queueURL, nil
	}

	output, err := gateway.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(gateway.queueName),
	})
	if err != nil {
		return "", fmt.Errorf("failed to resolve URL of queue %s: %w", gateway.queueName, err)
	}

	gateway.queueURL = aws.ToString(output.QueueUrl)
	return gateway.queueURL, nil
}
