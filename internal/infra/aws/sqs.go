package aws

import (
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"weather-dashboard/pkg/resource"
)

func NewSqsClient() *sqs.Client {
	return sqs.NewFromConfig(Config, func(o *sqs.Options) {
		// LocalStack endpoint override
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			o.BaseEndpoint = &endpoint
		}
	})
}
