package metrics

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	// DefaultNamespace is used when no namespace is configured
	DefaultNamespace         = "Songbook/API"
	httpStatusServerError    = 500
	cloudwatchTimeoutSeconds = 5
)

// Publisher is the subset of the CloudWatch API the client needs
type Publisher interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Client wraps CloudWatch client for custom metrics
type Client struct {
	client      Publisher
	enabled     bool
	environment string
	namespace   string
}

// Options configures NewClient
type Options struct {
	Environment string
	Namespace   string
	// Enabled is the resolved on/off switch (see config.MetricsEnabled)
	Enabled bool
}

// NewClient creates a new CloudWatch metrics client. A disabled client is
// returned, never an error, when metrics are off or AWS config cannot load.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	namespace := opts.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	disabled := &Client{enabled: false, environment: opts.Environment, namespace: namespace}

	if !opts.Enabled {
		log.Printf("📊 CloudWatch Metrics: DISABLED (environment: %s, enabled: %t)", opts.Environment, opts.Enabled)
		return disabled, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to load AWS config for CloudWatch: %v", err)
		return disabled, nil
	}

	log.Printf("📊 CloudWatch Metrics: ✅ ENABLED (namespace: %s)", namespace)
	return NewClientWithPublisher(cloudwatch.NewFromConfig(cfg), opts.Environment, namespace), nil
}

// NewClientWithPublisher builds an enabled client around an existing publisher
func NewClientWithPublisher(publisher Publisher, environment, namespace string) *Client {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Client{
		client:      publisher,
		enabled:     publisher != nil,
		environment: environment,
		namespace:   namespace,
	}
}

// Enabled reports whether metrics are being published
func (m *Client) Enabled() bool {
	return m != nil && m.enabled
}

// RecordAPIRequest records an API request metric
func (m *Client) RecordAPIRequest(endpoint string, statusCode int, duration time.Duration) {
	if !m.Enabled() {
		return
	}

	go func() {
		ctx := context.Background()
		// Determine if success or error
		metricName := "APIRequests"
		if statusCode >= httpStatusServerError {
			metricName = "APIErrors"
		}

		dimensions := []types.Dimension{
			{
				Name:  aws.String("Endpoint"),
				Value: aws.String(endpoint),
			},
			{
				Name:  aws.String("Environment"),
				Value: aws.String(m.environment),
			},
		}

		// Record count
		if err := m.putMetric(ctx, metricName, 1, types.StandardUnitCount, dimensions); err != nil {
			log.Printf("Failed to record %s metric: %v", metricName, err)
		}

		// Record duration
		latencyMs := float64(duration.Milliseconds())
		if err := m.putMetric(ctx, "APILatency", latencyMs, types.StandardUnitMilliseconds, dimensions); err != nil {
			log.Printf("Failed to record APILatency metric: %v", err)
		}
	}()
}

// RecordChordOperation records how many chords one engine operation processed
func (m *Client) RecordChordOperation(operation string, items int) {
	if !m.Enabled() {
		return
	}

	go func() {
		ctx := context.Background()
		dimensions := []types.Dimension{
			{
				Name:  aws.String("Operation"),
				Value: aws.String(operation),
			},
			{
				Name:  aws.String("Environment"),
				Value: aws.String(m.environment),
			},
		}

		if err := m.putMetric(ctx, "ChordOperations", 1, types.StandardUnitCount, dimensions); err != nil {
			log.Printf("Failed to record ChordOperations metric: %v", err)
		}

		if items > 0 {
			if err := m.putMetric(ctx, "ChordsProcessed", float64(items), types.StandardUnitCount, dimensions); err != nil {
				log.Printf("Failed to record ChordsProcessed metric: %v", err)
			}
		}
	}()
}

// putMetric sends a metric to CloudWatch
func (m *Client) putMetric(
	_ context.Context,
	metricName string,
	value float64,
	unit types.StandardUnit,
	dimensions []types.Dimension,
) error {
	if !m.enabled || m.client == nil {
		return nil
	}

	// Create context with timeout for CloudWatch call
	timeout := time.Duration(cloudwatchTimeoutSeconds) * time.Second
	cwCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, err := m.client.PutMetricData(cwCtx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Value:      aws.Float64(value),
				Unit:       unit,
				Timestamp:  aws.Time(time.Now()),
				Dimensions: dimensions,
			},
		},
	})

	return err
}
