package metrics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu     sync.Mutex
	inputs []*cloudwatch.PutMetricDataInput
	done   chan struct{}
}

func newFakePublisher(expected int) *fakePublisher {
	return &fakePublisher{done: make(chan struct{}, expected)}
}

func (f *fakePublisher) PutMetricData(_ context.Context, params *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	f.mu.Lock()
	f.inputs = append(f.inputs, params)
	f.mu.Unlock()
	f.done <- struct{}{}
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func (f *fakePublisher) wait(t *testing.T, n int) []string {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-f.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for metric %d of %d", i+1, n)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.inputs))
	for _, in := range f.inputs {
		require.Len(t, in.MetricData, 1)
		names = append(names, aws.ToString(in.MetricData[0].MetricName))
	}
	return names
}

func TestNewClientDisabled(t *testing.T) {
	client, err := NewClient(context.Background(), Options{Environment: "development"})
	require.NoError(t, err)
	assert.False(t, client.Enabled())

	client, err = NewClient(context.Background(), Options{Environment: "production", Enabled: false})
	require.NoError(t, err)
	assert.False(t, client.Enabled())
	assert.Equal(t, DefaultNamespace, client.namespace)

	// No-ops must not panic
	client.RecordAPIRequest("/health", 200, time.Millisecond)
	client.RecordChordOperation("normalize", 3)
}

func TestNilClientIsDisabled(t *testing.T) {
	var client *Client
	assert.False(t, client.Enabled())
	client.RecordChordOperation("normalize", 1)
}

func TestRecordAPIRequest(t *testing.T) {
	pub := newFakePublisher(2)
	client := NewClientWithPublisher(pub, "production", "Songbook/Test")
	require.True(t, client.Enabled())

	client.RecordAPIRequest("/api/v1/chords/normalize", 200, 5*time.Millisecond)
	names := pub.wait(t, 2)
	assert.ElementsMatch(t, []string{"APIRequests", "APILatency"}, names)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	for _, in := range pub.inputs {
		assert.Equal(t, "Songbook/Test", aws.ToString(in.Namespace))
	}
}

func TestRecordAPIRequestServerError(t *testing.T) {
	pub := newFakePublisher(2)
	client := NewClientWithPublisher(pub, "production", "")

	client.RecordAPIRequest("/api/v1/chords/normalize", 500, time.Millisecond)
	assert.Contains(t, pub.wait(t, 2), "APIErrors")
}

func TestRecordChordOperation(t *testing.T) {
	pub := newFakePublisher(2)
	client := NewClientWithPublisher(pub, "production", "")

	client.RecordChordOperation("transpose", 4)
	assert.ElementsMatch(t, []string{"ChordOperations", "ChordsProcessed"}, pub.wait(t, 2))
}

func TestSentryMetricsWithoutClient(t *testing.T) {
	m := NewSentryMetrics()
	assert.NotPanics(t, func() {
		m.RecordAPIRequest(context.Background(), "/health", 200, time.Millisecond)
		m.RecordAPIRequest(context.Background(), "/health", 404, time.Millisecond)
		m.RecordChordOperation(context.Background(), "suggest", 7, time.Millisecond)
		m.RecordCacheStats(1, 2, 3)
	})
}
