package nats

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagerec/internal/domain"
)

func TestSubject(t *testing.T) {
	p := NewPublisher(nil, "")
	assert.Equal(t, "recordings.started", p.Subject(domain.EventStarted))

	p = NewPublisher(nil, "ops.rec")
	assert.Equal(t, "ops.rec.deleted", p.Subject(domain.EventDeleted))
}

func TestClose_NilConn(t *testing.T) {
	p := NewPublisher(nil, "recordings")
	assert.NotPanics(t, p.Close)
}

// Runs against a live server when NATS_TEST_URL is set.
func TestPublish_RoundTrip(t *testing.T) {
	url := os.Getenv("NATS_TEST_URL")
	if url == "" {
		t.Skip("NATS_TEST_URL not set")
	}

	pub, err := Connect(url, "pagerec-test")
	require.NoError(t, err)
	defer pub.Close()

	sub, err := nats.Connect(url)
	require.NoError(t, err)
	defer sub.Close()

	msgs := make(chan *nats.Msg, 1)
	s, err := sub.ChanSubscribe("pagerec-test.*", msgs)
	require.NoError(t, err)
	defer func() { _ = s.Unsubscribe() }()
	require.NoError(t, sub.Flush())

	rec := domain.NewRecording(9, "http://example.com", "/tmp/9.mp4")
	require.NoError(t, pub.Publish(domain.NewEvent(domain.EventStarted, rec)))

	select {
	case msg := <-msgs:
		assert.Equal(t, "pagerec-test.started", msg.Subject)
		var got domain.Event
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, int64(9), got.RecordingID)
		assert.Equal(t, domain.StatusRecording, got.Status)
	case <-time.After(5 * time.Second):
		t.Fatal("no message received")
	}
}
