package kafkaconsumer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"pizzadelivery/internal/core/application/usecases/commands"
	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/core/ports"
	"pizzadelivery/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader replays a fixed message sequence, then reports EOF as a
// closed reader would.
type scriptedReader struct {
	messages []kafka.Message
	pos      int
}

func (r *scriptedReader) ReadMessage(_ context.Context) (kafka.Message, error) {
	if r.pos >= len(r.messages) {
		return kafka.Message{}, io.EOF
	}
	message := r.messages[r.pos]
	r.pos++
	return message, nil
}

func (r *scriptedReader) Close() error { return nil }

type recordingCreator struct {
	tokens []kernel.UUID
	err    error
}

func (c *recordingCreator) Handle(
	_ context.Context, cmd commands.CreateDeliveryCommand,
) (*delivery.Delivery, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.tokens = append(c.tokens, cmd.OrderToken())
	return delivery.NewDelivery(kernel.NewUUID(), cmd.OrderToken(), time.Now().UTC())
}

func eventPayload(t *testing.T, orderToken string) []byte {
	t.Helper()
	payload, err := json.Marshal(ports.FulfillmentRequestedEvent{
		OrderToken:   orderToken,
		CustomerID:   7,
		LocationCode: "NYC01",
		TotalPrice:   19.98,
		Status:       "PENDING",
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	return payload
}

func TestFulfillmentConsumer_CreatesDeliveryPerEvent(t *testing.T) {
	tokenA := kernel.NewUUID()
	tokenB := kernel.NewUUID()
	reader := &scriptedReader{messages: []kafka.Message{
		{Value: eventPayload(t, tokenA.String())},
		{Value: eventPayload(t, tokenB.String())},
	}}
	creator := &recordingCreator{}

	consumer := NewFulfillmentConsumer(reader, creator, slog.New(slog.DiscardHandler))
	consumer.Start(context.Background())

	require.Len(t, creator.tokens, 2)
	assert.True(t, creator.tokens[0].IsEqual(tokenA))
	assert.True(t, creator.tokens[1].IsEqual(tokenB))
}

func TestFulfillmentConsumer_SkipsMalformedPayload(t *testing.T) {
	token := kernel.NewUUID()
	reader := &scriptedReader{messages: []kafka.Message{
		{Value: []byte("not json")},
		{Value: eventPayload(t, "not-a-uuid")},
		{Value: eventPayload(t, token.String())},
	}}
	creator := &recordingCreator{}

	consumer := NewFulfillmentConsumer(reader, creator, slog.New(slog.DiscardHandler))
	consumer.Start(context.Background())

	require.Len(t, creator.tokens, 1)
	assert.True(t, creator.tokens[0].IsEqual(token))
}

func TestFulfillmentConsumer_DuplicateEventIsBenign(t *testing.T) {
	token := kernel.NewUUID()
	reader := &scriptedReader{messages: []kafka.Message{
		{Value: eventPayload(t, token.String())},
	}}
	creator := &recordingCreator{err: errs.NewConflictError("delivery already exists")}

	consumer := NewFulfillmentConsumer(reader, creator, slog.New(slog.DiscardHandler))
	consumer.Start(context.Background()) // must not panic or loop forever
}

func TestFulfillmentConsumer_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := &blockingReader{ctx: ctx}
	consumer := NewFulfillmentConsumer(reader, &recordingCreator{}, slog.New(slog.DiscardHandler))

	done := make(chan struct{})
	go func() {
		consumer.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop on context cancellation")
	}
}

// blockingReader mimics kafka.Reader's behavior of returning the context
// error once the context is done.
type blockingReader struct {
	ctx context.Context
}

func (r *blockingReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *blockingReader) Close() error { return nil }
