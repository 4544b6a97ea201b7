package eventbus

import (
	"context"
	"net"
	"testing"
	"time"

	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"github.com/anubhaparashar/mcp2/pkg/telemetry"
	"github.com/anubhaparashar/mcp2/pkg/tokens"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

// Exercises the server-streaming path end to end over an in-process
// connection.
func TestEventBusOverGrpc(t *testing.T) {
	emitter := telemetry.NewEmitter(discardSink{}, 64)
	t.Cleanup(emitter.Close)

	server, broker := NewServer(busName, tokens.NewVerifier(testSecret), emitter)

	lis := bufconn.Listen(1024 * 1024)
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to dial bufconn: %s", err)
	}
	t.Cleanup(func() { conn.Close() })
	client := pb.NewEventBusClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	subscriberToken := issueToken(t, []string{"event:subscribe:inventory:*"}, []string{busName})
	stream, err := client.Subscribe(ctx, &pb.EventSubscribeRequest{
		TopicFilter:     "inventory:*:low_stock",
		SubscriberToken: subscriberToken,
	})
	if err != nil {
		t.Fatalf("Subscribe failed: %s", err)
	}
	waitForSubscriptions(t, broker, 1)

	publisherToken := issueToken(t, []string{"event:publish:inventory:*"}, []string{busName})
	if _, err := client.Publish(ctx, &pb.EventPublishRequest{
		Topic:          "inventory:prod_12345:low_stock",
		Payload:        []byte(`{"current_stock":9}`),
		PublisherToken: publisherToken,
	}); err != nil {
		t.Fatalf("Publish failed: %s", err)
	}

	envelope, err := stream.Recv()
	if err != nil {
		t.Fatalf("Recv failed: %s", err)
	}
	if envelope.GetTopic() != "inventory:prod_12345:low_stock" {
		t.Fatalf("unexpected topic: %s", envelope.GetTopic())
	}
	if envelope.GetSequenceId() != 1 {
		t.Fatalf("expected sequence 1, got %d", envelope.GetSequenceId())
	}
	if string(envelope.GetPayload()) != `{"current_stock":9}` {
		t.Fatalf("unexpected payload: %s", envelope.GetPayload())
	}
}
