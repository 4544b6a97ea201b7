package contexttool

import (
	"context"
	"strings"
	"testing"
	"time"

	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"github.com/anubhaparashar/mcp2/pkg/breaker"
	"github.com/anubhaparashar/mcp2/pkg/telemetry"
	"github.com/anubhaparashar/mcp2/pkg/tokens"
	"github.com/go-test/deep"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const serverName = "InventoryDB_Primary"

var testSecret = []byte("contexttool-test-secret")

type discardSink struct{}

func (discardSink) Consume(telemetry.Record) {}

func makeServer(t *testing.T, store Store) *server {
	t.Helper()
	emitter := telemetry.NewEmitter(discardSink{}, 64)
	t.Cleanup(emitter.Close)
	return newServer(
		Config{
			Name:         serverName,
			ContextScope: "db:inventory:read",
			CacheTTL:     time.Minute,
			Breaker:      breaker.Config{FailureThreshold: 3, RecoveryTime: time.Hour},
		},
		tokens.NewVerifier(testSecret),
		store,
		emitter,
	)
}

func seededStore() *StaticStore {
	store := NewStaticStore()
	store.Set("inventory:prod_12345:stock_count", []byte("42"))
	return store
}

func issueToken(t *testing.T, caps, aud []string) string {
	t.Helper()
	token, err := tokens.NewIssuer(testSecret).Issue("agent-1", caps, aud, time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %s", err)
	}
	return token
}

func fullToken(t *testing.T) string {
	return issueToken(t,
		[]string{"db:inventory:read", "tool:*", "telemetry:read"},
		[]string{"InventoryDB_*"})
}

func TestRequestContext(t *testing.T) {
	t.Run("Returns the stored value with a timestamp metadata entry", func(t *testing.T) {
		s := makeServer(t, seededStore())

		resp, err := s.RequestContext(context.Background(), &pb.ContextRequest{
			ContextKey:      "inventory:prod_12345:stock_count",
			Parameters:      map[string]string{"warehouse": "NY"},
			CapabilityToken: fullToken(t),
		})
		if err != nil {
			t.Fatalf("RequestContext failed: %s", err)
		}
		if string(resp.GetSerializedValue()) != "42" {
			t.Fatalf("unexpected value: %q", resp.GetSerializedValue())
		}

		var stamped bool
		for _, m := range resp.GetMetadata() {
			if strings.HasPrefix(m, "timestamp:") {
				stamped = true
			}
		}
		if !stamped {
			t.Fatalf("expected a timestamp metadata entry, got %v", resp.GetMetadata())
		}
	})

	t.Run("Serves an identical request from cache", func(t *testing.T) {
		store := seededStore()
		s := makeServer(t, store)
		token := fullToken(t)
		req := &pb.ContextRequest{
			ContextKey:      "inventory:prod_12345:stock_count",
			Parameters:      map[string]string{"warehouse": "NY"},
			CapabilityToken: token,
		}

		first, err := s.RequestContext(context.Background(), req)
		if err != nil {
			t.Fatalf("first RequestContext failed: %s", err)
		}
		store.Set("inventory:prod_12345:stock_count", []byte("99"))
		second, err := s.RequestContext(context.Background(), req)
		if err != nil {
			t.Fatalf("second RequestContext failed: %s", err)
		}

		if diff := deep.Equal(first.GetSerializedValue(), second.GetSerializedValue()); diff != nil {
			t.Fatalf("cached value mismatch: %v", diff)
		}
		if diff := deep.Equal(first.GetMetadata(), second.GetMetadata()); diff != nil {
			t.Fatalf("cached metadata mismatch: %v", diff)
		}
	})

	t.Run("Differing parameters bypass the cache", func(t *testing.T) {
		store := seededStore()
		s := makeServer(t, store)
		token := fullToken(t)

		if _, err := s.RequestContext(context.Background(), &pb.ContextRequest{
			ContextKey:      "inventory:prod_12345:stock_count",
			Parameters:      map[string]string{"warehouse": "NY"},
			CapabilityToken: token,
		}); err != nil {
			t.Fatalf("first RequestContext failed: %s", err)
		}

		store.Set("inventory:prod_12345:stock_count", []byte("7"))
		resp, err := s.RequestContext(context.Background(), &pb.ContextRequest{
			ContextKey:      "inventory:prod_12345:stock_count",
			Parameters:      map[string]string{"warehouse": "SF"},
			CapabilityToken: token,
		})
		if err != nil {
			t.Fatalf("second RequestContext failed: %s", err)
		}
		if string(resp.GetSerializedValue()) != "7" {
			t.Fatalf("expected a fresh fetch, got %q", resp.GetSerializedValue())
		}
	})

	t.Run("Rejects a token lacking the context scope", func(t *testing.T) {
		s := makeServer(t, seededStore())
		token := issueToken(t, []string{"telemetry:read"}, []string{"InventoryDB_*"})

		_, err := s.RequestContext(context.Background(), &pb.ContextRequest{
			ContextKey:      "inventory:prod_12345:stock_count",
			CapabilityToken: token,
		})
		if status.Code(err) != codes.PermissionDenied {
			t.Fatalf("expected PermissionDenied, got %v", err)
		}
	})

	t.Run("Rejects a token for another audience", func(t *testing.T) {
		s := makeServer(t, seededStore())
		token := issueToken(t, []string{"db:inventory:read"}, []string{"OrdersDB_*"})

		_, err := s.RequestContext(context.Background(), &pb.ContextRequest{
			ContextKey:      "inventory:prod_12345:stock_count",
			CapabilityToken: token,
		})
		if status.Code(err) != codes.PermissionDenied {
			t.Fatalf("expected PermissionDenied, got %v", err)
		}
	})

	t.Run("Rejects a garbage token", func(t *testing.T) {
		s := makeServer(t, seededStore())

		_, err := s.RequestContext(context.Background(), &pb.ContextRequest{
			ContextKey:      "inventory:prod_12345:stock_count",
			CapabilityToken: "garbage",
		})
		if status.Code(err) != codes.Unauthenticated {
			t.Fatalf("expected Unauthenticated, got %v", err)
		}
	})

	t.Run("Surfaces a backend failure as Internal", func(t *testing.T) {
		s := makeServer(t, &failingStore{})

		_, err := s.RequestContext(context.Background(), &pb.ContextRequest{
			ContextKey:      "inventory:prod_12345:stock_count",
			CapabilityToken: fullToken(t),
		})
		if status.Code(err) != codes.Internal {
			t.Fatalf("expected Internal, got %v", err)
		}
	})

	t.Run("Opens the breaker after repeated backend failures", func(t *testing.T) {
		store := &failingStore{}
		s := makeServer(t, store)
		token := fullToken(t)

		for i := 0; i < 3; i++ {
			_, err := s.RequestContext(context.Background(), &pb.ContextRequest{
				ContextKey:      "inventory:prod_12345:stock_count",
				CapabilityToken: token,
			})
			if status.Code(err) != codes.Internal {
				t.Fatalf("expected Internal on call %d, got %v", i, err)
			}
		}

		_, err := s.RequestContext(context.Background(), &pb.ContextRequest{
			ContextKey:      "inventory:prod_12345:stock_count",
			CapabilityToken: token,
		})
		if status.Code(err) != codes.Unavailable {
			t.Fatalf("expected Unavailable, got %v", err)
		}
		if store.callCount() != 3 {
			t.Fatalf("expected the backend to be spared, saw %d calls", store.callCount())
		}
	})
}

func TestInvokeTool(t *testing.T) {
	t.Run("Computes pricing from stock count", func(t *testing.T) {
		s := makeServer(t, seededStore())

		resp, err := s.InvokeTool(context.Background(), &pb.ToolRequest{
			ToolName:        "compute_pricing",
			Arguments:       map[string]string{"sku": "prod_12345", "stock_count": "42"},
			CapabilityToken: fullToken(t),
		})
		if err != nil {
			t.Fatalf("InvokeTool failed: %s", err)
		}
		if !resp.GetSuccess() {
			t.Fatal("expected success")
		}
		if price := string(resp.GetOutputs()["recommended_price"]); price != "95.8" {
			t.Fatalf("unexpected recommended price: %q", price)
		}
	})

	t.Run("Unknown tools are a soft failure", func(t *testing.T) {
		s := makeServer(t, seededStore())

		resp, err := s.InvokeTool(context.Background(), &pb.ToolRequest{
			ToolName:        "sql_query",
			CapabilityToken: fullToken(t),
		})
		if err != nil {
			t.Fatalf("InvokeTool failed: %s", err)
		}
		if !resp.GetSuccess() {
			t.Fatal("expected soft success for an unknown tool")
		}
		if len(resp.GetWarnings()) == 0 {
			t.Fatal("expected a warning for an unknown tool")
		}
	})

	t.Run("Scope is formed from the tool name", func(t *testing.T) {
		s := makeServer(t, seededStore())
		token := issueToken(t, []string{"tool:enhance_image"}, []string{"InventoryDB_*"})

		_, err := s.InvokeTool(context.Background(), &pb.ToolRequest{
			ToolName:        "compute_pricing",
			Arguments:       map[string]string{"stock_count": "42"},
			CapabilityToken: token,
		})
		if status.Code(err) != codes.PermissionDenied {
			t.Fatalf("expected PermissionDenied, got %v", err)
		}

		// authorization failures must not have tripped the breaker
		resp, err := s.InvokeTool(context.Background(), &pb.ToolRequest{
			ToolName:        "compute_pricing",
			Arguments:       map[string]string{"stock_count": "42"},
			CapabilityToken: fullToken(t),
		})
		if err != nil {
			t.Fatalf("expected the follow-up call to succeed, got %s", err)
		}
		if !resp.GetSuccess() {
			t.Fatal("expected success after a denied call")
		}
	})

	t.Run("Handler errors are fatal and count against the breaker", func(t *testing.T) {
		s := makeServer(t, seededStore())
		token := fullToken(t)

		_, err := s.InvokeTool(context.Background(), &pb.ToolRequest{
			ToolName:        "compute_pricing",
			Arguments:       map[string]string{"stock_count": "not-a-number"},
			CapabilityToken: token,
		})
		if status.Code(err) != codes.Internal {
			t.Fatalf("expected Internal, got %v", err)
		}
		if s.breaker.State() != breaker.StateClosed {
			t.Fatalf("one failure should not open the breaker, got %s", s.breaker.State())
		}

		for i := 0; i < 2; i++ {
			s.InvokeTool(context.Background(), &pb.ToolRequest{
				ToolName:        "compute_pricing",
				Arguments:       map[string]string{"stock_count": "not-a-number"},
				CapabilityToken: token,
			})
		}
		if s.breaker.State() != breaker.StateOpen {
			t.Fatalf("three handler failures should open the breaker, got %s", s.breaker.State())
		}
	})

	t.Run("Accepts a valid delegation proof", func(t *testing.T) {
		s := makeServer(t, seededStore())
		issuer := tokens.NewIssuer(testSecret)
		proof, err := issuer.IssueDelegation("agent-1", "agent-2", []string{"tool:compute_pricing"}, time.Hour)
		if err != nil {
			t.Fatalf("failed to issue proof: %s", err)
		}

		resp, err := s.InvokeTool(context.Background(), &pb.ToolRequest{
			ToolName:             "compute_pricing",
			Arguments:            map[string]string{"stock_count": "42"},
			CapabilityToken:      fullToken(t),
			AgentDelegationProof: proof,
		})
		if err != nil {
			t.Fatalf("InvokeTool failed: %s", err)
		}
		if !resp.GetSuccess() {
			t.Fatal("expected success with a valid proof")
		}
	})

	t.Run("Rejects a delegation proof exceeding the primary token", func(t *testing.T) {
		s := makeServer(t, seededStore())
		issuer := tokens.NewIssuer(testSecret)
		token := issueToken(t, []string{"tool:compute_pricing"}, []string{"InventoryDB_*"})
		proof, err := issuer.IssueDelegation("agent-1", "agent-2", []string{"db:orders:write"}, time.Hour)
		if err != nil {
			t.Fatalf("failed to issue proof: %s", err)
		}

		_, err = s.InvokeTool(context.Background(), &pb.ToolRequest{
			ToolName:             "compute_pricing",
			Arguments:            map[string]string{"stock_count": "42"},
			CapabilityToken:      token,
			AgentDelegationProof: proof,
		})
		if status.Code(err) != codes.PermissionDenied {
			t.Fatalf("expected PermissionDenied, got %v", err)
		}
	})
}

func TestSubscribeTelemetry(t *testing.T) {
	t.Run("Delivers published frames in order", func(t *testing.T) {
		s := makeServer(t, seededStore())
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		stream := newBufferingTelemetryStream(ctx)
		token := fullToken(t)

		errs := make(chan error, 1)
		go func() {
			errs <- s.SubscribeTelemetry(&pb.TelemetryRequest{
				StreamId:        "metrics",
				CapabilityToken: token,
			}, stream)
		}()

		waitForSubscribers(t, s.streams, "metrics", 1)

		for i := int64(1); i <= 3; i++ {
			s.streams.Publish("metrics", &pb.TelemetryFrame{TimestampMs: i, Payload: []byte{byte(i)}})
		}

		for i := int64(1); i <= 3; i++ {
			select {
			case frame := <-stream.frames:
				if frame.GetTimestampMs() != i {
					t.Fatalf("expected frame %d, got %d", i, frame.GetTimestampMs())
				}
			case <-time.After(time.Second):
				t.Fatalf("timed out waiting for frame %d", i)
			}
		}

		cancel()
		if err := <-errs; err != nil {
			t.Fatalf("handler returned error: %s", err)
		}
		waitForSubscribers(t, s.streams, "metrics", 0)
	})

	t.Run("Rejects a token lacking telemetry scope", func(t *testing.T) {
		s := makeServer(t, seededStore())
		token := issueToken(t, []string{"db:inventory:read"}, []string{"InventoryDB_*"})
		stream := newBufferingTelemetryStream(context.Background())

		err := s.SubscribeTelemetry(&pb.TelemetryRequest{
			StreamId:        "metrics",
			CapabilityToken: token,
		}, stream)
		if status.Code(err) != codes.PermissionDenied {
			t.Fatalf("expected PermissionDenied, got %v", err)
		}
	})

	t.Run("Streams are isolated by id", func(t *testing.T) {
		s := makeServer(t, seededStore())
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		stream := newBufferingTelemetryStream(ctx)
		token := fullToken(t)

		go s.SubscribeTelemetry(&pb.TelemetryRequest{
			StreamId:        "metrics",
			CapabilityToken: token,
		}, stream)
		waitForSubscribers(t, s.streams, "metrics", 1)

		s.streams.Publish("other", &pb.TelemetryFrame{TimestampMs: 99})

		select {
		case frame := <-stream.frames:
			t.Fatalf("unexpected frame: %v", frame)
		case <-time.After(50 * time.Millisecond):
		}
	})
}

func TestMultiModalExchange(t *testing.T) {
	streamContext := func(t *testing.T) context.Context {
		md := metadata.Pairs(TokenMetadataKey, fullToken(t))
		return metadata.NewIncomingContext(context.Background(), md)
	}

	t.Run("Echoes frames back in order", func(t *testing.T) {
		s := makeServer(t, seededStore())
		incoming := []*pb.MultiModalFrame{
			{Modality: &pb.MultiModalFrame_Text{Text: &pb.TextChunk{Content: "hello", Sequence: 1}}},
			{Modality: &pb.MultiModalFrame_Image{Image: &pb.ImageFrame{JpegData: []byte{0xff, 0xd8}, Width: 2, Height: 2, Sequence: 2}}},
			{Modality: &pb.MultiModalFrame_Audio{Audio: &pb.AudioFrame{PcmData: []byte{1, 2}, TimestampMs: 3}}},
			{Modality: &pb.MultiModalFrame_Blob{Blob: &pb.BinaryBlob{Data: []byte{9}, MimeType: "application/octet-stream", Sequence: 4}}},
		}
		stream := newBufferingMultiModalStream(streamContext(t), incoming...)

		if err := s.MultiModalExchange(stream); err != nil {
			t.Fatalf("MultiModalExchange failed: %s", err)
		}

		sent := stream.sentFrames()
		if diff := deep.Equal(sent, incoming); diff != nil {
			t.Fatalf("echo mismatch: %v", diff)
		}
	})

	t.Run("Applies a configured transform", func(t *testing.T) {
		s := makeServer(t, seededStore())
		s.config.Transform = func(frame *pb.MultiModalFrame) *pb.MultiModalFrame {
			if text := frame.GetText(); text != nil {
				return &pb.MultiModalFrame{Modality: &pb.MultiModalFrame_Text{
					Text: &pb.TextChunk{Content: strings.ToUpper(text.GetContent()), Sequence: text.GetSequence()},
				}}
			}
			return frame
		}
		stream := newBufferingMultiModalStream(streamContext(t),
			&pb.MultiModalFrame{Modality: &pb.MultiModalFrame_Text{Text: &pb.TextChunk{Content: "hello", Sequence: 1}}})

		if err := s.MultiModalExchange(stream); err != nil {
			t.Fatalf("MultiModalExchange failed: %s", err)
		}

		sent := stream.sentFrames()
		if len(sent) != 1 || sent[0].GetText().GetContent() != "HELLO" {
			t.Fatalf("unexpected frames: %v", sent)
		}
	})

	t.Run("Rejects a stream without a token", func(t *testing.T) {
		s := makeServer(t, seededStore())
		stream := newBufferingMultiModalStream(context.Background())

		err := s.MultiModalExchange(stream)
		if status.Code(err) != codes.Unauthenticated {
			t.Fatalf("expected Unauthenticated, got %v", err)
		}
	})
}

func waitForSubscribers(t *testing.T, p *Publisher, streamID string, expected int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if p.SubscriberCount(streamID) == expected {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d subscribers on %s, got %d", expected, streamID, p.SubscriberCount(streamID))
}
