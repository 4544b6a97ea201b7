package contexttool

import (
	"context"
	"errors"
	"io"
	"sync"

	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"google.golang.org/grpc/metadata"
)

// mockServerStream satisfies grpc.ServerStream for handler-level tests.
type mockServerStream struct {
	ctx context.Context
}

func (m mockServerStream) SetHeader(metadata.MD) error  { return nil }
func (m mockServerStream) SendHeader(metadata.MD) error { return nil }
func (m mockServerStream) SetTrailer(metadata.MD)       {}
func (m mockServerStream) Context() context.Context     { return m.ctx }
func (m mockServerStream) SendMsg(interface{}) error    { return nil }
func (m mockServerStream) RecvMsg(interface{}) error    { return nil }

// bufferingTelemetryStream collects frames sent on a telemetry subscription.
type bufferingTelemetryStream struct {
	mockServerStream
	frames chan *pb.TelemetryFrame
}

func newBufferingTelemetryStream(ctx context.Context) *bufferingTelemetryStream {
	return &bufferingTelemetryStream{
		mockServerStream: mockServerStream{ctx: ctx},
		frames:           make(chan *pb.TelemetryFrame, 50),
	}
}

func (s *bufferingTelemetryStream) Send(frame *pb.TelemetryFrame) error {
	s.frames <- frame
	return nil
}

// bufferingMultiModalStream feeds a fixed sequence of frames to the handler
// and collects what it sends back.
type bufferingMultiModalStream struct {
	mockServerStream

	mu       sync.Mutex
	incoming []*pb.MultiModalFrame
	sent     []*pb.MultiModalFrame
}

func newBufferingMultiModalStream(ctx context.Context, incoming ...*pb.MultiModalFrame) *bufferingMultiModalStream {
	return &bufferingMultiModalStream{
		mockServerStream: mockServerStream{ctx: ctx},
		incoming:         incoming,
	}
}

func (s *bufferingMultiModalStream) Recv() (*pb.MultiModalFrame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.incoming) == 0 {
		return nil, io.EOF
	}
	frame := s.incoming[0]
	s.incoming = s.incoming[1:]
	return frame, nil
}

func (s *bufferingMultiModalStream) Send(frame *pb.MultiModalFrame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, frame)
	return nil
}

func (s *bufferingMultiModalStream) sentFrames() []*pb.MultiModalFrame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*pb.MultiModalFrame(nil), s.sent...)
}

// failingStore fails every fetch and counts how often it was consulted.
type failingStore struct {
	mu    sync.Mutex
	calls int
}

func (f *failingStore) Fetch(context.Context, string) ([]byte, []string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return nil, nil, errors.New("backend down")
}

func (f *failingStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
