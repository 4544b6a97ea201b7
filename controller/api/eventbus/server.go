package eventbus

import (
	"context"
	"fmt"
	"time"

	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"github.com/anubhaparashar/mcp2/controller/util"
	"github.com/anubhaparashar/mcp2/pkg/telemetry"
	"github.com/anubhaparashar/mcp2/pkg/tokens"
	logging "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// publishScopePrefix forms the per-topic publish scope.
	publishScopePrefix = "event:publish:"
	// subscribeScopePrefix forms the per-filter subscribe scope.
	subscribeScopePrefix = "event:subscribe:"
)

type (
	server struct {
		pb.UnimplementedEventBusServer

		name     string
		verifier *tokens.Verifier
		emitter  *telemetry.Emitter
		broker   *Broker

		log *logging.Entry
	}
)

// NewServer returns a new instance of the event bus server.
//
// Publishers need a capability covering event:publish:<topic>; subscribers
// need one covering event:subscribe:<topic_filter>. Both checks and the
// topic filter matching itself use the one wildcard rule, so a filter like
// inventory:* behaves as a bare prefix over published topics.
func NewServer(
	name string,
	verifier *tokens.Verifier,
	emitter *telemetry.Emitter,
) (*grpc.Server, *Broker) {
	srv := newServer(name, verifier, emitter)
	s := util.NewGrpcServer()
	pb.RegisterEventBusServer(s, srv)
	return s, srv.broker
}

func newServer(name string, verifier *tokens.Verifier, emitter *telemetry.Emitter) *server {
	return &server{
		name:     name,
		verifier: verifier,
		emitter:  emitter,
		broker:   NewBroker(),
		log: logging.WithFields(logging.Fields{
			"component": "eventbus",
			"name":      name,
		}),
	}
}

func (s *server) Publish(ctx context.Context, req *pb.EventPublishRequest) (*pb.EventPublishResponse, error) {
	began := time.Now()
	client := "unknown"
	var err error
	defer func() {
		s.emit("Publish", client, began, err)
	}()

	if req.GetTopic() == "" {
		err = status.Error(codes.InvalidArgument, "missing topic")
		return nil, err
	}

	claims, verr := s.verifier.Verify(req.GetPublisherToken())
	if verr != nil {
		err = status.Error(codes.Unauthenticated, verr.Error())
		return nil, err
	}
	client = claims.Subject
	if !tokens.HasCapability(claims, publishScopePrefix+req.GetTopic()) {
		err = status.Errorf(codes.PermissionDenied, "token lacks %s%s", publishScopePrefix, req.GetTopic())
		return nil, err
	}
	if !tokens.HasAudience(claims, s.name) {
		err = status.Errorf(codes.PermissionDenied, "token audience does not include %s", s.name)
		return nil, err
	}

	sequence, delivered := s.broker.Publish(req.GetTopic(), req.GetPayload())
	s.log.Debugf("published %s #%d to %d subscribers", req.GetTopic(), sequence, delivered)
	return &pb.EventPublishResponse{
		Success: true,
		Message: fmt.Sprintf("delivered sequence %d to %d subscribers", sequence, delivered),
	}, nil
}

func (s *server) Subscribe(req *pb.EventSubscribeRequest, stream pb.EventBus_SubscribeServer) error {
	began := time.Now()
	client := "unknown"
	var err error
	defer func() {
		s.emit("Subscribe", client, began, err)
	}()

	if req.GetTopicFilter() == "" {
		err = status.Error(codes.InvalidArgument, "missing topic_filter")
		return err
	}

	claims, verr := s.verifier.Verify(req.GetSubscriberToken())
	if verr != nil {
		err = status.Error(codes.Unauthenticated, verr.Error())
		return err
	}
	client = claims.Subject
	if !tokens.HasCapability(claims, subscribeScopePrefix+req.GetTopicFilter()) {
		err = status.Errorf(codes.PermissionDenied, "token lacks %s%s", subscribeScopePrefix, req.GetTopicFilter())
		return err
	}
	if !tokens.HasAudience(claims, s.name) {
		err = status.Errorf(codes.PermissionDenied, "token audience does not include %s", s.name)
		return err
	}

	log := s.log.WithFields(logging.Fields{
		"topic_filter": req.GetTopicFilter(),
		"client":       client,
	})

	sub := s.broker.Subscribe(req.GetTopicFilter())
	defer s.broker.Unsubscribe(sub)
	log.Debug("subscriber attached")

	for {
		select {
		case <-stream.Context().Done():
			log.Debug("subscriber detached")
			return nil
		case envelope := <-sub.Events():
			if serr := stream.Send(envelope); serr != nil {
				err = serr
				return err
			}
		}
	}
}

func (s *server) emit(method, client string, began time.Time, err error) {
	s.emitter.Log(telemetry.NewRecord(method, client, time.Since(began), status.Code(err).String()))
}
