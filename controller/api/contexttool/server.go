package contexttool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"github.com/anubhaparashar/mcp2/controller/util"
	"github.com/anubhaparashar/mcp2/pkg/breaker"
	"github.com/anubhaparashar/mcp2/pkg/cache"
	"github.com/anubhaparashar/mcp2/pkg/telemetry"
	"github.com/anubhaparashar/mcp2/pkg/tokens"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	logging "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	// ScopeTelemetry must be held to subscribe to telemetry streams.
	ScopeTelemetry = "telemetry:read"
	// ScopeMultiModal must be held to open a multimodal exchange.
	ScopeMultiModal = "tool:multimodal_exchange"
	// toolScopePrefix forms the per-tool scope: a token authorizing
	// tool:enhance_image does not authorize tool:sql_query.
	toolScopePrefix = "tool:"

	// TokenMetadataKey is the stream metadata key carrying the capability
	// token on multimodal exchanges; the authorization holds for the life of
	// the stream.
	TokenMetadataKey = "mcp-capability-token"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contexttool_cache_hits_total",
		Help: "Context requests served from the TTL cache.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contexttool_cache_misses_total",
		Help: "Context requests that consulted the backing store.",
	})
	breakerState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "contexttool_breaker_state",
		Help: "Circuit breaker state (0 closed, 1 open, 2 half-open).",
	})
)

type (
	// Config carries the deployment-specific identity and policy of a
	// ContextTool instance.
	Config struct {
		// Name is the server's own name, matched against token audiences.
		Name string
		// ContextScope is the capability required by RequestContext, e.g.
		// db:inventory:read.
		ContextScope string
		// CacheTTL bounds how long context responses are served from cache.
		CacheTTL time.Duration
		// Breaker configures the instance's circuit breaker.
		Breaker breaker.Config
		// Transform, when set, replaces the default echo semantics of
		// MultiModalExchange.
		Transform func(*pb.MultiModalFrame) *pb.MultiModalFrame
	}

	server struct {
		pb.UnimplementedContextToolServer

		config   Config
		verifier *tokens.Verifier
		store    Store
		cache    *cache.Cache
		breaker  *breaker.Breaker
		emitter  *telemetry.Emitter
		tools    *ToolSet
		streams  *Publisher

		log *logging.Entry
	}
)

// NewServer returns a new instance of the ContextTool server along with the
// telemetry Publisher feeding its subscriber streams and the ToolSet hosts
// register additional tools on.
func NewServer(
	config Config,
	verifier *tokens.Verifier,
	store Store,
	emitter *telemetry.Emitter,
) (*grpc.Server, *Publisher, *ToolSet) {
	srv := newServer(config, verifier, store, emitter)
	s := util.NewGrpcServer()
	pb.RegisterContextToolServer(s, srv)
	return s, srv.streams, srv.tools
}

func newServer(
	config Config,
	verifier *tokens.Verifier,
	store Store,
	emitter *telemetry.Emitter,
) *server {
	if config.CacheTTL <= 0 {
		config.CacheTTL = time.Minute
	}
	onStateChange := config.Breaker.OnStateChange
	config.Breaker.OnStateChange = func(from, to breaker.State) {
		breakerState.Set(float64(to))
		if onStateChange != nil {
			onStateChange(from, to)
		}
	}
	return &server{
		config:   config,
		verifier: verifier,
		store:    store,
		cache:    cache.New(config.CacheTTL),
		breaker:  breaker.New(config.Breaker),
		emitter:  emitter,
		tools:    NewToolSet(),
		streams:  NewPublisher(),
		log: logging.WithFields(logging.Fields{
			"component": "contexttool",
			"name":      config.Name,
		}),
	}
}

func (s *server) RequestContext(ctx context.Context, req *pb.ContextRequest) (*pb.ContextResponse, error) {
	began := time.Now()
	client := "unknown"
	var err error
	defer func() {
		s.emit("RequestContext", client, began, err)
	}()

	if !s.breaker.Admit() {
		err = status.Error(codes.Unavailable, "circuit breaker open")
		return nil, err
	}

	claims, aerr := s.authorize(req.GetCapabilityToken(), req.GetAgentDelegationProof(), s.config.ContextScope)
	if aerr != nil {
		err = aerr
		return nil, err
	}
	client = claims.Subject

	key := cache.Key(req.GetContextKey(), req.GetParameters())
	if cached, ok := s.cache.Get(key); ok {
		cacheHits.Inc()
		s.breaker.Observe(true)
		return cached.(*pb.ContextResponse), nil
	}
	cacheMisses.Inc()

	value, meta, ferr := s.store.Fetch(ctx, req.GetContextKey())
	if ferr != nil {
		// Cancellation is the caller's doing, not the backend's.
		if errors.Is(ferr, context.Canceled) || errors.Is(ferr, context.DeadlineExceeded) {
			err = status.FromContextError(ferr).Err()
			return nil, err
		}
		s.breaker.Observe(false)
		err = status.Errorf(codes.Internal, "backing store: %s", ferr)
		return nil, err
	}

	resp := &pb.ContextResponse{
		SerializedValue: value,
		Metadata:        append(meta, fmt.Sprintf("timestamp:%d", time.Now().UnixMilli())),
	}
	s.cache.Set(key, resp, s.config.CacheTTL)
	s.breaker.Observe(true)
	return resp, nil
}

func (s *server) SubscribeTelemetry(req *pb.TelemetryRequest, stream pb.ContextTool_SubscribeTelemetryServer) error {
	began := time.Now()
	client := "unknown"
	var err error
	defer func() {
		s.emit("SubscribeTelemetry", client, began, err)
	}()

	claims, aerr := s.authorize(req.GetCapabilityToken(), "", ScopeTelemetry)
	if aerr != nil {
		err = aerr
		return err
	}
	client = claims.Subject

	log := s.log.WithFields(logging.Fields{
		"stream_id": req.GetStreamId(),
		"client":    client,
	})

	sink := s.streams.subscribe(req.GetStreamId())
	defer s.streams.unsubscribe(req.GetStreamId(), sink)
	log.Debug("telemetry subscriber attached")

	for {
		select {
		case <-stream.Context().Done():
			// Cancellation is the normal way for a subscriber to leave.
			log.Debug("telemetry subscriber detached")
			return nil
		case frame := <-sink.frames:
			if serr := stream.Send(frame); serr != nil {
				err = serr
				return err
			}
		}
	}
}

func (s *server) MultiModalExchange(stream pb.ContextTool_MultiModalExchangeServer) error {
	began := time.Now()
	client := "unknown"
	var err error
	defer func() {
		s.emit("MultiModalExchange", client, began, err)
	}()

	token, ok := tokenFromMetadata(stream.Context())
	if !ok {
		err = status.Errorf(codes.Unauthenticated, "missing %s metadata", TokenMetadataKey)
		return err
	}
	claims, aerr := s.authorize(token, "", ScopeMultiModal)
	if aerr != nil {
		err = aerr
		return err
	}
	client = claims.Subject

	transform := s.config.Transform
	for {
		frame, rerr := stream.Recv()
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			err = rerr
			return err
		}
		out := frame
		// An unrecognized modality passes through unmodified so newer frame
		// variants survive older deployments.
		if transform != nil && frame.GetModality() != nil {
			out = transform(frame)
		}
		if serr := stream.Send(out); serr != nil {
			err = serr
			return err
		}
	}
}

func (s *server) InvokeTool(ctx context.Context, req *pb.ToolRequest) (*pb.ToolResponse, error) {
	began := time.Now()
	client := "unknown"
	var err error
	defer func() {
		s.emit("InvokeTool", client, began, err)
	}()

	if !s.breaker.Admit() {
		err = status.Error(codes.Unavailable, "circuit breaker open")
		return nil, err
	}

	claims, aerr := s.authorize(req.GetCapabilityToken(), req.GetAgentDelegationProof(), toolScopePrefix+req.GetToolName())
	if aerr != nil {
		err = aerr
		return nil, err
	}
	client = claims.Subject

	handler, ok := s.tools.lookup(req.GetToolName())
	if !ok {
		// Unknown names are a soft failure so agents can probe for tools
		// without tripping the breaker.
		s.breaker.Observe(true)
		warning := fmt.Sprintf("unknown tool %q; available: %v", req.GetToolName(), s.tools.Names())
		return &pb.ToolResponse{Success: true, Warnings: []string{warning}}, nil
	}

	outputs, herr := handler.Invoke(ctx, req.GetArguments())
	if herr != nil {
		s.breaker.Observe(false)
		err = status.Errorf(codes.Internal, "tool %s: %s", req.GetToolName(), herr)
		return nil, err
	}
	s.breaker.Observe(true)
	return &pb.ToolResponse{Success: true, Outputs: outputs}, nil
}

// authorize runs the shared front of every handler: verify the token, check
// the delegation proof when one accompanies the call, then check capability
// and audience. Authentication and authorization failures never count
// against the breaker.
func (s *server) authorize(token, proof, requiredScope string) (*tokens.Claims, error) {
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}
	if proof != "" {
		if _, derr := s.verifier.VerifyDelegation(claims, proof); derr != nil {
			if errors.Is(derr, tokens.ErrDelegation) {
				return nil, status.Error(codes.PermissionDenied, derr.Error())
			}
			return nil, status.Error(codes.Unauthenticated, derr.Error())
		}
	}
	if !tokens.HasCapability(claims, requiredScope) {
		return nil, status.Errorf(codes.PermissionDenied, "token lacks %s", requiredScope)
	}
	if !tokens.HasAudience(claims, s.config.Name) {
		return nil, status.Errorf(codes.PermissionDenied, "token audience does not include %s", s.config.Name)
	}
	return claims, nil
}

func tokenFromMetadata(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(TokenMetadataKey)
	if len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}

func (s *server) emit(method, client string, began time.Time, err error) {
	s.emitter.Log(telemetry.NewRecord(method, client, time.Since(began), status.Code(err).String()))
}
