package registry

import (
	"context"
	"sort"
	"sync"
	"time"

	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"github.com/anubhaparashar/mcp2/controller/util"
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
	// ScopeRegister must be held by a token used to register or deregister an
	// endpoint.
	ScopeRegister = "registry:register"
	// ScopeLookup must be held by a token used to look endpoints up.
	ScopeLookup = "registry:lookup"

	// AddressMetadataKey is the request metadata key carrying the
	// registrant's externally reachable address. It travels out of body
	// because it is the address other agents should dial, not necessarily
	// what this connection would reveal.
	AddressMetadataKey = "grpc-url"
)

var registeredEndpoints = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "registry_endpoints",
	Help: "Number of endpoints currently registered.",
})

type (
	server struct {
		pb.UnimplementedRegistryServer

		name     string
		verifier *tokens.Verifier
		emitter  *telemetry.Emitter

		mu        sync.Mutex
		endpoints map[string]*endpointRecord

		endpointTTL time.Duration
		log         *logging.Entry
		shutdown    <-chan struct{}
	}

	endpointRecord struct {
		grpcURL      string
		capabilities []string
		registeredAt time.Time
	}
)

// NewServer returns a new instance of the discovery registry server.
//
// The registry is the directory agents consult to find providers. Providers
// register under a unique server name with the capability scopes they offer;
// lookups are filtered by requested capability and gated by the requester's
// audience, so an agent never learns of an endpoint it could not present a
// token to.
//
// An endpointTTL of zero disables expiry; otherwise records older than the
// TTL are swept out unless re-registered.
func NewServer(
	name string,
	verifier *tokens.Verifier,
	emitter *telemetry.Emitter,
	endpointTTL time.Duration,
	shutdown <-chan struct{},
) *grpc.Server {
	log := logging.WithFields(logging.Fields{
		"component": "registry",
		"name":      name,
	})

	srv := newServer(name, verifier, emitter, endpointTTL, shutdown, log)
	if endpointTTL > 0 {
		go srv.sweepExpired()
	}

	s := util.NewGrpcServer()
	pb.RegisterRegistryServer(s, srv)
	return s
}

func newServer(
	name string,
	verifier *tokens.Verifier,
	emitter *telemetry.Emitter,
	endpointTTL time.Duration,
	shutdown <-chan struct{},
	log *logging.Entry,
) *server {
	return &server{
		name:        name,
		verifier:    verifier,
		emitter:     emitter,
		endpoints:   make(map[string]*endpointRecord),
		endpointTTL: endpointTTL,
		log:         log,
		shutdown:    shutdown,
	}
}

func (s *server) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	began := time.Now()
	client := "unknown"
	var err error
	defer func() {
		s.emit("Register", client, began, err)
	}()

	grpcURL, ok := addressFromMetadata(ctx)
	if !ok {
		err = status.Errorf(codes.InvalidArgument, "missing %s metadata", AddressMetadataKey)
		return nil, err
	}
	if req.GetServerName() == "" {
		err = status.Error(codes.InvalidArgument, "missing server_name")
		return nil, err
	}

	claims, verr := s.verifier.Verify(req.GetRegistrationToken())
	if verr != nil {
		err = status.Error(codes.Unauthenticated, verr.Error())
		return nil, err
	}
	client = claims.Subject
	if !tokens.HasCapability(claims, ScopeRegister) {
		err = status.Errorf(codes.PermissionDenied, "token lacks %s", ScopeRegister)
		return nil, err
	}
	if !tokens.HasAudience(claims, s.name) {
		err = status.Errorf(codes.PermissionDenied, "token audience does not include %s", s.name)
		return nil, err
	}

	s.mu.Lock()
	s.endpoints[req.GetServerName()] = &endpointRecord{
		grpcURL:      grpcURL,
		capabilities: req.GetCapabilities(),
		registeredAt: time.Now(),
	}
	registeredEndpoints.Set(float64(len(s.endpoints)))
	s.mu.Unlock()

	s.log.Infof("registered %s at %s with %d capabilities", req.GetServerName(), grpcURL, len(req.GetCapabilities()))
	return &pb.RegisterResponse{Success: true, Message: "registered " + req.GetServerName()}, nil
}

func (s *server) Deregister(ctx context.Context, req *pb.DeregisterRequest) (*pb.DeregisterResponse, error) {
	began := time.Now()
	client := "unknown"
	var err error
	defer func() {
		s.emit("Deregister", client, began, err)
	}()

	if req.GetServerName() == "" {
		err = status.Error(codes.InvalidArgument, "missing server_name")
		return nil, err
	}

	claims, verr := s.verifier.Verify(req.GetRegistrationToken())
	if verr != nil {
		err = status.Error(codes.Unauthenticated, verr.Error())
		return nil, err
	}
	client = claims.Subject
	if !tokens.HasCapability(claims, ScopeRegister) {
		err = status.Errorf(codes.PermissionDenied, "token lacks %s", ScopeRegister)
		return nil, err
	}
	if !tokens.HasAudience(claims, s.name) {
		err = status.Errorf(codes.PermissionDenied, "token audience does not include %s", s.name)
		return nil, err
	}

	s.mu.Lock()
	_, existed := s.endpoints[req.GetServerName()]
	delete(s.endpoints, req.GetServerName())
	registeredEndpoints.Set(float64(len(s.endpoints)))
	s.mu.Unlock()

	message := "deregistered " + req.GetServerName()
	if !existed {
		message = req.GetServerName() + " was not registered"
	}
	return &pb.DeregisterResponse{Success: true, Message: message}, nil
}

func (s *server) Lookup(ctx context.Context, req *pb.LookupRequest) (*pb.LookupResponse, error) {
	began := time.Now()
	client := "unknown"
	var err error
	defer func() {
		s.emit("Lookup", client, began, err)
	}()

	claims, verr := s.verifier.Verify(req.GetRequesterToken())
	if verr != nil {
		err = status.Error(codes.Unauthenticated, verr.Error())
		return nil, err
	}
	client = claims.Subject
	if !tokens.HasCapability(claims, ScopeLookup) {
		err = status.Errorf(codes.PermissionDenied, "token lacks %s", ScopeLookup)
		return nil, err
	}

	s.mu.Lock()
	matches := make([]*pb.EndpointDescriptor, 0, len(s.endpoints))
	for name, record := range s.endpoints {
		// The audience check is the registry's access control for
		// enumeration: an endpoint outside the requester's audience must not
		// appear in the response at all.
		if !tokens.HasAudience(claims, name) {
			continue
		}
		if !capabilityMatch(record.capabilities, req.GetCapabilityFilter()) {
			continue
		}
		matches = append(matches, &pb.EndpointDescriptor{
			ServerName:   name,
			GrpcUrl:      record.grpcURL,
			Capabilities: record.capabilities,
		})
	}
	s.mu.Unlock()

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ServerName < matches[j].ServerName
	})
	return &pb.LookupResponse{Endpoints: matches}, nil
}

// capabilityMatch reports whether any declared capability satisfies any
// filter entry under the wildcard rule.
func capabilityMatch(declared, filter []string) bool {
	for _, granted := range declared {
		for _, required := range filter {
			if tokens.Matches(granted, required) {
				return true
			}
		}
	}
	return false
}

func addressFromMetadata(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(AddressMetadataKey)
	if len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}

func (s *server) sweepExpired() {
	ticker := time.NewTicker(s.endpointTTL / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-s.endpointTTL)
			s.mu.Lock()
			for name, record := range s.endpoints {
				if record.registeredAt.Before(cutoff) {
					delete(s.endpoints, name)
					s.log.Infof("expired %s", name)
				}
			}
			registeredEndpoints.Set(float64(len(s.endpoints)))
			s.mu.Unlock()
		case <-s.shutdown:
			return
		}
	}
}

func (s *server) emit(method, client string, began time.Time, err error) {
	s.emitter.Log(telemetry.NewRecord(method, client, time.Since(began), status.Code(err).String()))
}
