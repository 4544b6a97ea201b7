// Hand-maintained gRPC bindings for the services in proto/mcp.proto, in the
// protoc-gen-go plugins=grpc shape.

package mcp

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ context.Context
var _ grpc.ClientConnInterface

// RegistryClient is the client API for the Registry service.
type RegistryClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Deregister(ctx context.Context, in *DeregisterRequest, opts ...grpc.CallOption) (*DeregisterResponse, error)
	Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error)
}

type registryClient struct {
	cc grpc.ClientConnInterface
}

func NewRegistryClient(cc grpc.ClientConnInterface) RegistryClient {
	return &registryClient{cc}
}

func (c *registryClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	err := c.cc.Invoke(ctx, "/mcp.Registry/Register", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *registryClient) Deregister(ctx context.Context, in *DeregisterRequest, opts ...grpc.CallOption) (*DeregisterResponse, error) {
	out := new(DeregisterResponse)
	err := c.cc.Invoke(ctx, "/mcp.Registry/Deregister", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *registryClient) Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error) {
	out := new(LookupResponse)
	err := c.cc.Invoke(ctx, "/mcp.Registry/Lookup", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RegistryServer is the server API for the Registry service.
type RegistryServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Deregister(context.Context, *DeregisterRequest) (*DeregisterResponse, error)
	Lookup(context.Context, *LookupRequest) (*LookupResponse, error)
}

// UnimplementedRegistryServer can be embedded to have forward compatible implementations.
type UnimplementedRegistryServer struct {
}

func (*UnimplementedRegistryServer) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Register not implemented")
}
func (*UnimplementedRegistryServer) Deregister(ctx context.Context, req *DeregisterRequest) (*DeregisterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Deregister not implemented")
}
func (*UnimplementedRegistryServer) Lookup(ctx context.Context, req *LookupRequest) (*LookupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Lookup not implemented")
}

func RegisterRegistryServer(s *grpc.Server, srv RegistryServer) {
	s.RegisterService(&_Registry_serviceDesc, srv)
}

func _Registry_Register_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistryServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mcp.Registry/Register",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegistryServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Registry_Deregister_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeregisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistryServer).Deregister(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mcp.Registry/Deregister",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegistryServer).Deregister(ctx, req.(*DeregisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Registry_Lookup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LookupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistryServer).Lookup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mcp.Registry/Lookup",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegistryServer).Lookup(ctx, req.(*LookupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Registry_serviceDesc = grpc.ServiceDesc{
	ServiceName: "mcp.Registry",
	HandlerType: (*RegistryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    _Registry_Register_Handler,
		},
		{
			MethodName: "Deregister",
			Handler:    _Registry_Deregister_Handler,
		},
		{
			MethodName: "Lookup",
			Handler:    _Registry_Lookup_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/mcp.proto",
}

// ContextToolClient is the client API for the ContextTool service.
type ContextToolClient interface {
	RequestContext(ctx context.Context, in *ContextRequest, opts ...grpc.CallOption) (*ContextResponse, error)
	SubscribeTelemetry(ctx context.Context, in *TelemetryRequest, opts ...grpc.CallOption) (ContextTool_SubscribeTelemetryClient, error)
	MultiModalExchange(ctx context.Context, opts ...grpc.CallOption) (ContextTool_MultiModalExchangeClient, error)
	InvokeTool(ctx context.Context, in *ToolRequest, opts ...grpc.CallOption) (*ToolResponse, error)
}

type contextToolClient struct {
	cc grpc.ClientConnInterface
}

func NewContextToolClient(cc grpc.ClientConnInterface) ContextToolClient {
	return &contextToolClient{cc}
}

func (c *contextToolClient) RequestContext(ctx context.Context, in *ContextRequest, opts ...grpc.CallOption) (*ContextResponse, error) {
	out := new(ContextResponse)
	err := c.cc.Invoke(ctx, "/mcp.ContextTool/RequestContext", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contextToolClient) SubscribeTelemetry(ctx context.Context, in *TelemetryRequest, opts ...grpc.CallOption) (ContextTool_SubscribeTelemetryClient, error) {
	stream, err := c.cc.NewStream(ctx, &_ContextTool_serviceDesc.Streams[0], "/mcp.ContextTool/SubscribeTelemetry", opts...)
	if err != nil {
		return nil, err
	}
	x := &contextToolSubscribeTelemetryClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type ContextTool_SubscribeTelemetryClient interface {
	Recv() (*TelemetryFrame, error)
	grpc.ClientStream
}

type contextToolSubscribeTelemetryClient struct {
	grpc.ClientStream
}

func (x *contextToolSubscribeTelemetryClient) Recv() (*TelemetryFrame, error) {
	m := new(TelemetryFrame)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *contextToolClient) MultiModalExchange(ctx context.Context, opts ...grpc.CallOption) (ContextTool_MultiModalExchangeClient, error) {
	stream, err := c.cc.NewStream(ctx, &_ContextTool_serviceDesc.Streams[1], "/mcp.ContextTool/MultiModalExchange", opts...)
	if err != nil {
		return nil, err
	}
	x := &contextToolMultiModalExchangeClient{stream}
	return x, nil
}

type ContextTool_MultiModalExchangeClient interface {
	Send(*MultiModalFrame) error
	Recv() (*MultiModalFrame, error)
	grpc.ClientStream
}

type contextToolMultiModalExchangeClient struct {
	grpc.ClientStream
}

func (x *contextToolMultiModalExchangeClient) Send(m *MultiModalFrame) error {
	return x.ClientStream.SendMsg(m)
}

func (x *contextToolMultiModalExchangeClient) Recv() (*MultiModalFrame, error) {
	m := new(MultiModalFrame)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *contextToolClient) InvokeTool(ctx context.Context, in *ToolRequest, opts ...grpc.CallOption) (*ToolResponse, error) {
	out := new(ToolResponse)
	err := c.cc.Invoke(ctx, "/mcp.ContextTool/InvokeTool", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ContextToolServer is the server API for the ContextTool service.
type ContextToolServer interface {
	RequestContext(context.Context, *ContextRequest) (*ContextResponse, error)
	SubscribeTelemetry(*TelemetryRequest, ContextTool_SubscribeTelemetryServer) error
	MultiModalExchange(ContextTool_MultiModalExchangeServer) error
	InvokeTool(context.Context, *ToolRequest) (*ToolResponse, error)
}

// UnimplementedContextToolServer can be embedded to have forward compatible implementations.
type UnimplementedContextToolServer struct {
}

func (*UnimplementedContextToolServer) RequestContext(ctx context.Context, req *ContextRequest) (*ContextResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequestContext not implemented")
}
func (*UnimplementedContextToolServer) SubscribeTelemetry(req *TelemetryRequest, srv ContextTool_SubscribeTelemetryServer) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeTelemetry not implemented")
}
func (*UnimplementedContextToolServer) MultiModalExchange(srv ContextTool_MultiModalExchangeServer) error {
	return status.Errorf(codes.Unimplemented, "method MultiModalExchange not implemented")
}
func (*UnimplementedContextToolServer) InvokeTool(ctx context.Context, req *ToolRequest) (*ToolResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InvokeTool not implemented")
}

func RegisterContextToolServer(s *grpc.Server, srv ContextToolServer) {
	s.RegisterService(&_ContextTool_serviceDesc, srv)
}

func _ContextTool_RequestContext_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ContextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContextToolServer).RequestContext(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mcp.ContextTool/RequestContext",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContextToolServer).RequestContext(ctx, req.(*ContextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContextTool_SubscribeTelemetry_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(TelemetryRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ContextToolServer).SubscribeTelemetry(m, &contextToolSubscribeTelemetryServer{stream})
}

type ContextTool_SubscribeTelemetryServer interface {
	Send(*TelemetryFrame) error
	grpc.ServerStream
}

type contextToolSubscribeTelemetryServer struct {
	grpc.ServerStream
}

func (x *contextToolSubscribeTelemetryServer) Send(m *TelemetryFrame) error {
	return x.ServerStream.SendMsg(m)
}

func _ContextTool_MultiModalExchange_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(ContextToolServer).MultiModalExchange(&contextToolMultiModalExchangeServer{stream})
}

type ContextTool_MultiModalExchangeServer interface {
	Send(*MultiModalFrame) error
	Recv() (*MultiModalFrame, error)
	grpc.ServerStream
}

type contextToolMultiModalExchangeServer struct {
	grpc.ServerStream
}

func (x *contextToolMultiModalExchangeServer) Send(m *MultiModalFrame) error {
	return x.ServerStream.SendMsg(m)
}

func (x *contextToolMultiModalExchangeServer) Recv() (*MultiModalFrame, error) {
	m := new(MultiModalFrame)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _ContextTool_InvokeTool_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ToolRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContextToolServer).InvokeTool(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mcp.ContextTool/InvokeTool",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContextToolServer).InvokeTool(ctx, req.(*ToolRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _ContextTool_serviceDesc = grpc.ServiceDesc{
	ServiceName: "mcp.ContextTool",
	HandlerType: (*ContextToolServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RequestContext",
			Handler:    _ContextTool_RequestContext_Handler,
		},
		{
			MethodName: "InvokeTool",
			Handler:    _ContextTool_InvokeTool_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeTelemetry",
			Handler:       _ContextTool_SubscribeTelemetry_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "MultiModalExchange",
			Handler:       _ContextTool_MultiModalExchange_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "proto/mcp.proto",
}

// EventBusClient is the client API for the EventBus service.
type EventBusClient interface {
	Publish(ctx context.Context, in *EventPublishRequest, opts ...grpc.CallOption) (*EventPublishResponse, error)
	Subscribe(ctx context.Context, in *EventSubscribeRequest, opts ...grpc.CallOption) (EventBus_SubscribeClient, error)
}

type eventBusClient struct {
	cc grpc.ClientConnInterface
}

func NewEventBusClient(cc grpc.ClientConnInterface) EventBusClient {
	return &eventBusClient{cc}
}

func (c *eventBusClient) Publish(ctx context.Context, in *EventPublishRequest, opts ...grpc.CallOption) (*EventPublishResponse, error) {
	out := new(EventPublishResponse)
	err := c.cc.Invoke(ctx, "/mcp.EventBus/Publish", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventBusClient) Subscribe(ctx context.Context, in *EventSubscribeRequest, opts ...grpc.CallOption) (EventBus_SubscribeClient, error) {
	stream, err := c.cc.NewStream(ctx, &_EventBus_serviceDesc.Streams[0], "/mcp.EventBus/Subscribe", opts...)
	if err != nil {
		return nil, err
	}
	x := &eventBusSubscribeClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type EventBus_SubscribeClient interface {
	Recv() (*EventEnvelope, error)
	grpc.ClientStream
}

type eventBusSubscribeClient struct {
	grpc.ClientStream
}

func (x *eventBusSubscribeClient) Recv() (*EventEnvelope, error) {
	m := new(EventEnvelope)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// EventBusServer is the server API for the EventBus service.
type EventBusServer interface {
	Publish(context.Context, *EventPublishRequest) (*EventPublishResponse, error)
	Subscribe(*EventSubscribeRequest, EventBus_SubscribeServer) error
}

// UnimplementedEventBusServer can be embedded to have forward compatible implementations.
type UnimplementedEventBusServer struct {
}

func (*UnimplementedEventBusServer) Publish(ctx context.Context, req *EventPublishRequest) (*EventPublishResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Publish not implemented")
}
func (*UnimplementedEventBusServer) Subscribe(req *EventSubscribeRequest, srv EventBus_SubscribeServer) error {
	return status.Errorf(codes.Unimplemented, "method Subscribe not implemented")
}

func RegisterEventBusServer(s *grpc.Server, srv EventBusServer) {
	s.RegisterService(&_EventBus_serviceDesc, srv)
}

func _EventBus_Publish_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EventPublishRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EventBusServer).Publish(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mcp.EventBus/Publish",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EventBusServer).Publish(ctx, req.(*EventPublishRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EventBus_Subscribe_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(EventSubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(EventBusServer).Subscribe(m, &eventBusSubscribeServer{stream})
}

type EventBus_SubscribeServer interface {
	Send(*EventEnvelope) error
	grpc.ServerStream
}

type eventBusSubscribeServer struct {
	grpc.ServerStream
}

func (x *eventBusSubscribeServer) Send(m *EventEnvelope) error {
	return x.ServerStream.SendMsg(m)
}

var _EventBus_serviceDesc = grpc.ServiceDesc{
	ServiceName: "mcp.EventBus",
	HandlerType: (*EventBusServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Publish",
			Handler:    _EventBus_Publish_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Subscribe",
			Handler:       _EventBus_Subscribe_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "proto/mcp.proto",
}
