// Hand-maintained protobuf bindings for proto/mcp.proto.
//
// The types below are kept in the legacy protoc-gen-go shape (struct tags,
// XXX_OneofWrappers) so the protobuf runtime derives descriptors from the
// tags at run time. Keep field numbers in sync with proto/mcp.proto; numbers
// are stable and must not be reused.

package mcp

import (
	proto "github.com/golang/protobuf/proto"
)

type RegisterRequest struct {
	ServerName           string   `protobuf:"bytes,1,opt,name=server_name,json=serverName,proto3" json:"server_name,omitempty"`
	Capabilities         []string `protobuf:"bytes,2,rep,name=capabilities,proto3" json:"capabilities,omitempty"`
	RegistrationToken    string   `protobuf:"bytes,3,opt,name=registration_token,json=registrationToken,proto3" json:"registration_token,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *RegisterRequest) Reset()         { *m = RegisterRequest{} }
func (m *RegisterRequest) String() string { return proto.CompactTextString(m) }
func (*RegisterRequest) ProtoMessage()    {}

func (m *RegisterRequest) GetServerName() string {
	if m != nil {
		return m.ServerName
	}
	return ""
}

func (m *RegisterRequest) GetCapabilities() []string {
	if m != nil {
		return m.Capabilities
	}
	return nil
}

func (m *RegisterRequest) GetRegistrationToken() string {
	if m != nil {
		return m.RegistrationToken
	}
	return ""
}

type RegisterResponse struct {
	Success              bool     `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message              string   `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *RegisterResponse) Reset()         { *m = RegisterResponse{} }
func (m *RegisterResponse) String() string { return proto.CompactTextString(m) }
func (*RegisterResponse) ProtoMessage()    {}

func (m *RegisterResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *RegisterResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type DeregisterRequest struct {
	ServerName           string   `protobuf:"bytes,1,opt,name=server_name,json=serverName,proto3" json:"server_name,omitempty"`
	RegistrationToken    string   `protobuf:"bytes,2,opt,name=registration_token,json=registrationToken,proto3" json:"registration_token,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *DeregisterRequest) Reset()         { *m = DeregisterRequest{} }
func (m *DeregisterRequest) String() string { return proto.CompactTextString(m) }
func (*DeregisterRequest) ProtoMessage()    {}

func (m *DeregisterRequest) GetServerName() string {
	if m != nil {
		return m.ServerName
	}
	return ""
}

func (m *DeregisterRequest) GetRegistrationToken() string {
	if m != nil {
		return m.RegistrationToken
	}
	return ""
}

type DeregisterResponse struct {
	Success              bool     `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message              string   `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *DeregisterResponse) Reset()         { *m = DeregisterResponse{} }
func (m *DeregisterResponse) String() string { return proto.CompactTextString(m) }
func (*DeregisterResponse) ProtoMessage()    {}

func (m *DeregisterResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *DeregisterResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type LookupRequest struct {
	RequesterToken       string   `protobuf:"bytes,1,opt,name=requester_token,json=requesterToken,proto3" json:"requester_token,omitempty"`
	CapabilityFilter     []string `protobuf:"bytes,2,rep,name=capability_filter,json=capabilityFilter,proto3" json:"capability_filter,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *LookupRequest) Reset()         { *m = LookupRequest{} }
func (m *LookupRequest) String() string { return proto.CompactTextString(m) }
func (*LookupRequest) ProtoMessage()    {}

func (m *LookupRequest) GetRequesterToken() string {
	if m != nil {
		return m.RequesterToken
	}
	return ""
}

func (m *LookupRequest) GetCapabilityFilter() []string {
	if m != nil {
		return m.CapabilityFilter
	}
	return nil
}

type EndpointDescriptor struct {
	ServerName           string   `protobuf:"bytes,1,opt,name=server_name,json=serverName,proto3" json:"server_name,omitempty"`
	GrpcUrl              string   `protobuf:"bytes,2,opt,name=grpc_url,json=grpcUrl,proto3" json:"grpc_url,omitempty"`
	Capabilities         []string `protobuf:"bytes,3,rep,name=capabilities,proto3" json:"capabilities,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *EndpointDescriptor) Reset()         { *m = EndpointDescriptor{} }
func (m *EndpointDescriptor) String() string { return proto.CompactTextString(m) }
func (*EndpointDescriptor) ProtoMessage()    {}

func (m *EndpointDescriptor) GetServerName() string {
	if m != nil {
		return m.ServerName
	}
	return ""
}

func (m *EndpointDescriptor) GetGrpcUrl() string {
	if m != nil {
		return m.GrpcUrl
	}
	return ""
}

func (m *EndpointDescriptor) GetCapabilities() []string {
	if m != nil {
		return m.Capabilities
	}
	return nil
}

type LookupResponse struct {
	Endpoints            []*EndpointDescriptor `protobuf:"bytes,1,rep,name=endpoints,proto3" json:"endpoints,omitempty"`
	XXX_NoUnkeyedLiteral struct{}              `json:"-"`
	XXX_unrecognized     []byte                `json:"-"`
	XXX_sizecache        int32                 `json:"-"`
}

func (m *LookupResponse) Reset()         { *m = LookupResponse{} }
func (m *LookupResponse) String() string { return proto.CompactTextString(m) }
func (*LookupResponse) ProtoMessage()    {}

func (m *LookupResponse) GetEndpoints() []*EndpointDescriptor {
	if m != nil {
		return m.Endpoints
	}
	return nil
}

type ContextRequest struct {
	ContextKey           string            `protobuf:"bytes,1,opt,name=context_key,json=contextKey,proto3" json:"context_key,omitempty"`
	Parameters           map[string]string `protobuf:"bytes,2,rep,name=parameters,proto3" json:"parameters,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	CapabilityToken      string            `protobuf:"bytes,3,opt,name=capability_token,json=capabilityToken,proto3" json:"capability_token,omitempty"`
	AgentDelegationProof string            `protobuf:"bytes,4,opt,name=agent_delegation_proof,json=agentDelegationProof,proto3" json:"agent_delegation_proof,omitempty"`
	XXX_NoUnkeyedLiteral struct{}          `json:"-"`
	XXX_unrecognized     []byte            `json:"-"`
	XXX_sizecache        int32             `json:"-"`
}

func (m *ContextRequest) Reset()         { *m = ContextRequest{} }
func (m *ContextRequest) String() string { return proto.CompactTextString(m) }
func (*ContextRequest) ProtoMessage()    {}

func (m *ContextRequest) GetContextKey() string {
	if m != nil {
		return m.ContextKey
	}
	return ""
}

func (m *ContextRequest) GetParameters() map[string]string {
	if m != nil {
		return m.Parameters
	}
	return nil
}

func (m *ContextRequest) GetCapabilityToken() string {
	if m != nil {
		return m.CapabilityToken
	}
	return ""
}

func (m *ContextRequest) GetAgentDelegationProof() string {
	if m != nil {
		return m.AgentDelegationProof
	}
	return ""
}

type ContextResponse struct {
	SerializedValue      []byte   `protobuf:"bytes,1,opt,name=serialized_value,json=serializedValue,proto3" json:"serialized_value,omitempty"`
	Metadata             []string `protobuf:"bytes,2,rep,name=metadata,proto3" json:"metadata,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *ContextResponse) Reset()         { *m = ContextResponse{} }
func (m *ContextResponse) String() string { return proto.CompactTextString(m) }
func (*ContextResponse) ProtoMessage()    {}

func (m *ContextResponse) GetSerializedValue() []byte {
	if m != nil {
		return m.SerializedValue
	}
	return nil
}

func (m *ContextResponse) GetMetadata() []string {
	if m != nil {
		return m.Metadata
	}
	return nil
}

type TelemetryRequest struct {
	StreamId             string   `protobuf:"bytes,1,opt,name=stream_id,json=streamId,proto3" json:"stream_id,omitempty"`
	CapabilityToken      string   `protobuf:"bytes,2,opt,name=capability_token,json=capabilityToken,proto3" json:"capability_token,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *TelemetryRequest) Reset()         { *m = TelemetryRequest{} }
func (m *TelemetryRequest) String() string { return proto.CompactTextString(m) }
func (*TelemetryRequest) ProtoMessage()    {}

func (m *TelemetryRequest) GetStreamId() string {
	if m != nil {
		return m.StreamId
	}
	return ""
}

func (m *TelemetryRequest) GetCapabilityToken() string {
	if m != nil {
		return m.CapabilityToken
	}
	return ""
}

type TelemetryFrame struct {
	TimestampMs          int64    `protobuf:"varint,1,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	Payload              []byte   `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *TelemetryFrame) Reset()         { *m = TelemetryFrame{} }
func (m *TelemetryFrame) String() string { return proto.CompactTextString(m) }
func (*TelemetryFrame) ProtoMessage()    {}

func (m *TelemetryFrame) GetTimestampMs() int64 {
	if m != nil {
		return m.TimestampMs
	}
	return 0
}

func (m *TelemetryFrame) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

type TextChunk struct {
	Content              string   `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Sequence             uint64   `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *TextChunk) Reset()         { *m = TextChunk{} }
func (m *TextChunk) String() string { return proto.CompactTextString(m) }
func (*TextChunk) ProtoMessage()    {}

func (m *TextChunk) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

func (m *TextChunk) GetSequence() uint64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

type ImageFrame struct {
	JpegData             []byte   `protobuf:"bytes,1,opt,name=jpeg_data,json=jpegData,proto3" json:"jpeg_data,omitempty"`
	Width                uint32   `protobuf:"varint,2,opt,name=width,proto3" json:"width,omitempty"`
	Height               uint32   `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
	Sequence             uint64   `protobuf:"varint,4,opt,name=sequence,proto3" json:"sequence,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *ImageFrame) Reset()         { *m = ImageFrame{} }
func (m *ImageFrame) String() string { return proto.CompactTextString(m) }
func (*ImageFrame) ProtoMessage()    {}

func (m *ImageFrame) GetJpegData() []byte {
	if m != nil {
		return m.JpegData
	}
	return nil
}

func (m *ImageFrame) GetWidth() uint32 {
	if m != nil {
		return m.Width
	}
	return 0
}

func (m *ImageFrame) GetHeight() uint32 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *ImageFrame) GetSequence() uint64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

type AudioFrame struct {
	PcmData              []byte   `protobuf:"bytes,1,opt,name=pcm_data,json=pcmData,proto3" json:"pcm_data,omitempty"`
	TimestampMs          int64    `protobuf:"varint,2,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *AudioFrame) Reset()         { *m = AudioFrame{} }
func (m *AudioFrame) String() string { return proto.CompactTextString(m) }
func (*AudioFrame) ProtoMessage()    {}

func (m *AudioFrame) GetPcmData() []byte {
	if m != nil {
		return m.PcmData
	}
	return nil
}

func (m *AudioFrame) GetTimestampMs() int64 {
	if m != nil {
		return m.TimestampMs
	}
	return 0
}

type BinaryBlob struct {
	Data                 []byte   `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	MimeType             string   `protobuf:"bytes,2,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Sequence             uint64   `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *BinaryBlob) Reset()         { *m = BinaryBlob{} }
func (m *BinaryBlob) String() string { return proto.CompactTextString(m) }
func (*BinaryBlob) ProtoMessage()    {}

func (m *BinaryBlob) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

func (m *BinaryBlob) GetMimeType() string {
	if m != nil {
		return m.MimeType
	}
	return ""
}

func (m *BinaryBlob) GetSequence() uint64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

type MultiModalFrame struct {
	// Types that are valid to be assigned to Modality:
	//	*MultiModalFrame_Text
	//	*MultiModalFrame_Image
	//	*MultiModalFrame_Audio
	//	*MultiModalFrame_Blob
	Modality             isMultiModalFrame_Modality `protobuf_oneof:"modality"`
	XXX_NoUnkeyedLiteral struct{}                   `json:"-"`
	XXX_unrecognized     []byte                     `json:"-"`
	XXX_sizecache        int32                      `json:"-"`
}

func (m *MultiModalFrame) Reset()         { *m = MultiModalFrame{} }
func (m *MultiModalFrame) String() string { return proto.CompactTextString(m) }
func (*MultiModalFrame) ProtoMessage()    {}

type isMultiModalFrame_Modality interface {
	isMultiModalFrame_Modality()
}

type MultiModalFrame_Text struct {
	Text *TextChunk `protobuf:"bytes,1,opt,name=text,proto3,oneof"`
}

type MultiModalFrame_Image struct {
	Image *ImageFrame `protobuf:"bytes,2,opt,name=image,proto3,oneof"`
}

type MultiModalFrame_Audio struct {
	Audio *AudioFrame `protobuf:"bytes,3,opt,name=audio,proto3,oneof"`
}

type MultiModalFrame_Blob struct {
	Blob *BinaryBlob `protobuf:"bytes,4,opt,name=blob,proto3,oneof"`
}

func (*MultiModalFrame_Text) isMultiModalFrame_Modality()  {}
func (*MultiModalFrame_Image) isMultiModalFrame_Modality() {}
func (*MultiModalFrame_Audio) isMultiModalFrame_Modality() {}
func (*MultiModalFrame_Blob) isMultiModalFrame_Modality()  {}

func (m *MultiModalFrame) GetModality() isMultiModalFrame_Modality {
	if m != nil {
		return m.Modality
	}
	return nil
}

func (m *MultiModalFrame) GetText() *TextChunk {
	if x, ok := m.GetModality().(*MultiModalFrame_Text); ok {
		return x.Text
	}
	return nil
}

func (m *MultiModalFrame) GetImage() *ImageFrame {
	if x, ok := m.GetModality().(*MultiModalFrame_Image); ok {
		return x.Image
	}
	return nil
}

func (m *MultiModalFrame) GetAudio() *AudioFrame {
	if x, ok := m.GetModality().(*MultiModalFrame_Audio); ok {
		return x.Audio
	}
	return nil
}

func (m *MultiModalFrame) GetBlob() *BinaryBlob {
	if x, ok := m.GetModality().(*MultiModalFrame_Blob); ok {
		return x.Blob
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*MultiModalFrame) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*MultiModalFrame_Text)(nil),
		(*MultiModalFrame_Image)(nil),
		(*MultiModalFrame_Audio)(nil),
		(*MultiModalFrame_Blob)(nil),
	}
}

type ToolRequest struct {
	ToolName             string            `protobuf:"bytes,1,opt,name=tool_name,json=toolName,proto3" json:"tool_name,omitempty"`
	Arguments            map[string]string `protobuf:"bytes,2,rep,name=arguments,proto3" json:"arguments,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	CapabilityToken      string            `protobuf:"bytes,3,opt,name=capability_token,json=capabilityToken,proto3" json:"capability_token,omitempty"`
	AgentDelegationProof string            `protobuf:"bytes,4,opt,name=agent_delegation_proof,json=agentDelegationProof,proto3" json:"agent_delegation_proof,omitempty"`
	XXX_NoUnkeyedLiteral struct{}          `json:"-"`
	XXX_unrecognized     []byte            `json:"-"`
	XXX_sizecache        int32             `json:"-"`
}

func (m *ToolRequest) Reset()         { *m = ToolRequest{} }
func (m *ToolRequest) String() string { return proto.CompactTextString(m) }
func (*ToolRequest) ProtoMessage()    {}

func (m *ToolRequest) GetToolName() string {
	if m != nil {
		return m.ToolName
	}
	return ""
}

func (m *ToolRequest) GetArguments() map[string]string {
	if m != nil {
		return m.Arguments
	}
	return nil
}

func (m *ToolRequest) GetCapabilityToken() string {
	if m != nil {
		return m.CapabilityToken
	}
	return ""
}

func (m *ToolRequest) GetAgentDelegationProof() string {
	if m != nil {
		return m.AgentDelegationProof
	}
	return ""
}

type ToolResponse struct {
	Success              bool              `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Outputs              map[string][]byte `protobuf:"bytes,2,rep,name=outputs,proto3" json:"outputs,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	Warnings             []string          `protobuf:"bytes,3,rep,name=warnings,proto3" json:"warnings,omitempty"`
	XXX_NoUnkeyedLiteral struct{}          `json:"-"`
	XXX_unrecognized     []byte            `json:"-"`
	XXX_sizecache        int32             `json:"-"`
}

func (m *ToolResponse) Reset()         { *m = ToolResponse{} }
func (m *ToolResponse) String() string { return proto.CompactTextString(m) }
func (*ToolResponse) ProtoMessage()    {}

func (m *ToolResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *ToolResponse) GetOutputs() map[string][]byte {
	if m != nil {
		return m.Outputs
	}
	return nil
}

func (m *ToolResponse) GetWarnings() []string {
	if m != nil {
		return m.Warnings
	}
	return nil
}

type EventPublishRequest struct {
	Topic                string   `protobuf:"bytes,1,opt,name=topic,proto3" json:"topic,omitempty"`
	Payload              []byte   `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	PublisherToken       string   `protobuf:"bytes,3,opt,name=publisher_token,json=publisherToken,proto3" json:"publisher_token,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *EventPublishRequest) Reset()         { *m = EventPublishRequest{} }
func (m *EventPublishRequest) String() string { return proto.CompactTextString(m) }
func (*EventPublishRequest) ProtoMessage()    {}

func (m *EventPublishRequest) GetTopic() string {
	if m != nil {
		return m.Topic
	}
	return ""
}

func (m *EventPublishRequest) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *EventPublishRequest) GetPublisherToken() string {
	if m != nil {
		return m.PublisherToken
	}
	return ""
}

type EventPublishResponse struct {
	Success              bool     `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message              string   `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *EventPublishResponse) Reset()         { *m = EventPublishResponse{} }
func (m *EventPublishResponse) String() string { return proto.CompactTextString(m) }
func (*EventPublishResponse) ProtoMessage()    {}

func (m *EventPublishResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *EventPublishResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type EventSubscribeRequest struct {
	TopicFilter          string   `protobuf:"bytes,1,opt,name=topic_filter,json=topicFilter,proto3" json:"topic_filter,omitempty"`
	SubscriberToken      string   `protobuf:"bytes,2,opt,name=subscriber_token,json=subscriberToken,proto3" json:"subscriber_token,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *EventSubscribeRequest) Reset()         { *m = EventSubscribeRequest{} }
func (m *EventSubscribeRequest) String() string { return proto.CompactTextString(m) }
func (*EventSubscribeRequest) ProtoMessage()    {}

func (m *EventSubscribeRequest) GetTopicFilter() string {
	if m != nil {
		return m.TopicFilter
	}
	return ""
}

func (m *EventSubscribeRequest) GetSubscriberToken() string {
	if m != nil {
		return m.SubscriberToken
	}
	return ""
}

type EventEnvelope struct {
	Topic                string   `protobuf:"bytes,1,opt,name=topic,proto3" json:"topic,omitempty"`
	Payload              []byte   `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	SequenceId           uint64   `protobuf:"varint,3,opt,name=sequence_id,json=sequenceId,proto3" json:"sequence_id,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *EventEnvelope) Reset()         { *m = EventEnvelope{} }
func (m *EventEnvelope) String() string { return proto.CompactTextString(m) }
func (*EventEnvelope) ProtoMessage()    {}

func (m *EventEnvelope) GetTopic() string {
	if m != nil {
		return m.Topic
	}
	return ""
}

func (m *EventEnvelope) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *EventEnvelope) GetSequenceId() uint64 {
	if m != nil {
		return m.SequenceId
	}
	return 0
}
