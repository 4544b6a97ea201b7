package contexttool

import (
	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// NewClient creates a client for the ContextTool server at addr.
func NewClient(addr string) (pb.ContextToolClient, *grpc.ClientConn, error) {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return pb.NewContextToolClient(conn), conn, nil
}
