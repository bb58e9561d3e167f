// Package grpcapi exposes match control over gRPC. Messages are
// google.protobuf.Struct so no generated code is needed.
package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "chipduel.v1.Match"

const (
	methodDraw    = "/" + ServiceName + "/Draw"
	methodRestart = "/" + ServiceName + "/Restart"
	methodState   = "/" + ServiceName + "/State"
	methodHistory = "/" + ServiceName + "/History"
)

// MatchServer is the server side of chipduel.v1.Match.
type MatchServer interface {
	// Draw takes {"player": 1|2, "slot": 1..5}.
	Draw(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Restart(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	State(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	// History takes an optional {"limit": n}.
	History(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterMatchServer registers srv on s.
func RegisterMatchServer(s grpc.ServiceRegistrar, srv MatchServer) {
	s.RegisterService(&matchServiceDesc, srv)
}

var matchServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MatchServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Draw", Handler: drawHandler},
		{MethodName: "Restart", Handler: restartHandler},
		{MethodName: "State", Handler: stateHandler},
		{MethodName: "History", Handler: historyHandler},
	},
	Metadata: "chipduel/v1/match.proto",
}

func unary[Req any](
	method string,
	call func(MatchServer, context.Context, *Req) (*structpb.Struct, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MatchServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MatchServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var (
	drawHandler    = unary(methodDraw, MatchServer.Draw)
	restartHandler = unary(methodRestart, MatchServer.Restart)
	stateHandler   = unary(methodState, MatchServer.State)
	historyHandler = unary(methodHistory, MatchServer.History)
)

// Client calls chipduel.v1.Match.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client { return &Client{cc: cc} }

// Draw requests a draw for player (1 or 2) into slot (1..5).
func (c *Client) Draw(ctx context.Context, player, slot int, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(map[string]any{"player": player, "slot": slot})
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodDraw, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Restart(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodRestart, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) State(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodState, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) History(ctx context.Context, limit int, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodHistory, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
