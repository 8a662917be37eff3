// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/typedconf/models"
	"google.golang.org/grpc"
)

const (
	ServiceName = "typedconf.Conf"

	MethodGet    = "/" + ServiceName + "/Get"
	MethodReload = "/" + ServiceName + "/Reload"
)

// GetRequest selects a value by dotted or slashed path. An empty path
// selects the whole tree.
type GetRequest struct {
	Path string `json:"path"`
}

// GetResponse carries the selected value and the fingerprint of the
// snapshot it was read from.
type GetResponse struct {
	Path        string `json:"path"`
	Value       any    `json:"value"`
	Fingerprint string `json:"fingerprint"`
}

type ReloadRequest struct{}

// ConfServer is the server API of the typedconf.Conf service.
type ConfServer interface {
	Get(ctx context.Context, req *GetRequest) (*GetResponse, error)
	Reload(ctx context.Context, req *ReloadRequest) (*models.ReloadResponse, error)
}

// ConfServiceDesc describes typedconf.Conf for [grpc.ServiceRegistrar].
var ConfServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ConfServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Get", Handler: getHandler},
		{MethodName: "Reload", Handler: reloadHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "typedconf.conf",
}

// RegisterConfServer registers srv on s.
func RegisterConfServer(s grpc.ServiceRegistrar, srv ConfServer) {
	s.RegisterService(&ConfServiceDesc, srv)
}

func getHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConfServer).Get(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodGet}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConfServer).Get(ctx, req.(*GetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func reloadHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ReloadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConfServer).Reload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodReload}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConfServer).Reload(ctx, req.(*ReloadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ConfClient is the client API of the typedconf.Conf service.
type ConfClient struct {
	cc grpc.ClientConnInterface
}

// NewConfClient returns a client calling typedconf.Conf over cc. The
// connection must use [Codec], e.g. via
// grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})).
func NewConfClient(cc grpc.ClientConnInterface) *ConfClient {
	return &ConfClient{cc: cc}
}

func (c *ConfClient) Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*GetResponse, error) {
	out := new(GetResponse)
	if err := c.cc.Invoke(ctx, MethodGet, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ConfClient) Reload(ctx context.Context, in *ReloadRequest, opts ...grpc.CallOption) (*models.ReloadResponse, error) {
	out := new(models.ReloadResponse)
	if err := c.cc.Invoke(ctx, MethodReload, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
