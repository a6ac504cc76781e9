package grpc

import (
	"context"

	"github.com/sirupsen/logrus"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the name clients may pass in HealthCheckRequest.Service.
const ServiceName = "sessionkeys.SessionKeyService"

type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthServer reports SERVING while the session key store answers pings.
type HealthServer struct {
	healthpb.UnimplementedHealthServer
	db Pinger
}

func NewHealthServer(db Pinger) *HealthServer {
	return &HealthServer{db: db}
}

func (s *HealthServer) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	if err := s.db.PingContext(ctx); err != nil {
		logrus.WithError(err).Warn("Health check failed: database unreachable (grpc)")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
