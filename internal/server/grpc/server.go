// Package grpc exposes the Keysafe services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/keysafepb"
	"github.com/keysafe-protocol/keysafe/internal/logging"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"github.com/keysafe-protocol/keysafe/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type LedgerService interface {
	TotalIssued(ctx context.Context) (models.Balance, error)
	BalanceOf(ctx context.Context, id models.Identity) (models.Balance, error)
	Transfer(ctx context.Context, caller, to models.Identity, amount models.Balance) error
	TransferChecked(ctx context.Context, from, to models.Identity, amount models.Balance) error
}

type RegistryService interface {
	RegisterNode(ctx context.Context, caller models.Identity, publicKey string) (models.Outcome, error)
	GetNode(ctx context.Context, id models.Identity) (*models.Node, error)
	RegisterUser(ctx context.Context, caller models.Identity, publicKey string, custodians [models.CustodianCount]models.Custodian) (models.Outcome, error)
	GetUser(ctx context.Context, id models.Identity) (*models.User, error)
}

type RecoveryService interface {
	StartRecovery(ctx context.Context, caller models.Identity) (models.Outcome, error)
	SubmitConfirmation(ctx context.Context, caller, userID models.Identity, proof string) (services.ConfirmationResult, error)
	GetSession(ctx context.Context, userID models.Identity) (*models.Recovery, error)
}

type GRPCServer struct {
	keysafepb.UnimplementedKeysafeServer
	address   string
	ledger    LedgerService
	registry  RegistryService
	recovery  RecoveryService
	logger    logging.Logger
	jwtSecret []byte
	health    *health.Server
}

func NewGRPCServer(a string, l logging.Logger, ledger LedgerService, registry RegistryService, recovery RecoveryService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		ledger:    ledger,
		registry:  registry,
		recovery:  recovery,
		jwtSecret: []byte(secretKey),
		health:    health.NewServer(),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
	)
	keysafepb.RegisterKeysafeServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.health.SetServingStatus(keysafepb.Keysafe_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(common.ServiceName, healthpb.HealthCheckResponse_SERVING)
	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
