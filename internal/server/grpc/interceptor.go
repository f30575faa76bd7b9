package grpc

import (
	"context"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/keysafepb"
	"github.com/keysafe-protocol/keysafe/internal/server/auth"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const callerKey ctxKey = "caller"

// authenticatedMethods act on behalf of the caller and need an access token.
var authenticatedMethods = map[string]bool{
	keysafepb.Keysafe_Transfer_FullMethodName:           true,
	keysafepb.Keysafe_TransferChecked_FullMethodName:    true,
	keysafepb.Keysafe_RegisterNode_FullMethodName:       true,
	keysafepb.Keysafe_RegisterUser_FullMethodName:       true,
	keysafepb.Keysafe_StartRecovery_FullMethodName:      true,
	keysafepb.Keysafe_SubmitConfirmation_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !authenticatedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	identity, err := auth.IdentityFromToken(accessToken, s.jwtSecret)
	if err != nil {
		s.logger.Debug(ctx, "token rejected", "method", info.FullMethod, "error", err)
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	ctx = context.WithValue(ctx, callerKey, models.Identity(identity))
	return handler(ctx, req)
}

func callerFrom(ctx context.Context) (models.Identity, error) {
	id, ok := ctx.Value(callerKey).(models.Identity)
	if !ok || id == "" {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return id, nil
}
