package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/keysafepb"
	"github.com/keysafe-protocol/keysafe/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := newBareServer()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", newBareServer().logger, nil, nil, nil, testSecret)
	err := srv.Run(context.Background())
	assert.Error(t, err)
}

func dialBufconn(t *testing.T) keysafepb.KeysafeClient {
	t.Helper()

	s, _ := newTestServer(t)
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})

	// health answers once Serve has flipped the status
	hc := healthpb.NewHealthClient(conn)
	require.Eventually(t, func() bool {
		resp, err := hc.Check(context.Background(), &healthpb.HealthCheckRequest{Service: keysafepb.Keysafe_ServiceDesc.ServiceName})
		return err == nil && resp.Status == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 20*time.Millisecond)

	return keysafepb.NewKeysafeClient(conn)
}

func authed(t *testing.T, identity string) context.Context {
	t.Helper()
	tok, err := auth.GenerateToken(identity, []byte(testSecret), time.Minute)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, tok)
}

func TestServe_EndToEnd(t *testing.T) {
	c := dialBufconn(t)
	ctx := context.Background()

	pong, err := c.Ping(ctx, &keysafepb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, common.ServiceName, pong.Service)
	require.NotNil(t, pong.Time)
	assert.WithinDuration(t, time.Now(), pong.Time.AsTime(), time.Minute)

	_, err = c.Transfer(ctx, &keysafepb.TransferRequest{To: "alice", Amount: 3})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	for _, n := range []string{"n1", "n2", "n3"} {
		out, err := c.RegisterNode(authed(t, n), &keysafepb.RegisterNodeRequest{PublicKey: "pk-" + n})
		require.NoError(t, err)
		require.True(t, out.Applied)
	}
	_, err = c.RegisterUser(authed(t, "alice"), &keysafepb.RegisterUserRequest{
		PublicKey:  "pk-alice",
		Custodians: custodianMsgs("n1", "n2", "n3"),
	})
	require.NoError(t, err)

	_, err = c.TransferChecked(authed(t, "root"), &keysafepb.TransferRequest{To: "alice", Amount: 3})
	require.NoError(t, err)

	out, err := c.StartRecovery(authed(t, "alice"), &keysafepb.StartRecoveryRequest{})
	require.NoError(t, err)
	require.True(t, out.Applied)

	res, err := c.SubmitConfirmation(authed(t, "n1"), &keysafepb.SubmitConfirmationRequest{UserId: "alice", Proof: "p1"})
	require.NoError(t, err)
	assert.False(t, res.Finalized)

	res, err = c.SubmitConfirmation(authed(t, "n3"), &keysafepb.SubmitConfirmationRequest{UserId: "alice", Proof: "p3"})
	require.NoError(t, err)
	assert.True(t, res.Finalized)
	assert.Equal(t, "finalized", res.Session.Status)

	for id, want := range map[string]uint64{"alice": 0, "n1": 1, "n2": 1, "n3": 1, "root": 29997} {
		b, err := c.BalanceOf(ctx, &keysafepb.BalanceOfRequest{Identity: id})
		require.NoError(t, err)
		assert.Equal(t, want, b.Balance, id)
	}

	total, err := c.TotalIssued(ctx, &keysafepb.TotalIssuedRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(30000), total.Amount)
}
