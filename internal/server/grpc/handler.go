package grpc

import (
	"context"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/keysafepb"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *keysafepb.PingRequest) (*keysafepb.PingResponse, error) {
	return &keysafepb.PingResponse{Service: common.ServiceName, Time: timestamppb.Now()}, nil
}

func (s *GRPCServer) TotalIssued(ctx context.Context, req *keysafepb.TotalIssuedRequest) (*keysafepb.TotalIssuedResponse, error) {
	total, err := s.ledger.TotalIssued(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "TotalIssued", err)
	}
	return &keysafepb.TotalIssuedResponse{Amount: uint64(total)}, nil
}

func (s *GRPCServer) BalanceOf(ctx context.Context, req *keysafepb.BalanceOfRequest) (*keysafepb.BalanceOfResponse, error) {
	b, err := s.ledger.BalanceOf(ctx, models.Identity(req.Identity))
	if err != nil {
		return nil, s.toStatus(ctx, "BalanceOf", err)
	}
	return &keysafepb.BalanceOfResponse{Identity: req.Identity, Balance: uint64(b)}, nil
}

func (s *GRPCServer) Transfer(ctx context.Context, req *keysafepb.TransferRequest) (*keysafepb.TransferResponse, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Transfer(ctx, caller, models.Identity(req.To), models.Balance(req.Amount)); err != nil {
		return nil, s.toStatus(ctx, "Transfer", err)
	}
	return &keysafepb.TransferResponse{}, nil
}

func (s *GRPCServer) TransferChecked(ctx context.Context, req *keysafepb.TransferRequest) (*keysafepb.TransferResponse, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.TransferChecked(ctx, caller, models.Identity(req.To), models.Balance(req.Amount)); err != nil {
		return nil, s.toStatus(ctx, "TransferChecked", err)
	}
	return &keysafepb.TransferResponse{}, nil
}

func outcomeResponse(o models.Outcome) *keysafepb.OutcomeResponse {
	return &keysafepb.OutcomeResponse{Applied: o.Applied, Reason: string(o.Reason)}
}

func (s *GRPCServer) RegisterNode(ctx context.Context, req *keysafepb.RegisterNodeRequest) (*keysafepb.OutcomeResponse, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.registry.RegisterNode(ctx, caller, req.PublicKey)
	if err != nil {
		return nil, s.toStatus(ctx, "RegisterNode", err)
	}
	return outcomeResponse(out), nil
}

func (s *GRPCServer) GetNode(ctx context.Context, req *keysafepb.GetNodeRequest) (*keysafepb.Node, error) {
	n, err := s.registry.GetNode(ctx, models.Identity(req.Id))
	if err != nil {
		return nil, s.toStatus(ctx, "GetNode", err)
	}
	return &keysafepb.Node{Id: string(n.ID), PublicKey: n.PublicKey}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *keysafepb.RegisterUserRequest) (*keysafepb.OutcomeResponse, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	custodians, err := custodiansFromRequest(req.Custodians)
	if err != nil {
		return nil, err
	}
	out, err := s.registry.RegisterUser(ctx, caller, req.PublicKey, custodians)
	if err != nil {
		return nil, s.toStatus(ctx, "RegisterUser", err)
	}
	return outcomeResponse(out), nil
}

func custodiansFromRequest(in []*keysafepb.Custodian) ([models.CustodianCount]models.Custodian, error) {
	var out [models.CustodianCount]models.Custodian
	if len(in) != models.CustodianCount {
		return out, status.Errorf(codes.InvalidArgument, "exactly %d custodians required, got %d", models.CustodianCount, len(in))
	}
	for i, c := range in {
		if c == nil {
			return out, status.Errorf(codes.InvalidArgument, "custodian %d is empty", i)
		}
		if c.Condition > 255 {
			return out, status.Errorf(codes.InvalidArgument, "custodian %d: condition %d out of range", i, c.Condition)
		}
		out[i] = models.Custodian{Condition: uint8(c.Condition), NodeID: models.Identity(c.NodeId)}
	}
	return out, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *keysafepb.GetUserRequest) (*keysafepb.User, error) {
	u, err := s.registry.GetUser(ctx, models.Identity(req.Id))
	if err != nil {
		return nil, s.toStatus(ctx, "GetUser", err)
	}
	resp := &keysafepb.User{Id: string(u.ID), PublicKey: u.PublicKey}
	for _, c := range u.Custodians {
		resp.Custodians = append(resp.Custodians, &keysafepb.Custodian{Condition: uint32(c.Condition), NodeId: string(c.NodeID)})
	}
	return resp, nil
}

func (s *GRPCServer) StartRecovery(ctx context.Context, req *keysafepb.StartRecoveryRequest) (*keysafepb.OutcomeResponse, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.recovery.StartRecovery(ctx, caller)
	if err != nil {
		return nil, s.toStatus(ctx, "StartRecovery", err)
	}
	return outcomeResponse(out), nil
}

func (s *GRPCServer) SubmitConfirmation(ctx context.Context, req *keysafepb.SubmitConfirmationRequest) (*keysafepb.SubmitConfirmationResponse, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.recovery.SubmitConfirmation(ctx, caller, models.Identity(req.UserId), req.Proof)
	if err != nil {
		return nil, s.toStatus(ctx, "SubmitConfirmation", err)
	}

	resp := &keysafepb.SubmitConfirmationResponse{
		Applied:       res.Applied,
		Reason:        string(res.Reason),
		Finalized:     res.Finalized,
		PayoutPending: res.PayoutPending,
	}
	if res.Session.UserID != "" {
		resp.Session = sessionMessage(&res.Session)
	}
	return resp, nil
}

func (s *GRPCServer) GetSession(ctx context.Context, req *keysafepb.GetSessionRequest) (*keysafepb.Session, error) {
	r, err := s.recovery.GetSession(ctx, models.Identity(req.UserId))
	if err != nil {
		return nil, s.toStatus(ctx, "GetSession", err)
	}
	return sessionMessage(r), nil
}

// sessionMessage omits proofs of unconfirmed slots.
func sessionMessage(r *models.Recovery) *keysafepb.Session {
	out := &keysafepb.Session{
		UserId:           string(r.UserID),
		Status:           r.Status.String(),
		TotalCompletions: r.TotalCompletions,
		Confirmed:        make([]bool, 0, models.CustodianCount),
		Proofs:           make([]string, 0, models.CustodianCount),
	}
	for _, slot := range r.Slots {
		out.Confirmed = append(out.Confirmed, slot.Confirmed)
		proof := ""
		if slot.Confirmed {
			proof = slot.Proof
		}
		out.Proofs = append(out.Proofs, proof)
	}
	return out
}

