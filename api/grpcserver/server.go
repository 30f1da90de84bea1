package grpcserver

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "hermes/api/pb"
	"hermes/domain/orderbook"
	"hermes/infra/sequence"
	"hermes/service"
)

// Server adapts OrderService to gRPC.
type Server struct {
	pb.UnimplementedEngineServer
	svc *service.OrderService
	seq *sequence.Sequencer
	log *zap.Logger
}

func NewServer(svc *service.OrderService, seq *sequence.Sequencer, log *zap.Logger) *Server {
	return &Server{svc: svc, seq: seq, log: log}
}

// -------------------- Commands --------------------

func (s *Server) SubmitOrder(
	ctx context.Context,
	req *pb.SubmitOrderRequest,
) (*pb.SubmitOrderResponse, error) {
	side, err := toSide(req.Side)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	// A zero secnum means the client wants the server to sequence the
	// order. Gateway-assigned secnums come from the same counter the
	// restore path resets, so they never collide with replayed orders.
	secnum := req.Secnum
	if secnum == 0 {
		secnum = s.seq.Next()
	}

	rep, err := s.svc.Place(ctx, secnum, req.Symbol, side, req.Price, req.Quantity)
	if err != nil {
		return nil, toStatus(err)
	}

	s.log.Debug("order submitted",
		zap.Uint64("secnum", secnum),
		zap.String("symbol", req.Symbol),
		zap.Stringer("side", side),
		zap.Int64("price", req.Price),
		zap.Int64("quantity", req.Quantity),
		zap.Int("ask_legs", len(rep.Asks)),
		zap.Int("bid_legs", len(rep.Bids)),
	)

	return &pb.SubmitOrderResponse{
		Secnum: secnum,
		Asks:   fromExecutions(rep.Asks),
		Bids:   fromExecutions(rep.Bids),
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetDepth(
	ctx context.Context,
	req *pb.DepthRequest,
) (*pb.DepthResponse, error) {
	levels, err := s.svc.Depth(ctx, req.Symbol)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.DepthResponse{
		Levels: make([]*pb.DepthLevel, 0, len(levels)),
	}
	for _, lv := range levels {
		resp.Levels = append(resp.Levels, &pb.DepthLevel{
			Side:     fromSide(lv.Side),
			Price:    lv.Price,
			Quantity: lv.Quantity,
		})
	}
	return resp, nil
}

// -------------------- Converters --------------------

func toSide(s pb.Side) (orderbook.Side, error) {
	switch s {
	case pb.Side_SIDE_BID:
		return orderbook.Bid, nil
	case pb.Side_SIDE_ASK:
		return orderbook.Ask, nil
	default:
		return 0, orderbook.ErrInvalidSide
	}
}

func fromSide(s orderbook.Side) pb.Side {
	if s == orderbook.Ask {
		return pb.Side_SIDE_ASK
	}
	return pb.Side_SIDE_BID
}

func fromExecutions(execs []orderbook.Execution) []*pb.Execution {
	out := make([]*pb.Execution, 0, len(execs))
	for _, e := range execs {
		out = append(out, &pb.Execution{Secnum: e.Secnum, Quantity: e.Quantity})
	}
	return out
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, orderbook.ErrUnknownSymbol):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, orderbook.ErrInvalidSide),
		errors.Is(err, orderbook.ErrInvalidPrice),
		errors.Is(err, orderbook.ErrInvalidQuantity):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, orderbook.ErrEngineClosed):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
