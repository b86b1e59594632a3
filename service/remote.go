package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/kevin-chtw/tw_ting/utils"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var (
	ErrInvalidRequest = errors.New("invalid request type")
	ErrInvalidHand    = errors.New("hand must be a string")
)

type remoteHandler func(*Remote, context.Context, proto.Message) (proto.Message, error)

// Remote 供其他服务器调用的听牌计算
//
//	StringValue (one hand)      -> ListValue of waits
//	ListValue of hand strings   -> Struct hand -> ListValue of waits
type Remote struct {
	component.Base
	opts     Options
	handlers map[string]remoteHandler
}

func NewRemote(opts Options) *Remote {
	return &Remote{
		opts:     opts,
		handlers: make(map[string]remoteHandler),
	}
}

// Init 组件初始化
func (r *Remote) Init() {
	r.handlers[utils.TypeUrl(&wrapperspb.StringValue{})] = (*Remote).handleWaits
	r.handlers[utils.TypeUrl(&structpb.ListValue{})] = (*Remote).handleBatch
}

// Message 按类型url分发
func (r *Remote) Message(ctx context.Context, req *anypb.Any) (ack *anypb.Any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Log.Errorf("panic recovered %s\n %s", rec, string(debug.Stack()))
			ack, err = nil, fmt.Errorf("remote panic: %v", rec)
		}
	}()
	if req == nil {
		return nil, ErrNilRequest
	}
	logger.Log.Debugf("remote message %s", req.GetTypeUrl())

	handler, ok := r.handlers[req.GetTypeUrl()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, req.GetTypeUrl())
	}
	msg, err := req.UnmarshalNew()
	if err != nil {
		return nil, err
	}
	rsp, err := handler(r, ctx, msg)
	if err != nil {
		return nil, err
	}
	return utils.ToAny(rsp)
}

func (r *Remote) handleWaits(ctx context.Context, msg proto.Message) (proto.Message, error) {
	req := msg.(*wrapperspb.StringValue)
	_, waits, err := r.opts.Waits(ctx, req.GetValue())
	if err != nil {
		return nil, err
	}
	return utils.StringList(waits), nil
}

func (r *Remote) handleBatch(ctx context.Context, msg proto.Message) (proto.Message, error) {
	hands, ok := utils.Strings(msg.(*structpb.ListValue))
	if !ok {
		return nil, ErrInvalidHand
	}
	ack := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(hands))}
	for _, hand := range hands {
		if _, done := ack.Fields[hand]; done {
			continue
		}
		_, waits, err := r.opts.Waits(ctx, hand)
		if err != nil {
			return nil, err
		}
		ack.Fields[hand] = structpb.NewListValue(utils.StringList(waits))
	}
	return ack, nil
}
