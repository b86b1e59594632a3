package utils

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// TypeUrl Any 的类型url，如 "type.googleapis.com/google.protobuf.StringValue"
func TypeUrl(src proto.Message) string {
	return "type.googleapis.com/" + string(src.ProtoReflect().Descriptor().FullName())
}

func ToAny(msg proto.Message) (*anypb.Any, error) {
	return anypb.New(msg)
}

// StringList 字符串列表转 ListValue
func StringList(names []string) *structpb.ListValue {
	values := make([]*structpb.Value, len(names))
	for i, name := range names {
		values[i] = structpb.NewStringValue(name)
	}
	return &structpb.ListValue{Values: values}
}

// Strings StringList 的逆操作，有非字符串元素时 ok 为 false
func Strings(list *structpb.ListValue) (res []string, ok bool) {
	res = make([]string, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		s, isStr := v.GetKind().(*structpb.Value_StringValue)
		if !isStr {
			return nil, false
		}
		res = append(res, s.StringValue)
	}
	return res, true
}
