// Package keysafepb holds the generated protobuf and gRPC code for the
// keysafe.v1 API defined in api/keysafe/v1/keysafe.proto.
package keysafepb

//go:generate protoc -I ../../api --go_out=../.. --go_opt=module=github.com/keysafe-protocol/keysafe --go-grpc_out=../.. --go-grpc_opt=module=github.com/keysafe-protocol/keysafe keysafe/v1/keysafe.proto
