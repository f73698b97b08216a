package catalogpb

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	_ "google.golang.org/protobuf/types/known/emptypb"
	_ "google.golang.org/protobuf/types/known/structpb"
	_ "google.golang.org/protobuf/types/known/wrapperspb"
)

// FileName is the proto file path the service is registered under.
const FileName = "catalog/category.proto"

// File_catalog_category_proto describes catalog.CategoryService. It is
// registered in protoregistry.GlobalFiles so server reflection can serve it.
var File_catalog_category_proto protoreflect.FileDescriptor

func method(name, input, output string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String(input),
		OutputType: proto.String(output),
	}
}

func init() {
	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String(FileName),
		Package: proto.String("catalog"),
		Dependency: []string{
			"google/protobuf/empty.proto",
			"google/protobuf/struct.proto",
			"google/protobuf/wrappers.proto",
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("CategoryService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("GetAllCategories", ".google.protobuf.Empty", ".google.protobuf.ListValue"),
				method("CreateCategory", ".google.protobuf.Struct", ".google.protobuf.Empty"),
				method("DeleteCategory", ".google.protobuf.Int64Value", ".google.protobuf.StringValue"),
				method("UpdateCategory", ".google.protobuf.Struct", ".google.protobuf.Struct"),
			},
		}},
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("catalog_service/proto/catalogpb"),
		},
		Syntax: proto.String("proto3"),
	}

	fd, err := protodesc.NewFile(fdp, protoregistry.GlobalFiles)
	if err != nil {
		panic(err)
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(err)
	}
	File_catalog_category_proto = fd
}
