package catalogpb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestCategoryFieldsRoundTrip(t *testing.T) {
	id, name, err := CategoryFields(NewCategory(42, "Books"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "Books", name)
}

func TestCategoryFieldsKeepsLargeIDs(t *testing.T) {
	for _, want := range []int64{1<<53 + 1, 1<<63 - 1, -(1 << 53) - 1} {
		id, _, err := CategoryFields(NewCategory(want, "Books"))
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}

func TestCategoryFieldsNumericID(t *testing.T) {
	s := &structpb.Struct{Fields: map[string]*structpb.Value{FieldCategoryID: structpb.NewNumberValue(1<<53 - 1)}}
	id, _, err := CategoryFields(s)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<53-1), id)
}

func TestCategoryFieldsAbsent(t *testing.T) {
	id, name, err := CategoryFields(&structpb.Struct{})
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.Empty(t, name)
}

func TestCategoryFieldsWrongKinds(t *testing.T) {
	tests := map[string]*structpb.Struct{
		"non-numeric id": {Fields: map[string]*structpb.Value{FieldCategoryID: structpb.NewStringValue("one")}},
		"fractional id":  {Fields: map[string]*structpb.Value{FieldCategoryID: structpb.NewNumberValue(1.5)}},
		"inexact id":     {Fields: map[string]*structpb.Value{FieldCategoryID: structpb.NewNumberValue(1 << 53)}},
		"bool id":        {Fields: map[string]*structpb.Value{FieldCategoryID: structpb.NewBoolValue(true)}},
		"numeric name":   {Fields: map[string]*structpb.Value{FieldCategoryName: structpb.NewNumberValue(3)}},
	}
	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := CategoryFields(s)
			assert.Error(t, err)
		})
	}
}

func TestServiceDescriptorRegistered(t *testing.T) {
	assert.Equal(t, FileName, CategoryServiceDesc.Metadata)

	d, err := protoregistry.GlobalFiles.FindDescriptorByName(ServiceName)
	require.NoError(t, err)
	svc, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	assert.Equal(t, FileName, svc.ParentFile().Path())

	methods := svc.Methods()
	require.Equal(t, len(CategoryServiceDesc.Methods), methods.Len())
	for _, m := range CategoryServiceDesc.Methods {
		assert.NotNil(t, methods.ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}
	update := methods.ByName("UpdateCategory")
	assert.Equal(t, protoreflect.FullName("google.protobuf.Struct"), update.Input().FullName())
	assert.Equal(t, protoreflect.FullName("google.protobuf.Struct"), update.Output().FullName())
}

func TestUnimplementedServer(t *testing.T) {
	var srv UnimplementedCategoryServiceServer
	_, err := srv.DeleteCategory(context.Background(), wrapperspb.Int64(1))
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
