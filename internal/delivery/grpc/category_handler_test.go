package grpc_test

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	"catalog_service/internal/clients"
	grpcHandler "catalog_service/internal/delivery/grpc"
	"catalog_service/internal/domain"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"
	"catalog_service/proto/catalogpb"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const bufSize = 1024 * 1024

type fixture struct {
	client *clients.CategoryClient
	raw    catalogpb.CategoryServiceClient
	repo   *repository.MemoryCategoryRepository
}

func setup(t *testing.T, seed ...domain.Category) fixture {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := repository.NewMemoryCategoryRepository(logger, seed...)
	handler := grpcHandler.NewCategoryHandler(usecase.NewCategoryService(repo, logger), logger)

	lis := bufconn.Listen(bufSize)
	server := grpc.NewServer()
	catalogpb.RegisterCategoryServiceServer(server, handler)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	client, err := clients.NewCategoryClient("passthrough:///bufnet", logger,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return fixture{client: client, raw: catalogpb.NewCategoryServiceClient(conn), repo: repo}
}

func TestGetAllCategoriesOverGRPC(t *testing.T) {
	f := setup(t, domain.Category{ID: 1, Name: "Electronics"}, domain.Category{ID: 2, Name: "Books"})

	categories, err := f.client.GetAllCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 1, Name: "Electronics"}, {ID: 2, Name: "Books"}}, categories)
}

func TestGetAllCategoriesEmptyOverGRPC(t *testing.T) {
	f := setup(t)

	_, err := f.client.GetAllCategories(context.Background())
	var noContent *domain.NoContentError
	assert.ErrorAs(t, err, &noContent)
}

func TestCreateCategoryOverGRPC(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	require.NoError(t, f.client.CreateCategory(ctx, &domain.Category{Name: "Books"}))

	err := f.client.CreateCategory(ctx, &domain.Category{Name: "Books"})
	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Books", dup.Name)

	all, err := f.repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 1, Name: "Books"}}, all)
}

func TestUpdateCategoryOverGRPC(t *testing.T) {
	ctx := context.Background()
	f := setup(t, domain.Category{ID: 2, Name: "Books"})

	updated, err := f.client.UpdateCategory(ctx, &domain.Category{ID: 9, Name: "Books2"}, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Category{ID: 2, Name: "Books2"}, *updated)

	_, err = f.client.UpdateCategory(ctx, &domain.Category{Name: "Nope"}, 3)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(3), nf.ID)
	assert.Equal(t, "Resource not found", nf.Error())
}

func TestDeleteCategoryOverGRPC(t *testing.T) {
	ctx := context.Background()
	f := setup(t, domain.Category{ID: 5, Name: "Books"})

	msg, err := f.client.DeleteCategory(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Category with categoryId : 5 deleted successfully", msg)

	_, err = f.client.DeleteCategory(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMalformedRequests(t *testing.T) {
	ctx := context.Background()
	f := setup(t, domain.Category{ID: 1, Name: "Books"})

	_, err := f.raw.CreateCategory(ctx, &structpb.Struct{Fields: map[string]*structpb.Value{
		catalogpb.FieldCategoryName: structpb.NewBoolValue(true),
	}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = f.raw.UpdateCategory(ctx, &structpb.Struct{Fields: map[string]*structpb.Value{
		catalogpb.FieldCategoryName: structpb.NewStringValue("Books2"),
	}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestStatusCodes(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.raw.GetAllCategories(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = f.raw.UpdateCategory(ctx, catalogpb.NewCategory(4, "x"))
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.False(t, errors.Is(err, domain.ErrNotFound), "raw client must not translate statuses")
}

func TestLargeIDsOverGRPC(t *testing.T) {
	ctx := context.Background()
	const first, second int64 = 1 << 53, 1<<53 + 1
	f := setup(t, domain.Category{ID: first, Name: "A"}, domain.Category{ID: second, Name: "B"})

	categories, err := f.client.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: first, Name: "A"}, {ID: second, Name: "B"}}, categories)

	updated, err := f.client.UpdateCategory(ctx, &domain.Category{Name: "B2"}, second)
	require.NoError(t, err)
	assert.Equal(t, domain.Category{ID: second, Name: "B2"}, *updated)

	all, err := f.repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: first, Name: "A"}, {ID: second, Name: "B2"}}, all)
}

func TestInexactNumericIDRejected(t *testing.T) {
	f := setup(t, domain.Category{ID: 1 << 53, Name: "A"})

	_, err := f.raw.UpdateCategory(context.Background(), &structpb.Struct{Fields: map[string]*structpb.Value{
		catalogpb.FieldCategoryID:   structpb.NewNumberValue(1<<53 + 1),
		catalogpb.FieldCategoryName: structpb.NewStringValue("A2"),
	}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	all, err := f.repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 1 << 53, Name: "A"}}, all)
}
