package clients

import (
	"context"
	"fmt"
	"strconv"

	"catalog_service/internal/domain"
	"catalog_service/proto/catalogpb"

	"github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// CategoryClient calls a remote catalog.CategoryService and speaks domain
// types. Failures that the server reported as domain errors come back as the
// same typed errors (*domain.NoContentError, *domain.DuplicateError,
// *domain.NotFoundError).
type CategoryClient struct {
	client catalogpb.CategoryServiceClient
	conn   *grpc.ClientConn
	log    *logrus.Logger
}

func NewCategoryClient(target string, logger *logrus.Logger, opts ...grpc.DialOption) (*CategoryClient, error) {
	logger.Infof("CategoryClient: Creating gRPC client for target: %s", target)

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		logger.Errorf("CategoryClient: Failed to create client for %s: %v", target, err)
		return nil, fmt.Errorf("failed to connect to catalog service at %s: %w", target, err)
	}

	return &CategoryClient{
		client: catalogpb.NewCategoryServiceClient(conn),
		conn:   conn,
		log:    logger,
	}, nil
}

func (c *CategoryClient) Close() error {
	if c.conn != nil {
		c.log.Info("CategoryClient: Closing gRPC connection")
		return c.conn.Close()
	}
	return nil
}

func (c *CategoryClient) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	c.log.Debug("CategoryClient(gRPC): Calling GetAllCategories")
	resp, err := c.client.GetAllCategories(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, fromStatus(err)
	}

	categories := make([]domain.Category, 0, len(resp.GetValues()))
	for i, v := range resp.GetValues() {
		id, name, err := catalogpb.CategoryFields(v.GetStructValue())
		if err != nil {
			return nil, fmt.Errorf("malformed category at index %d: %w", i, err)
		}
		categories = append(categories, domain.Category{ID: id, Name: name})
	}
	return categories, nil
}

func (c *CategoryClient) CreateCategory(ctx context.Context, category *domain.Category) error {
	c.log.Debugf("CategoryClient(gRPC): Calling CreateCategory: Name=%s", category.Name)
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		catalogpb.FieldCategoryName: structpb.NewStringValue(category.Name),
	}}
	if _, err := c.client.CreateCategory(ctx, req); err != nil {
		return fromStatus(err)
	}
	return nil
}

func (c *CategoryClient) DeleteCategory(ctx context.Context, categoryID int64) (string, error) {
	c.log.Debugf("CategoryClient(gRPC): Calling DeleteCategory: ID=%d", categoryID)
	resp, err := c.client.DeleteCategory(ctx, wrapperspb.Int64(categoryID))
	if err != nil {
		return "", fromStatus(err)
	}
	return resp.GetValue(), nil
}

func (c *CategoryClient) UpdateCategory(ctx context.Context, category *domain.Category, categoryID int64) (*domain.Category, error) {
	c.log.Debugf("CategoryClient(gRPC): Calling UpdateCategory: ID=%d", categoryID)
	resp, err := c.client.UpdateCategory(ctx, catalogpb.NewCategory(categoryID, category.Name))
	if err != nil {
		return nil, fromStatus(err)
	}

	id, name, err := catalogpb.CategoryFields(resp)
	if err != nil {
		return nil, fmt.Errorf("malformed category in response: %w", err)
	}
	return &domain.Category{ID: id, Name: name}, nil
}

// fromStatus rebuilds a domain error from the ErrorInfo attached by the
// server, leaving every other status error untouched.
func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != catalogpb.ErrorDomain {
			continue
		}
		md := info.GetMetadata()
		switch info.GetReason() {
		case catalogpb.ReasonNoContent:
			return &domain.NoContentError{}
		case catalogpb.ReasonDuplicate:
			return &domain.DuplicateError{Name: md[catalogpb.FieldCategoryName]}
		case catalogpb.ReasonNotFound:
			id, _ := strconv.ParseInt(md[catalogpb.FieldCategoryID], 10, 64)
			return &domain.NotFoundError{ID: id, Message: md["message"]}
		}
	}
	return err
}
