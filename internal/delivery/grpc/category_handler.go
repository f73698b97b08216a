package grpc

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"
	"catalog_service/proto/catalogpb"

	"github.com/golang/protobuf/ptypes/empty"
	"github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type CategoryHandler struct {
	catalogpb.UnimplementedCategoryServiceServer
	service usecase.CategoryService
	log     *logrus.Logger
}

var _ catalogpb.CategoryServiceServer = (*CategoryHandler)(nil)

func NewCategoryHandler(svc usecase.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
		log:     logger,
	}
}

func (h *CategoryHandler) GetAllCategories(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	h.log.Debug("gRPC Handler: Received GetAllCategories request")

	categories, err := h.service.GetAllCategories(ctx)
	if err != nil {
		h.log.Warnf("gRPC Handler: GetAllCategories use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	resp := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(categories))}
	for _, c := range categories {
		resp.Values = append(resp.Values, structpb.NewStructValue(catalogpb.NewCategory(c.ID, c.Name)))
	}
	return resp, nil
}

func (h *CategoryHandler) CreateCategory(ctx context.Context, req *structpb.Struct) (*empty.Empty, error) {
	_, name, err := catalogpb.CategoryFields(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	h.log.Infof("gRPC Handler: Received CreateCategory request: Name=%s", name)

	if err := h.service.CreateCategory(ctx, &domain.Category{Name: name}); err != nil {
		h.log.Warnf("gRPC Handler: CreateCategory use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *CategoryHandler) DeleteCategory(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.StringValue, error) {
	id := req.GetValue()
	h.log.Infof("gRPC Handler: Received DeleteCategory request: ID=%d", id)

	msg, err := h.service.DeleteCategory(ctx, id)
	if err != nil {
		h.log.Warnf("gRPC Handler: DeleteCategory use case error for ID %d: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return wrapperspb.String(msg), nil
}

func (h *CategoryHandler) UpdateCategory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, name, err := catalogpb.CategoryFields(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if _, ok := req.GetFields()[catalogpb.FieldCategoryID]; !ok {
		return nil, status.Errorf(codes.InvalidArgument, "%s is required for update", catalogpb.FieldCategoryID)
	}
	h.log.Infof("gRPC Handler: Received UpdateCategory request: ID=%d, NewName=%s", id, name)

	updated, err := h.service.UpdateCategory(ctx, &domain.Category{Name: name}, id)
	if err != nil {
		h.log.Warnf("gRPC Handler: UpdateCategory use case error for ID %d: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return catalogpb.NewCategory(updated.ID, updated.Name), nil
}

func mapDomainErrorToGrpcStatus(err error) error {
	if err == nil {
		return nil
	}

	var (
		noContent *domain.NoContentError
		duplicate *domain.DuplicateError
		notFound  *domain.NotFoundError
	)
	switch {
	case errors.As(err, &noContent):
		return withReason(codes.NotFound, err, catalogpb.ReasonNoContent, nil)
	case errors.As(err, &duplicate):
		return withReason(codes.AlreadyExists, err, catalogpb.ReasonDuplicate, map[string]string{
			catalogpb.FieldCategoryName: duplicate.Name,
		})
	case errors.As(err, &notFound):
		return withReason(codes.NotFound, err, catalogpb.ReasonNotFound, map[string]string{
			catalogpb.FieldCategoryID: strconv.FormatInt(notFound.ID, 10),
			"message":                 notFound.Message,
		})
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "not found"):
		return status.Error(codes.NotFound, err.Error())
	case strings.Contains(errMsg, "already exists"), strings.Contains(errMsg, "duplicate key"):
		return status.Error(codes.AlreadyExists, err.Error())
	case strings.Contains(errMsg, "invalid"):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Errorf(codes.Internal, "Internal server error: %v", err)
	}
}

// withReason attaches an ErrorInfo so clients can rebuild the domain error.
func withReason(code codes.Code, err error, reason string, metadata map[string]string) error {
	st := status.New(code, err.Error())
	detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   catalogpb.ErrorDomain,
		Metadata: metadata,
	})
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}
