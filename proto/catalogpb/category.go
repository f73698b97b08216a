package catalogpb

import (
	"fmt"
	"math"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
)

const (
	FieldCategoryID   = "categoryId"
	FieldCategoryName = "categoryName"
)

// maxExactID bounds ids sent as JSON numbers; float64 cannot hold every
// integer from 2^53 on.
const maxExactID = 1 << 53

// NewCategory builds the Struct form of a category. The id is written as a
// decimal string so every int64 survives the float64 number kind.
func NewCategory(id int64, name string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldCategoryID:   structpb.NewStringValue(strconv.FormatInt(id, 10)),
		FieldCategoryName: structpb.NewStringValue(name),
	}}
}

// CategoryFields extracts id and name from a category Struct. Absent fields
// read as zero values; fields of the wrong kind are an error. The id may be
// a decimal string or an integral number below 2^53 in magnitude.
func CategoryFields(s *structpb.Struct) (int64, string, error) {
	var (
		id   int64
		name string
	)
	fields := s.GetFields()

	if v, ok := fields[FieldCategoryID]; ok {
		parsed, err := parseID(v)
		if err != nil {
			return 0, "", err
		}
		id = parsed
	}

	if v, ok := fields[FieldCategoryName]; ok {
		str, isString := v.GetKind().(*structpb.Value_StringValue)
		if !isString {
			return 0, "", fmt.Errorf("invalid %s: expected a string", FieldCategoryName)
		}
		name = str.StringValue
	}

	return id, name, nil
}

func parseID(v *structpb.Value) (int64, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		id, err := strconv.ParseInt(kind.StringValue, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %q is not an integer id", FieldCategoryID, kind.StringValue)
		}
		return id, nil
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n != math.Trunc(n) || math.Abs(n) >= maxExactID {
			return 0, fmt.Errorf("invalid %s: %v is not an exact integer id", FieldCategoryID, n)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("invalid %s: expected a decimal string or a number", FieldCategoryID)
	}
}

// ErrorInfo reasons attached to failed calls, under ErrorDomain.
const (
	ErrorDomain = "catalog.example"

	ReasonNoContent = "NO_CONTENT"
	ReasonDuplicate = "DUPLICATE"
	ReasonNotFound  = "NOT_FOUND"
)
