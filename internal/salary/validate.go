package salary

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/salary-calculator/pkg/validation"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Range violation messages, reported on the minimum field of each pair.
const (
	MsgBaseSalaryRange      = "minimum base salary must be less than or equal to maximum"
	MsgOvertimeFixedRange   = "minimum fixed overtime pay must be less than or equal to maximum"
	MsgOvertimeAverageRange = "minimum average overtime pay must be less than or equal to maximum"
)

var rangeMessages = map[string]string{
	PathBaseSalaryMin:            MsgBaseSalaryRange,
	PathOvertimeFixedAmountMin:   MsgOvertimeFixedRange,
	PathOvertimeAverageAmountMin: MsgOvertimeAverageRange,
}

type fieldMessage struct {
	path    string
	message string
}

// Validate checks in against the field constraints and the three min/max
// range rules. The returned tree is keyed by field path in declaration
// order. Violations never prevent Derive from being called.
func Validate(in Input) validation.Tree {
	var tree validation.Tree

	err := validate.Struct(in)
	if err == nil {
		return tree
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		tree.Add("input", err.Error())
		return tree
	}

	collected := make([]fieldMessage, 0, len(validationErrs))
	for _, fe := range validationErrs {
		path := fieldPath(fe.Namespace())
		collected = append(collected, fieldMessage{path: path, message: message(path, fe)})
	}
	sort.SliceStable(collected, func(i, j int) bool {
		return fieldIndex(collected[i].path) < fieldIndex(collected[j].path)
	})

	for _, fm := range collected {
		tree.Add(fm.path, fm.message)
	}
	return tree
}

// fieldPath drops the struct name validator puts in front of the namespace.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func message(path string, fe validator.FieldError) string {
	label := path
	if f, ok := LookupField(path); ok {
		label = f.Label
	}

	switch fe.Tag() {
	case "ltefield":
		if msg, ok := rangeMessages[path]; ok {
			return msg
		}
		return fmt.Sprintf("%s must be less than or equal to maximum", label)
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s hours or less", label, fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", label, fe.Tag())
}
