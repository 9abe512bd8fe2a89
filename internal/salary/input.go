// Package salary holds the salary form's input model, its validation rules
// and the derivation of monthly, hourly and annual ranges.
package salary

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/salary-calculator/pkg/constants"
)

// ErrValueTooLarge is returned when a field's digits exceed the accepted range.
var ErrValueTooLarge = errors.New("value too large")

// Overtime describes one overtime arrangement: monthly hours and the pay
// range it is compensated with.
type Overtime struct {
	Hours     int64 `json:"hours" mapstructure:"hours" validate:"gte=0,lte=80"`
	AmountMin int64 `json:"amountMin" mapstructure:"amountMin" validate:"gte=0,ltefield=AmountMax"`
	AmountMax int64 `json:"amountMax" mapstructure:"amountMax" validate:"gte=0"`
}

// Input is the raw salary form state. Bonus is the annual total.
type Input struct {
	BaseSalaryMin   int64    `json:"baseSalaryMin" mapstructure:"baseSalaryMin" validate:"gte=0,ltefield=BaseSalaryMax"`
	BaseSalaryMax   int64    `json:"baseSalaryMax" mapstructure:"baseSalaryMax" validate:"gte=0"`
	OvertimeFixed   Overtime `json:"overtimeFixed" mapstructure:"overtimeFixed"`
	OvertimeAverage Overtime `json:"overtimeAverage" mapstructure:"overtimeAverage"`
	Bonus           int64    `json:"bonus" mapstructure:"bonus" validate:"gte=0"`
}

// DefaultInput returns the values the form starts with.
func DefaultInput() Input {
	return Input{
		BaseSalaryMin: 300000,
		BaseSalaryMax: 500000,
		OvertimeFixed: Overtime{
			Hours:     20,
			AmountMin: 60000,
			AmountMax: 120000,
		},
		OvertimeAverage: Overtime{
			Hours:     10,
			AmountMin: 45000,
			AmountMax: 75000,
		},
		Bonus: 500000,
	}
}

// Kind tells how a field is entered and displayed.
type Kind int

const (
	// KindAmount is a yen amount displayed with thousands separators.
	KindAmount Kind = iota
	// KindHours is a monthly hour count displayed as plain digits.
	KindHours
)

// Field identifies one editable value of the Input.
type Field struct {
	Path  string
	Label string
	Kind  Kind
}

// Field paths, in declaration order.
const (
	PathBaseSalaryMin            = "baseSalaryMin"
	PathBaseSalaryMax            = "baseSalaryMax"
	PathOvertimeFixedHours       = "overtimeFixed.hours"
	PathOvertimeFixedAmountMin   = "overtimeFixed.amountMin"
	PathOvertimeFixedAmountMax   = "overtimeFixed.amountMax"
	PathOvertimeAverageHours     = "overtimeAverage.hours"
	PathOvertimeAverageAmountMin = "overtimeAverage.amountMin"
	PathOvertimeAverageAmountMax = "overtimeAverage.amountMax"
	PathBonus                    = "bonus"
)

var fields = []Field{
	{Path: PathBaseSalaryMin, Label: "minimum base salary", Kind: KindAmount},
	{Path: PathBaseSalaryMax, Label: "maximum base salary", Kind: KindAmount},
	{Path: PathOvertimeFixedHours, Label: "fixed overtime hours", Kind: KindHours},
	{Path: PathOvertimeFixedAmountMin, Label: "minimum fixed overtime pay", Kind: KindAmount},
	{Path: PathOvertimeFixedAmountMax, Label: "maximum fixed overtime pay", Kind: KindAmount},
	{Path: PathOvertimeAverageHours, Label: "average overtime hours", Kind: KindHours},
	{Path: PathOvertimeAverageAmountMin, Label: "minimum average overtime pay", Kind: KindAmount},
	{Path: PathOvertimeAverageAmountMax, Label: "maximum average overtime pay", Kind: KindAmount},
	{Path: PathBonus, Label: "annual bonus", Kind: KindAmount},
}

// Fields returns every editable field in declaration order.
func Fields() []Field {
	return append([]Field(nil), fields...)
}

// LookupField finds the field registered under path.
func LookupField(path string) (Field, bool) {
	for _, f := range fields {
		if f.Path == path {
			return f, true
		}
	}
	return Field{}, false
}

func fieldIndex(path string) int {
	for i, f := range fields {
		if f.Path == path {
			return i
		}
	}
	return len(fields)
}

func (in *Input) ref(path string) *int64 {
	switch path {
	case PathBaseSalaryMin:
		return &in.BaseSalaryMin
	case PathBaseSalaryMax:
		return &in.BaseSalaryMax
	case PathOvertimeFixedHours:
		return &in.OvertimeFixed.Hours
	case PathOvertimeFixedAmountMin:
		return &in.OvertimeFixed.AmountMin
	case PathOvertimeFixedAmountMax:
		return &in.OvertimeFixed.AmountMax
	case PathOvertimeAverageHours:
		return &in.OvertimeAverage.Hours
	case PathOvertimeAverageAmountMin:
		return &in.OvertimeAverage.AmountMin
	case PathOvertimeAverageAmountMax:
		return &in.OvertimeAverage.AmountMax
	case PathBonus:
		return &in.Bonus
	}
	return nil
}

// Set stores value under path. It reports false for an unknown path.
func (in *Input) Set(path string, value int64) bool {
	p := in.ref(path)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// Value returns the value stored under path and whether the path is known.
func (in Input) Value(path string) (int64, bool) {
	p := in.ref(path)
	if p == nil {
		return 0, false
	}
	return *p, true
}

// ParseNumber normalizes raw field text into a non-negative integer. Every
// character other than an ASCII digit is dropped, so "300,000円" reads as
// 300000 and a minus sign is ignored. Text without digits reads as 0.
func ParseNumber(raw string) (int64, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := strings.TrimLeft(b.String(), "0")
	if digits == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n > constants.MaxSafeInteger {
		return 0, fmt.Errorf("%w: %s", ErrValueTooLarge, digits)
	}
	return n, nil
}
