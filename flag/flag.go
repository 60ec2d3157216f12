package flag

import (
	"fmt"
	"strings"
)

// StringEnumFlag implements flag.Value. It only accepts values
// from the fixed set it was created with.
type StringEnumFlag struct {
	allowed []string
	value   string
}

func NewStringEnumFlag(allowedValues []string, defaultValue string) *StringEnumFlag {
	return &StringEnumFlag{
		allowed: allowedValues,
		value:   defaultValue,
	}
}

func (flag *StringEnumFlag) Value() string {
	return flag.value
}

func (flag *StringEnumFlag) String() string {
	return flag.value
}

func (flag *StringEnumFlag) Set(value string) error {
	for _, allowed := range flag.allowed {
		if value == allowed {
			flag.value = value
			return nil
		}
	}
	return fmt.Errorf("not allowed: %v (choose from %v)",
		value, strings.Join(flag.allowed, "|"))
}
