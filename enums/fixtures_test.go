package enums_test

import "github.com/on-the-ground/vectors/enums"

const (
	testEnumType       enums.Type = "fixtures.TestEnum"
	testEnumBackedType enums.Type = "fixtures.TestEnumBacked"
	testEnumIntType    enums.Type = "fixtures.TestEnumInt"
)

type testEnum int

const (
	One testEnum = iota
	Two
	Three
)

var testEnumNames = [...]string{"One", "Two", "Three"}

func (e testEnum) EnumCase() enums.Case {
	return testEnumType.Case(testEnumNames[e])
}

type testEnumBacked string

const (
	BackedOne   testEnumBacked = "one"
	BackedTwo   testEnumBacked = "two"
	BackedThree testEnumBacked = "three"
)

func (e testEnumBacked) EnumCase() enums.Case {
	switch e {
	case BackedOne:
		return testEnumBackedType.StringCase("One", string(e))
	case BackedTwo:
		return testEnumBackedType.StringCase("Two", string(e))
	default:
		return testEnumBackedType.StringCase("Three", string(e))
	}
}
