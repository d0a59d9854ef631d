// Package enums collects enumerated values of any number of enumerations and
// groups them by type.
//
// Go has no native enumerations, so a Case carries its type identity, its name
// and an optional integer or string backing value explicitly:
//
//	const Color enums.Type = "palette.Color"
//
//	vec := enums.New(Color.Case("Red"), Color.Case("Blue"), Color.Case("Red"))
//	names, ok := vec.CaseNames(Color)        // ["Blue" "Red"], true
//	names, ok = vec.CaseNames(enums.Pos(0))  // same type, by position
//	_, ok = vec.CaseNames(enums.Pos(-1))     // false
//
// Types implementing Caser can be passed to Of directly.
package enums
