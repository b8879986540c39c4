// Package validator provides composable, rule-based validation without
// struct tags or reflection.
//
// Rules are plain closures paired with a field-scoped error; Apply runs all
// of them and aggregates the failures into a ValidationErrors value that
// implements error:
//
//	err := validator.Apply(
//		validator.Required("name", u.Name),
//		validator.Email("email", u.Email),
//	)
//	if ve := validator.Extract(err); ve != nil {
//		for _, field := range ve.Fields() {
//			fmt.Println(field, ve.Get(field))
//		}
//	}
//
// All rules are evaluated, so a caller sees every failing field at once
// instead of fixing them one round-trip at a time.
package validator
