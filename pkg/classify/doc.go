// Package classify decides whether a utility class belongs to a governed
// category and whether its value is non-semantic.
//
// Each category has a narrow classifier that only claims the classes it
// recognises. Dispatch walks an explicit ordered list of classifiers
// (color, spacing, sizing, shadow, border radius) and the first one that
// claims a token decides its category, so category assignment is
// deterministic and mutually exclusive.
//
//	res := classify.Classify(classname.Parse("hover:h-10"))
//	// res.IsGoverned == true, res.Category == core.CategorySizing, res.IsNonSemantic == true
//
// Classifiers are stateless and safe for concurrent use.
package classify
