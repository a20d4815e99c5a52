// Package telephony parses, validates, classifies, and formats international
// telephone numbers against a metadata corpus modeled on Google's
// libphonenumber project.
//
// The library is a pure, stateless computation over an immutable metadata
// store: no operation performs I/O, blocks, or mutates package-level state
// after the first metadata access. Every exported function is safe for
// concurrent use.
//
// Typical use:
//
//	n, err := telephony.Parse("CH", "044 668 18 00")
//	if err != nil {
//		return err
//	}
//	telephony.IsValidNumber(n)                        // true
//	telephony.NumberType(n)                           // telephony.FixedLine
//	telephony.NewFormatter(n).Format(telephony.National) // "044 668 18 00"
package telephony
