package domutil

// Pluralize picks the word form matching count under Slavic plural rules.
// forms is ordered [singular, few, many]: 1 and 21 take the singular form,
// 2-4 and 22-24 the few form, everything else the many form. Counts whose
// second-to-last digit is 1 (11-14, 111-114, ...) always take the many form.
func Pluralize(count int, forms [3]string) string {
	lastDigit := count % 10
	secondLastDigit := count / 10 % 10
	switch {
	case secondLastDigit == 1:
		return forms[2]
	case lastDigit == 1:
		return forms[0]
	case lastDigit >= 2 && lastDigit <= 4:
		return forms[1]
	default:
		return forms[2]
	}
}
