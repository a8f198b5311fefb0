package internal

// Messages returns the Error() text of each error, in order.
func Messages[E error](errs []E) []string {
	s := make([]string, 0, len(errs))
	for _, e := range errs {
		s = append(s, e.Error())
	}
	return s
}
